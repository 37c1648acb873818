package vnish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsExplicitKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "from-env")

	creds := NewCredentials("explicit")
	assert.Equal(t, "explicit", creds.Token())
	assert.True(t, creds.Configured())
}

func TestCredentialsEnvFallback(t *testing.T) {
	t.Setenv(EnvAPIKey, "from-env")

	creds := NewCredentials("")
	assert.Equal(t, "from-env", creds.Token())
	assert.True(t, creds.Configured())
}

func TestCredentialsUnconfigured(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	creds := NewCredentials("")
	assert.Empty(t, creds.Token())
	assert.False(t, creds.Configured())
}
