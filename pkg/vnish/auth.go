package vnish

import "os"

// EnvAPIKey is the environment variable consulted when no API key is
// passed explicitly.
const EnvAPIKey = "MINER_API_KEY"

// Credentials holds the API key used for bearer authentication.
// The key is resolved once at construction time.
type Credentials struct {
	apiKey string
}

// NewCredentials creates credentials from an explicit API key.
// An empty key falls back to a single lookup of MINER_API_KEY; there
// is no further fallback chain.
func NewCredentials(apiKey string) *Credentials {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	return &Credentials{apiKey: apiKey}
}

// Token returns the bearer token, or empty when no key is configured.
func (c *Credentials) Token() string {
	return c.apiKey
}

// Configured returns true if an API key was resolved.
func (c *Credentials) Configured() bool {
	return c.apiKey != ""
}
