package vnish

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanDataModernFormat(t *testing.T) {
	var fans FanData
	err := json.Unmarshal([]byte(`[{"id": 0, "rpm": 5400, "status": "ok"}, {"id": 1, "rpm": 5280, "status": "ok"}]`), &fans)
	require.NoError(t, err)

	require.Len(t, fans, 2)
	assert.Equal(t, 5400, fans[0].RPM)
	assert.Equal(t, "ok", fans[0].Status)
	assert.Equal(t, 1, fans[1].ID)
}

func TestFanDataLegacyFormat(t *testing.T) {
	var fans FanData
	err := json.Unmarshal([]byte(`[5400, 0]`), &fans)
	require.NoError(t, err)

	require.Len(t, fans, 2)
	assert.Equal(t, Fan{ID: 0, RPM: 5400, Status: "ok"}, fans[0])
	assert.Equal(t, Fan{ID: 1, RPM: 0, Status: "failed"}, fans[1])
}

func TestFanDataInvalid(t *testing.T) {
	var fans FanData
	err := json.Unmarshal([]byte(`"not fans"`), &fans)
	assert.Error(t, err)
}

func TestParseSummaryMissingMiner(t *testing.T) {
	sum, err := ParseSummary([]byte(`{"other": true}`))
	require.NoError(t, err)
	assert.Nil(t, sum.Miner)
}

func TestParseSummaryEmptyMiner(t *testing.T) {
	sum, err := ParseSummary([]byte(`{"miner": {}}`))
	require.NoError(t, err)
	require.NotNil(t, sum.Miner)

	// Absent fields decode to zero values.
	assert.Zero(t, sum.Miner.AverageHashrate)
	assert.Empty(t, sum.Miner.MinerType)
	assert.Empty(t, sum.Miner.Pools)
	assert.Empty(t, sum.Miner.Chains)
	assert.Empty(t, sum.Miner.Cooling.Fans)
}

func TestParseSummaryInvalid(t *testing.T) {
	_, err := ParseSummary([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseSummaryNestedCooling(t *testing.T) {
	sum, err := ParseSummary([]byte(`{"miner": {"cooling": {"fan_duty": 75, "settings": {"mode": {"name": "immersion"}}}}}`))
	require.NoError(t, err)
	require.NotNil(t, sum.Miner)

	assert.Equal(t, 75, sum.Miner.Cooling.FanDuty)
	assert.Equal(t, "immersion", sum.Miner.Cooling.Settings.Mode.Name)
}
