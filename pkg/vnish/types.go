package vnish

import "encoding/json"

// MinerStatus contains the current miner operational status.
type MinerStatus struct {
	MinerState     string `json:"miner_state"`
	MinerStateTime int    `json:"miner_state_time"`
	Description    string `json:"description"`
}

// TempRange contains min/max temperature values.
type TempRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Pool contains mining pool information.
type Pool struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	PoolType string `json:"pool_type"`
	User     string `json:"user"`
	Status   string `json:"status"`
	Diff     string `json:"diff"`
	Accepted int    `json:"accepted"`
	Rejected int    `json:"rejected"`
	Stale    int    `json:"stale"`
	Ping     int    `json:"ping"`
}

// FanMode contains fan mode settings.
type FanMode struct {
	Name string `json:"name"`
}

// CoolingSettings contains cooling configuration.
type CoolingSettings struct {
	Mode FanMode `json:"mode"`
}

// Fan contains individual fan status (object format from newer VNish versions).
type Fan struct {
	ID     int    `json:"id"`
	RPM    int    `json:"rpm"`
	Status string `json:"status"`
	MaxRPM int    `json:"max_rpm"`
}

// FanData handles both VNish fan response formats:
// - Legacy: array of ints [5400, 5300, ...]
// - Modern: array of objects [{"rpm": 5400, "status": "ok"}, ...]
type FanData []Fan

// UnmarshalJSON implements custom unmarshaling for flexible fan data.
func (f *FanData) UnmarshalJSON(data []byte) error {
	// Try array of objects first (modern format)
	var fans []Fan
	if err := json.Unmarshal(data, &fans); err == nil {
		*f = fans
		return nil
	}

	// Fall back to array of ints (legacy format)
	var rpms []int
	if err := json.Unmarshal(data, &rpms); err != nil {
		return err
	}

	*f = make([]Fan, len(rpms))
	for i, rpm := range rpms {
		status := "ok"
		if rpm == 0 {
			status = "failed"
		}
		(*f)[i] = Fan{ID: i, RPM: rpm, Status: status}
	}
	return nil
}

// Cooling contains cooling status information.
type Cooling struct {
	FanNum   int             `json:"fan_num"`
	Fans     FanData         `json:"fans"`
	Settings CoolingSettings `json:"settings"`
	FanDuty  int             `json:"fan_duty"`
}

// ChipStatuses contains chip health status counts.
type ChipStatuses struct {
	Red    int `json:"red"`
	Orange int `json:"orange"`
	Grey   int `json:"grey"`
}

// Chain contains mining chain (board) information.
type Chain struct {
	ID                 int          `json:"id"`
	Frequency          float64      `json:"frequency"`
	Voltage            float64      `json:"voltage"`
	PowerConsumption   int          `json:"power_consumption"`
	HashrateRT         float64      `json:"hashrate_rt"`
	HashratePercentage float64      `json:"hashrate_percentage"`
	ChipStatuses       ChipStatuses `json:"chip_statuses"`
}

// MinerSummary contains the miner summary data.
// Fields absent from the response decode to their zero values.
type MinerSummary struct {
	MinerStatus      MinerStatus `json:"miner_status"`
	MinerType        string      `json:"miner_type"`
	AverageHashrate  float64     `json:"average_hashrate"`
	InstantHashrate  float64     `json:"instant_hashrate"`
	HRRealtime       float64     `json:"hr_realtime"`
	HRNominal        float64     `json:"hr_nominal"`
	PCBTemp          TempRange   `json:"pcb_temp"`
	ChipTemp         TempRange   `json:"chip_temp"`
	PowerConsumption int         `json:"power_consumption"`
	PowerEfficiency  float64     `json:"power_efficiency"`
	HWErrorsPercent  float64     `json:"hw_errors_percent"`
	HRError          float64     `json:"hr_error"`
	HWErrors         int         `json:"hw_errors"`
	DevFeePercent    float64     `json:"devfee_percent"`
	DevFee           float64     `json:"devfee"`
	Pools            []Pool      `json:"pools"`
	Cooling          Cooling     `json:"cooling"`
	Chains           []Chain     `json:"chains"`
}

// Summary is the top-level summary response. Miner is a pointer so a
// response without the miner key is distinguishable from an empty one.
type Summary struct {
	Miner *MinerSummary `json:"miner"`
}

// ParseSummary decodes a raw summary document.
func ParseSummary(data []byte) (*Summary, error) {
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
