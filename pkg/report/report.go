// Package report renders a miner summary document as a fixed-section
// console report.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/minerstat/minerstat/pkg/vnish"
)

const (
	bannerWidth  = 60
	dividerWidth = 40

	// NoDataLine is emitted when the summary lacks miner data.
	NoDataLine = "No miner data available"
)

// Render formats a summary as console text. It is pure: the output
// depends only on the summary and the supplied timestamp, so a fixed
// timestamp yields byte-identical output for the same input.
//
// Every section is always emitted with defaults substituted; missing
// numeric fields render as zero at the section's precision and missing
// strings render as "N/A".
func Render(sum *vnish.Summary, now time.Time) string {
	if sum == nil || sum.Miner == nil {
		return NoDataLine + "\n"
	}
	m := sum.Miner

	banner := strings.Repeat("=", bannerWidth)
	divider := strings.Repeat("-", dividerWidth)

	var sb strings.Builder

	// Header
	sb.WriteString(banner + "\n")
	sb.WriteString(fmt.Sprintf("MINER STATISTICS - %s\n", now.Format("2006-01-02 15:04:05")))
	sb.WriteString(banner + "\n\n")

	// Basic info. Upper-casing is applied after defaulting; "N/A" is
	// unchanged by it.
	sb.WriteString(fmt.Sprintf("Miner Type: %s\n", orNA(m.MinerType)))
	sb.WriteString(fmt.Sprintf("Status:     %s\n\n", strings.ToUpper(orNA(m.MinerStatus.MinerState))))

	// Hashrate
	sb.WriteString("HASHRATE\n" + divider + "\n")
	sb.WriteString(fmt.Sprintf("  Average:  %.2f TH/s\n", m.AverageHashrate))
	sb.WriteString(fmt.Sprintf("  Instant:  %.2f TH/s\n", m.InstantHashrate))
	sb.WriteString(fmt.Sprintf("  Nominal:  %.2f TH/s\n", m.HRNominal))
	sb.WriteString(fmt.Sprintf("  Realtime: %.2f GH/s\n\n", m.HRRealtime))

	// Power
	sb.WriteString("POWER\n" + divider + "\n")
	sb.WriteString(fmt.Sprintf("  Consumption: %d W\n", m.PowerConsumption))
	sb.WriteString(fmt.Sprintf("  Efficiency:  %.2f W/TH\n\n", m.PowerEfficiency))

	// Temperature
	sb.WriteString("TEMPERATURE\n" + divider + "\n")
	sb.WriteString(fmt.Sprintf("  PCB:  %d°C - %d°C\n", m.PCBTemp.Min, m.PCBTemp.Max))
	sb.WriteString(fmt.Sprintf("  Chip: %d°C - %d°C\n\n", m.ChipTemp.Min, m.ChipTemp.Max))

	// Errors. Percent and hashrate error print raw, without fixed
	// precision.
	sb.WriteString("ERRORS\n" + divider + "\n")
	sb.WriteString(fmt.Sprintf("  Hardware Errors: %d (%v%%)\n", m.HWErrors, m.HWErrorsPercent))
	sb.WriteString(fmt.Sprintf("  Hashrate Error:  %v\n\n", m.HRError))

	// Dev fee
	sb.WriteString("DEV FEE\n" + divider + "\n")
	sb.WriteString(fmt.Sprintf("  Percentage: %.3f%%\n", m.DevFeePercent))
	sb.WriteString(fmt.Sprintf("  Value:      %.2f\n\n", m.DevFee))

	// Pools
	sb.WriteString(fmt.Sprintf("POOLS (%d)\n", len(m.Pools)))
	sb.WriteString(divider + "\n")
	for _, pool := range m.Pools {
		marker := "○"
		if pool.Status == "active" {
			marker = "●"
		}
		sb.WriteString(fmt.Sprintf("  %s [%d] %s\n", marker, pool.ID, orNA(pool.URL)))
		sb.WriteString(fmt.Sprintf("     Status: %s | Diff: %s\n", orNA(pool.Status), orNA(pool.Diff)))
		sb.WriteString(fmt.Sprintf("     Accepted: %d | Rejected: %d | Stale: %d\n", pool.Accepted, pool.Rejected, pool.Stale))
	}
	sb.WriteString("\n")

	// Cooling
	cooling := m.Cooling
	sb.WriteString("COOLING\n" + divider + "\n")
	sb.WriteString(fmt.Sprintf("  Fan Duty: %d%%\n", cooling.FanDuty))
	sb.WriteString(fmt.Sprintf("  Mode:     %s\n", orNA(cooling.Settings.Mode.Name)))
	for _, fan := range cooling.Fans {
		sb.WriteString(fmt.Sprintf("  Fan %d: %d RPM (%s)\n", fan.ID, fan.RPM, orNA(fan.Status)))
	}
	sb.WriteString("\n")

	// Hash chains
	sb.WriteString(fmt.Sprintf("HASH CHAINS (%d)\n", len(m.Chains)))
	sb.WriteString(divider + "\n")
	for _, chain := range m.Chains {
		sb.WriteString(fmt.Sprintf("  Chain %d:\n", chain.ID))
		sb.WriteString(fmt.Sprintf("     Frequency: %v MHz | Voltage: %v mV\n", chain.Frequency, chain.Voltage))
		sb.WriteString(fmt.Sprintf("     Hashrate: %.2f GH/s (%.2f%%)\n", chain.HashrateRT, chain.HashratePercentage))
		sb.WriteString(fmt.Sprintf("     Power: %d W\n", chain.PowerConsumption))
		cs := chain.ChipStatuses
		sb.WriteString(fmt.Sprintf("     Chips: Grey=%d, Orange=%d, Red=%d\n", cs.Grey, cs.Orange, cs.Red))
	}
	sb.WriteString("\n")

	// Footer
	sb.WriteString(banner + "\n")

	return sb.String()
}

// orNA substitutes the string default for absent values.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
