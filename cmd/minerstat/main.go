// minerstat is a CLI tool that polls a VNish miner's REST API and
// prints a status report, archiving the raw response to disk.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/minerstat/minerstat/pkg/report"
	"github.com/minerstat/minerstat/pkg/snapshot"
	"github.com/minerstat/minerstat/pkg/vnish"
)

func main() {
	cfg := LoadConfig()

	host := cfg.Host
	if len(os.Args) > 1 {
		host = os.Args[1]
	}

	creds := vnish.NewCredentials(cfg.APIKey)
	client := vnish.NewClient(host, creds, vnish.WithTimeout(cfg.Timeout))
	ctx := context.Background()

	// The auth check is informational: the response is printed but
	// never validated or acted upon.
	fmt.Println("Checking authentication...")
	auth, err := client.CheckAuth(ctx)
	if err != nil {
		log.Printf("Error checking auth: %v", err)
		auth = nil
	}
	fmt.Printf("Auth Status: %s\n\n", indentJSON(auth))

	fmt.Println("Fetching miner summary...")
	raw, err := client.SummaryRaw(ctx)
	if err != nil {
		log.Printf("Error getting summary: %v", err)
		raw = nil
	}
	if len(raw) == 0 {
		fmt.Println("Failed to retrieve miner data")
		return
	}

	sum, err := vnish.ParseSummary(raw)
	if err != nil {
		log.Printf("Error parsing summary: %v", err)
		fmt.Println("Failed to retrieve miner data")
		return
	}

	fmt.Print(report.Render(sum, time.Now()))

	path, err := snapshot.Write(cfg.OutputDir, time.Now(), raw)
	if err != nil {
		log.Printf("Error saving snapshot: %v", err)
		return
	}
	fmt.Printf("\nData saved to: %s\n", path)
}

// indentJSON pretty-prints a raw JSON document for display, falling
// back to "{}" for empty input and the raw text for invalid JSON.
func indentJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
