// Package snapshot archives raw summary documents to disk.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Write stores a raw summary document under dir as
// miner_stats_<YYYYMMDD_HHMMSS>.json, using the invocation's local
// timestamp. Valid JSON is re-indented for readability; anything else
// is written verbatim. Returns the path of the written file.
func Write(dir string, ts time.Time, raw []byte) (string, error) {
	name := fmt.Sprintf("miner_stats_%s.json", ts.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(raw)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}
