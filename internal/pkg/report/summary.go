// Package report persists generated weather reports to an append-only
// plain-text summary file. Single writer, no rotation, no locking.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultSummaryFile is where reports accumulate unless overridden.
const DefaultSummaryFile = "weather_summary.txt"

// AppendSummary appends a timestamped, titled section to the summary file.
func AppendSummary(path, title, body string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open summary file %q: %w", path, err)
	}
	defer f.Close()

	timestamp := time.Now().Format("2006-01-02 15:04")

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s - %s\n", title, timestamp)
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString(body + "\n")

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to append to summary file %q: %w", path, err)
	}
	return nil
}
