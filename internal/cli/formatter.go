package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/prefixstat/internal/prefixstat"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the run summary in JSON format.
func PrintJSON(stats *prefixstat.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the run summary in human-readable table format.
//
//nolint:gosec // Counts fit in int64
func PrintTable(stats *prefixstat.Stats, output string, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	avg := 0.0
	if stats.Files > 0 {
		avg = float64(stats.BytesSampled) / float64(stats.Files)
	}

	fmt.Fprintln(w, "Stats:\t")
	fmt.Fprintf(w, "Roots:\t%d\n", stats.Roots)
	fmt.Fprintf(w, "Files sampled:\t%s\n", humanize.Comma(int64(stats.Files)))
	fmt.Fprintf(w, "Directories:\t%s\n", humanize.Comma(int64(stats.Dirs)))
	fmt.Fprintf(w, "Skipped entries:\t%s\n", humanize.Comma(int64(stats.Skipped)))
	fmt.Fprintf(w, "Full windows:\t%s\n", humanize.Comma(int64(stats.FullWindows)))
	fmt.Fprintf(w, "Bytes sampled:\t%s (%d bytes, %.1f per file)\n",
		humanize.IBytes(stats.BytesSampled), stats.BytesSampled, avg)
	fmt.Fprintf(w, "Window:\t%s\n", humanize.IBytes(prefixstat.WindowSize))
	fmt.Fprintf(w, "Output:\t%s\n", output)

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	return w.Flush()
}
