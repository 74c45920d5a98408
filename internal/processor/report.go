package processor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Catalog Build ===\n\n")

	header := []string{"Term", "Records", "Courses", "Skipped", "Duplicates", "Parse failures", "No prereqs", "Path"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, t := range r.Terms {
		row := []string{
			t.Label,
			fmt.Sprintf("%d", t.Records),
			fmt.Sprintf("%d", t.Courses),
			fmt.Sprintf("%d", t.Skipped),
			fmt.Sprintf("%d", t.Duplicates),
			fmt.Sprintf("%d", t.ParseFailures),
			fmt.Sprintf("%d", t.NoPrereqs),
			t.Path,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\nMerged courses:\t%d\n", r.Courses)
	fmt.Fprintf(tw, "Snapshot:\t%s\n", r.SnapshotID)
	fmt.Fprintf(tw, "Duration:\t%s\n", fmtDuration(r.Duration))

	tw.Flush()
}

func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func fmtDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
}
