package clockbench

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// Report maps candidate name to its summary. Insertion order is
// irrelevant; Render sorts by ascending average latency.
type Report map[string]Summary

// Render prints the comparison table, fastest candidate first. Ties
// break on name so the output is stable.
func (r Report) Render(w io.Writer) {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := r[names[i]], r[names[j]]
		if a.AvgNs != b.AvgNs {
			return a.AvgNs < b.AvgNs
		}
		return names[i] < names[j]
	})

	fmt.Fprintf(w, "\n=== Results Summary ===\n")
	fmt.Fprintf(w, "%-25s %10s %10s %15s\n", "Method", "Avg (ns)", "Std Dev", "Ops/sec")
	fmt.Fprintln(w, strings.Repeat("─", 62))
	for _, name := range names {
		s := r[name]
		fmt.Fprintf(w, "%-25s %10.2f %10.2f %15s\n",
			name, s.AvgNs, s.StddevNs, humanize.CommafWithDigits(s.OpsPerSec, 0))
	}
}
