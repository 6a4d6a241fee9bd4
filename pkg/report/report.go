// Package report formats recorded benchmark history into tables.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fluencelabs/perfmeter/pkg/db"
)

// Generate writes a markdown summary of the benchmark history,
// one section per host, benchmarks sorted by name.
func Generate(w io.Writer, data map[string]*db.HostRecord) error {
	if len(data) == 0 {
		return fmt.Errorf("no recorded results to report")
	}

	hosts := make([]string, 0, len(data))
	for h := range data {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)

	for _, host := range hosts {
		rec := data[host]

		fmt.Fprintf(w, "## %s\n\n", host)

		if rec.Platform != "" {
			fmt.Fprintf(w, "Platform: %s\n", rec.Platform)
		}
		if rec.Datetime != "" {
			fmt.Fprintf(w, "Updated: %s\n", rec.Datetime)
		}
		if rec.Version != nil {
			fmt.Fprintf(w, "Version: %s\n", *rec.Version)
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Benchmark | Mean | Runs |")
		fmt.Fprintln(w, "|-----------|------|------|")

		names := make([]string, 0, len(rec.Stats))
		for n := range rec.Stats {
			names = append(names, n)
		}
		sort.Strings(names)

		for _, name := range names {
			mean, runs := summaryFields(rec.Stats[name])
			fmt.Fprintf(w, "| %s | %s | %s |\n", name, mean, runs)
		}

		fmt.Fprintln(w)
	}

	return nil
}

// summaryFields pulls the common timing fields out of an opaque
// stats payload. Unknown shapes render as "-".
func summaryFields(stats interface{}) (mean, runs string) {
	mean, runs = "-", "-"

	m, ok := stats.(map[string]interface{})
	if !ok {
		return mean, runs
	}

	if v, ok := m["mean_ms"]; ok {
		if f, ok := toFloat(v); ok {
			mean = formatMs(f)
		}
	}

	if v, ok := m["runs"]; ok {
		if f, ok := toFloat(v); ok {
			runs = fmt.Sprintf("%d", int(f))
		}
	}

	return mean, runs
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}

	return 0, false
}

func formatMs(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.2fms", ms)
	}

	return fmt.Sprintf("%.2fs", ms/1000)
}
