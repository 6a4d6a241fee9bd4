// Package bench runs benchmark commands and summarizes their timings.
package bench

import (
	"context"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"
)

// Stats is a schema-less measurement payload. The result store
// persists it as-is, so benchmarks are free to report whatever
// metrics make sense for them.
type Stats map[string]interface{}

// Benchmark describes one named benchmark command.
type Benchmark struct {
	BenchName string
	Command   string
	Args      []string

	// Runs is how often the command is executed; the reported
	// stats aggregate over all runs.
	Runs int
}

// Name returns the benchmark name used as the stats key in the store.
func (b Benchmark) Name() string {
	return b.BenchName
}

// Run executes the benchmark command b.Runs times, wall-timing each
// run, and returns the aggregated timing stats. A failing run aborts
// the benchmark; partial timings are discarded.
func Run(ctx context.Context, b Benchmark) (Stats, error) {
	runs := b.Runs
	if runs < 1 {
		runs = 1
	}

	durations := make([]time.Duration, 0, runs)

	for i := 0; i < runs; i++ {
		log.Debug().
			Str("component", "bench").
			Str("name", b.BenchName).
			Int("run", i+1).
			Int("runs", runs).
			Msg("executing benchmark command")

		cmd := exec.CommandContext(ctx, b.Command, b.Args...)

		start := time.Now()

		if out, err := cmd.CombinedOutput(); err != nil {
			return nil, &RunError{
				Name:   b.BenchName,
				Output: string(out),
				Err:    err,
			}
		}

		durations = append(durations, time.Since(start))
	}

	return summarize(durations), nil
}

func summarize(durations []time.Duration) Stats {
	var total time.Duration
	min, max := durations[0], durations[0]

	for _, d := range durations {
		total += d

		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	mean := total / time.Duration(len(durations))

	return Stats{
		"mean_ms":  toMillis(mean),
		"min_ms":   toMillis(min),
		"max_ms":   toMillis(max),
		"total_ms": toMillis(total),
		"runs":     len(durations),
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
