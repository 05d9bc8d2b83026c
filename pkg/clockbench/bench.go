package clockbench

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

// Runner drives the full benchmark: warmup, per-candidate timed batches,
// and the final report. Candidates run strictly one after another.
type Runner struct {
	cfg        Config
	candidates []Candidate
	out        io.Writer
	progress   bool
}

// NewRunner creates a runner writing its report to out.
func NewRunner(cfg Config, candidates []Candidate, out io.Writer) *Runner {
	return &Runner{cfg: cfg, candidates: candidates, out: out}
}

// ShowProgress draws a per-candidate progress bar on stderr while the
// repeats run. The stdout report is unaffected.
func (r *Runner) ShowProgress(on bool) {
	r.progress = on
}

// Run executes the whole benchmark and writes the report. Any candidate
// failure aborts the run; nothing is retried.
func (r *Runner) Run() error {
	if err := r.cfg.Validate(); err != nil {
		return err
	}
	if len(r.candidates) == 0 {
		return ErrNoCandidates
	}

	fmt.Fprintf(r.out, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(r.out, "Benchmarking %s iterations\n\n", humanize.Comma(int64(r.cfg.Iterations)))

	fmt.Fprintln(r.out, "Running warmup...")
	if err := r.Warmup(); err != nil {
		return err
	}

	report := make(Report, len(r.candidates))
	for _, c := range r.candidates {
		fmt.Fprintf(r.out, "\nBenchmarking %s...\n", c.Name())

		totals, err := r.Measure(c)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name(), err)
		}

		s := Summarize(totals, r.cfg.Iterations)
		report[c.Name()] = s

		fmt.Fprintf(r.out, "  Average: %.2f ns ± %.2f ns per loop\n", s.AvgNs, s.StddevNs)
		fmt.Fprintf(r.out, "  Operations/sec: %s\n", humanize.CommafWithDigits(s.OpsPerSec, 0))
	}

	report.Render(r.out)

	return nil
}

// Warmup invokes every candidate WarmupRounds times and discards the
// results, keeping first-call overhead out of the measured batches.
// Nothing is recorded during warmup.
func (r *Runner) Warmup() error {
	for _, c := range r.candidates {
		for i := 0; i < r.cfg.WarmupRounds; i++ {
			if _, err := c.Next(); err != nil {
				return fmt.Errorf("warmup %s: %w", c.Name(), err)
			}
		}
	}
	return nil
}

// Measure times Repeats batches of Iterations calls against one candidate
// and returns the raw batch totals.
func (r *Runner) Measure(c Candidate) ([]time.Duration, error) {
	var bar *progressbar.ProgressBar
	if r.progress {
		bar = progressbar.NewOptions(r.cfg.Repeats,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(c.Name()),
			progressbar.OptionClearOnFinish(),
		)
	}

	totals := make([]time.Duration, 0, r.cfg.Repeats)
	for rep := 0; rep < r.cfg.Repeats; rep++ {
		start := time.Now()
		for i := 0; i < r.cfg.Iterations; i++ {
			if _, err := c.Next(); err != nil {
				return nil, err
			}
		}
		totals = append(totals, time.Since(start))

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return totals, nil
}
