package clockbench

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"
)

// countingCandidate records how many times it was invoked.
type countingCandidate struct {
	name  string
	calls int
}

func (c *countingCandidate) Name() string { return c.name }

func (c *countingCandidate) Next() (uint16, error) {
	c.calls++
	return uint16(c.calls) & ClockSeqMask, nil
}

// failingCandidate errors after a fixed number of calls.
type failingCandidate struct {
	after int
	calls int
	err   error
}

func (f *failingCandidate) Name() string { return "failing" }

func (f *failingCandidate) Next() (uint16, error) {
	f.calls++
	if f.calls > f.after {
		return 0, f.err
	}
	return 0, nil
}

func TestWarmupCallsEveryCandidate(t *testing.T) {
	t.Parallel()

	a := &countingCandidate{name: "a"}
	b := &countingCandidate{name: "b"}
	cfg := Config{Iterations: 50, WarmupRounds: 7, Repeats: 3}
	r := NewRunner(cfg, []Candidate{a, b}, io.Discard)

	if err := r.Warmup(); err != nil {
		t.Fatalf("Warmup failed: %v", err)
	}

	if a.calls != 7 || b.calls != 7 {
		t.Errorf("warmup calls = %d/%d, want 7/7", a.calls, b.calls)
	}
}

func TestMeasureReturnsOneTotalPerRepeat(t *testing.T) {
	t.Parallel()

	c := &countingCandidate{name: "c"}
	cfg := Config{Iterations: 50, WarmupRounds: 7, Repeats: 3}
	r := NewRunner(cfg, []Candidate{c}, io.Discard)

	totals, err := r.Measure(c)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if len(totals) != cfg.Repeats {
		t.Errorf("got %d totals, want %d", len(totals), cfg.Repeats)
	}
	if c.calls != cfg.Repeats*cfg.Iterations {
		t.Errorf("measured calls = %d, want %d", c.calls, cfg.Repeats*cfg.Iterations)
	}
}

// TestRunKeepsWarmupOutOfSamples checks the call accounting over a full
// run: warmup rounds happen exactly once per candidate and only the
// measured batches beyond them feed the statistics.
func TestRunKeepsWarmupOutOfSamples(t *testing.T) {
	t.Parallel()

	candidates := []Candidate{
		&countingCandidate{name: "a"},
		&countingCandidate{name: "b"},
		&countingCandidate{name: "c"},
	}
	cfg := Config{Iterations: 40, WarmupRounds: 9, Repeats: 2}
	r := NewRunner(cfg, candidates, io.Discard)

	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := cfg.WarmupRounds + cfg.Repeats*cfg.Iterations
	for _, c := range candidates {
		cc := c.(*countingCandidate)
		if cc.calls != want {
			t.Errorf("%s: %d calls, want %d (warmup %d + measured %d)",
				cc.name, cc.calls, want, cfg.WarmupRounds, cfg.Repeats*cfg.Iterations)
		}
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero iterations", Config{Iterations: 0, WarmupRounds: 1, Repeats: 1}, ErrInvalidIterations},
		{"negative iterations", Config{Iterations: -5, WarmupRounds: 1, Repeats: 1}, ErrInvalidIterations},
		{"zero warmup", Config{Iterations: 1, WarmupRounds: 0, Repeats: 1}, ErrInvalidWarmup},
		{"zero repeats", Config{Iterations: 1, WarmupRounds: 1, Repeats: 0}, ErrInvalidRepeats},
		{"negative repeats", Config{Iterations: 1, WarmupRounds: 1, Repeats: -1}, ErrInvalidRepeats},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := &countingCandidate{name: "probe"}
			r := NewRunner(tc.cfg, []Candidate{c}, io.Discard)

			err := r.Run()
			if !errors.Is(err, tc.want) {
				t.Fatalf("Run returned %v, want %v", err, tc.want)
			}
			if c.calls != 0 {
				t.Errorf("candidate invoked %d times despite invalid config", c.calls)
			}
		})
	}
}

func TestRunRequiresCandidates(t *testing.T) {
	t.Parallel()

	r := NewRunner(Config{Iterations: 1, WarmupRounds: 1, Repeats: 1}, nil, io.Discard)
	if err := r.Run(); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Run returned %v, want %v", err, ErrNoCandidates)
	}
}

func TestRunPropagatesCandidateFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("entropy pool exhausted")
	f := &failingCandidate{after: 20, err: boom}
	cfg := Config{Iterations: 50, WarmupRounds: 5, Repeats: 2}
	r := NewRunner(cfg, []Candidate{f}, io.Discard)

	if err := r.Run(); !errors.Is(err, boom) {
		t.Errorf("Run returned %v, want wrapped %v", err, boom)
	}
}

func TestRunFailsDuringWarmup(t *testing.T) {
	t.Parallel()

	boom := errors.New("entropy pool exhausted")
	f := &failingCandidate{after: 2, err: boom}
	cfg := Config{Iterations: 50, WarmupRounds: 5, Repeats: 2}
	r := NewRunner(cfg, []Candidate{f}, io.Discard)

	err := r.Run()
	if !errors.Is(err, boom) {
		t.Fatalf("Run returned %v, want wrapped %v", err, boom)
	}
	if !strings.Contains(err.Error(), "warmup") {
		t.Errorf("error %q does not mention warmup", err)
	}
}

func TestRunWritesBannerAndTable(t *testing.T) {
	t.Parallel()

	cfg := Config{Iterations: 10, WarmupRounds: 1, Repeats: 2}
	candidates := []Candidate{
		&countingCandidate{name: "first"},
		&countingCandidate{name: "second"},
	}

	var buf bytes.Buffer
	r := NewRunner(cfg, candidates, &buf)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		runtime.Version(),
		"Benchmarking 10 iterations",
		"Running warmup...",
		"Benchmarking first...",
		"Benchmarking second...",
		"Operations/sec:",
		"=== Results Summary ===",
		"Method",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
