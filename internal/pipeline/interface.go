package pipeline

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/media"
)

// Result is the terminal outcome of one job. Exactly one of Summary or Err
// is set; FailedStage is meaningful only when Err is non-nil. Results are
// created once at pipeline completion and never mutated.
type Result struct {
	Identity    media.Identity
	Summary     string
	FailedStage Stage
	Err         error
	GeneratedAt time.Time
}

func (r Result) Failed() bool { return r.Err != nil }

// Failure records one job that did not complete, with the stage it died in.
type Failure struct {
	URL   string
	Stage Stage
	Err   error
}

// RunSummary aggregates one batch invocation.
type RunSummary struct {
	RunID     string
	Succeeded []Result
	Failed    []Failure
	// Aborted is set when the run stopped on an external cancellation
	// rather than exhausting its URLs. Completed results are preserved.
	Aborted bool
}

// Pipeline processes a single URL end to end, resuming from on-disk
// artifacts when a prior attempt was interrupted. Stage failures are folded
// into the Result, never returned as panics or bare errors.
type Pipeline interface {
	Process(ctx context.Context, url string) Result
}

// Batch iterates jobs sequentially, isolating per-job failures and
// forwarding completed results to the sink.
type Batch interface {
	Run(ctx context.Context, urls []string) (RunSummary, error)
}
