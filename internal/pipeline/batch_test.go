package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/media"
	"github.com/nguyentantai21042004/video-digest/internal/sink"
)

// fakePipeline scripts per-URL outcomes for batch-level tests.
type fakePipeline struct {
	results map[string]Result
	calls   []string
	onCall  func(url string)
}

func (f *fakePipeline) Process(ctx context.Context, url string) Result {
	f.calls = append(f.calls, url)
	if f.onCall != nil {
		f.onCall(url)
	}
	if r, ok := f.results[url]; ok {
		return r
	}
	return Result{
		Identity:    media.Identity{ID: "id-" + url, URL: url, Title: "t"},
		Summary:     "summary of " + url,
		GeneratedAt: time.Now(),
	}
}

type fakeSink struct {
	entries []sink.Entry
	err     error
}

func (f *fakeSink) Publish(ctx context.Context, e sink.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, e)
	return nil
}

func TestRunIsolatesJobFailures(t *testing.T) {
	fp := &fakePipeline{results: map[string]Result{
		"u2": {
			Identity:    media.Identity{URL: "u2"},
			FailedStage: StageDownload,
			Err:         &DownloadError{URL: "u2", Err: errors.New("404")},
		},
	}}
	fs := &fakeSink{}
	b := NewBatch(fp, fs, logger.New("error"))

	summary, err := b.Run(context.Background(), []string{"u1", "u2", "u3"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(summary.Succeeded) != 2 {
		t.Errorf("succeeded = %d, want 2", len(summary.Succeeded))
	}
	if len(summary.Failed) != 1 {
		t.Fatalf("failed = %d, want 1", len(summary.Failed))
	}
	if summary.Failed[0].URL != "u2" || summary.Failed[0].Stage != StageDownload {
		t.Errorf("failure = %+v", summary.Failed[0])
	}
	if summary.Aborted {
		t.Error("a job failure must not mark the run aborted")
	}
	if len(fp.calls) != 3 {
		t.Errorf("process calls = %v, want all three URLs", fp.calls)
	}
	if len(fs.entries) != 2 {
		t.Errorf("published entries = %d, want 2", len(fs.entries))
	}
}

func TestRunModelLoadFailureAbortsRun(t *testing.T) {
	fp := &fakePipeline{results: map[string]Result{
		"u1": {
			Identity:    media.Identity{URL: "u1"},
			FailedStage: StageModelLoad,
			Err:         &ModelLoadError{Err: errors.New("weights missing")},
		},
	}}
	b := NewBatch(fp, &fakeSink{}, logger.New("error"))

	summary, err := b.Run(context.Background(), []string{"u1", "u2", "u3"})

	var me *ModelLoadError
	if !errors.As(err, &me) {
		t.Fatalf("Run() error = %v, want *ModelLoadError", err)
	}
	if len(fp.calls) != 1 {
		t.Errorf("process calls = %v, remaining jobs should not run", fp.calls)
	}
	if len(summary.Failed) != 1 {
		t.Errorf("failed = %d, want 1", len(summary.Failed))
	}
}

func TestRunCancellationBetweenJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	fp := &fakePipeline{}
	fp.onCall = func(url string) {
		if url == "u1" {
			cancel() // operator interrupt while the first job finishes
		}
	}
	b := NewBatch(fp, &fakeSink{}, logger.New("error"))

	summary, err := b.Run(ctx, []string{"u1", "u2", "u3"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if !summary.Aborted {
		t.Error("summary.Aborted = false, want true")
	}
	if len(summary.Succeeded) != 1 {
		t.Errorf("succeeded = %d, completed results must be preserved", len(summary.Succeeded))
	}
	if len(fp.calls) != 1 {
		t.Errorf("process calls = %v, cancellation must stop at the job boundary", fp.calls)
	}
}

func TestRunSinkFailureDoesNotFailJob(t *testing.T) {
	fp := &fakePipeline{}
	b := NewBatch(fp, &fakeSink{err: errors.New("disk full")}, logger.New("error"))

	summary, err := b.Run(context.Background(), []string{"u1"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(summary.Succeeded) != 1 {
		t.Errorf("succeeded = %d, want 1", len(summary.Succeeded))
	}
}

func TestRunAssignsRunID(t *testing.T) {
	b := NewBatch(&fakePipeline{}, &fakeSink{}, logger.New("error"))

	s1, _ := b.Run(context.Background(), nil)
	s2, _ := b.Run(context.Background(), nil)
	if s1.RunID == "" || s1.RunID == s2.RunID {
		t.Errorf("run IDs = %q, %q; want distinct non-empty", s1.RunID, s2.RunID)
	}
}
