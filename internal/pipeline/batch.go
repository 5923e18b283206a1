package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/sink"
)

type implBatch struct {
	pipeline Pipeline
	sink     sink.Sink
	logger   logger.Logger
}

// NewBatch creates a Batch forwarding completed results to the given sink.
func NewBatch(p Pipeline, s sink.Sink, log logger.Logger) Batch {
	return &implBatch{pipeline: p, sink: s, logger: log}
}

// Run processes urls sequentially. A job's failure is recorded and the batch
// moves on; a model-load failure aborts the whole run, and cancellation is
// honored at job boundaries so an in-flight job finishes cleanly first.
func (b *implBatch) Run(ctx context.Context, urls []string) (RunSummary, error) {
	summary := RunSummary{RunID: uuid.New().String()}

	b.logger.Info(ctx, "Run %s: %d URL(s)", summary.RunID, len(urls))

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			summary.Aborted = true
			b.logger.Warn(ctx, "Run %s aborted after %d of %d job(s)", summary.RunID, i, len(urls))
			return summary, err
		}

		b.logger.Info(ctx, "[%d/%d] %s", i+1, len(urls), url)
		result := b.pipeline.Process(ctx, url)

		if result.Failed() {
			var modelErr *ModelLoadError
			if errors.As(result.Err, &modelErr) {
				summary.Failed = append(summary.Failed, Failure{URL: url, Stage: result.FailedStage, Err: result.Err})
				b.logger.Error(ctx, "Run %s aborted: %v", summary.RunID, result.Err)
				return summary, result.Err
			}
			if errors.Is(result.Err, context.Canceled) || errors.Is(result.Err, context.DeadlineExceeded) {
				summary.Aborted = true
				b.logger.Warn(ctx, "Run %s aborted during %s", summary.RunID, url)
				return summary, result.Err
			}

			b.logger.Error(ctx, "Job %s failed at %s: %v", url, result.FailedStage, result.Err)
			summary.Failed = append(summary.Failed, Failure{URL: url, Stage: result.FailedStage, Err: result.Err})
			continue
		}

		if err := b.sink.Publish(ctx, sink.Entry{
			ID:          result.Identity.ID,
			Title:       result.Identity.Title,
			Summary:     result.Summary,
			GeneratedAt: result.GeneratedAt,
		}); err != nil {
			// The summary artifact is still on disk; losing the sink write
			// does not undo the job.
			b.logger.Error(ctx, "Failed to publish result for %s: %v", result.Identity.ID, err)
		}

		summary.Succeeded = append(summary.Succeeded, result)
	}

	b.logger.Info(ctx, "Run %s complete: %d succeeded, %d failed",
		summary.RunID, len(summary.Succeeded), len(summary.Failed))

	return summary, nil
}
