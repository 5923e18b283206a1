package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/media"
	"github.com/nguyentantai21042004/video-digest/internal/transcriber"
)

// Process runs one job end to end: resolve identity, detect the resume
// point from on-disk artifacts, run the remaining stages in order, apply
// retention on success. All stage errors are folded into the Result.
func (p *implPipeline) Process(ctx context.Context, url string) Result {
	identity, err := p.deps.Source.Resolve(ctx, url)
	if err != nil {
		// No identity yet; the URL stands in for display.
		return p.fail(media.Identity{URL: url}, StageDownload, &MetadataError{URL: url, Err: err})
	}

	if _, err := p.layout.EnsureJobDir(identity.ID); err != nil {
		return p.fail(identity, StageDownload, &DownloadError{URL: url, Err: err})
	}

	start := p.resumePoint(identity.ID)

	// Stages below the resume point are already satisfied; force their
	// progress display to complete without running them.
	for stage := StageModelLoad; stage < start && stage < stageDone; stage++ {
		p.observer.StageSkipped(identity, stage)
	}

	if start == stageDone {
		stored, err := os.ReadFile(p.layout.SummaryPath(identity.ID))
		if err != nil {
			return p.fail(identity, StageSummarize, &SummarizeError{Err: err})
		}
		p.logger.Info(ctx, "Summary already present for %s, nothing to run", identity.ID)
		return Result{Identity: identity, Summary: string(stored), GeneratedAt: time.Now()}
	}

	p.logger.Info(ctx, "Processing %s (%q) from stage %q", identity.ID, identity.Title, start)

	for stage := start; stage < stageDone; stage++ {
		if err := ctx.Err(); err != nil {
			return p.fail(identity, stage, err)
		}

		p.observer.StageStarted(identity, stage)
		if err := p.runStage(ctx, identity, stage); err != nil {
			return p.fail(identity, stage, err)
		}
		p.observer.StageCompleted(identity, stage)
	}

	summary, err := os.ReadFile(p.layout.SummaryPath(identity.ID))
	if err != nil {
		return p.fail(identity, StageSummarize, &SummarizeError{Err: err})
	}

	p.layout.CleanArtifacts(identity.ID, p.retention)

	return Result{Identity: identity, Summary: string(summary), GeneratedAt: time.Now()}
}

// fail marks the failing stage and everything downstream as failed for
// display. Artifacts already on disk are left alone: a partial file from the
// failed attempt is for the operator (or the stage's own retry) to deal
// with, and completed-stage artifacts must survive for the next resume.
func (p *implPipeline) fail(id media.Identity, stage Stage, err error) Result {
	for s := stage; s < stageDone; s++ {
		p.observer.StageFailed(id, s, err)
	}
	return Result{Identity: id, FailedStage: stage, Err: err}
}

func (p *implPipeline) runStage(ctx context.Context, id media.Identity, stage Stage) error {
	switch stage {
	case StageModelLoad:
		_, err := p.ensureModel(ctx)
		return err

	case StageDownload:
		report, finish := p.downloadProgress(id)
		if _, err := p.deps.Source.Fetch(ctx, id.URL, p.layout.JobDir(id.ID), report); err != nil {
			return &DownloadError{URL: id.URL, Err: err}
		}
		finish()
		return nil

	case StageExtractAudio:
		mediaPath, ok := p.layout.FindMedia(id.ID)
		if !ok {
			return newTranscodeError(fmt.Errorf("media artifact missing in %s", p.layout.JobDir(id.ID)))
		}
		if err := p.deps.Transcoder.ExtractAudio(ctx, mediaPath, p.layout.AudioPath(id.ID)); err != nil {
			return newTranscodeError(err)
		}
		p.observer.StageProgress(id, stage, 100, 100)
		return nil

	case StageTranscribe:
		model, err := p.ensureModel(ctx)
		if err != nil {
			return err
		}
		text, err := p.deps.Transcriber.Transcribe(ctx, p.layout.AudioPath(id.ID), model)
		if err != nil {
			return &TranscribeError{Err: err}
		}
		if err := os.WriteFile(p.layout.TranscriptPath(id.ID), []byte(text), 0644); err != nil {
			return &TranscribeError{Err: err}
		}
		// The collaborator reports no incremental progress; completion is
		// still signalled deterministically.
		p.observer.StageProgress(id, stage, 100, 100)
		return nil

	case StageSummarize:
		transcript, err := os.ReadFile(p.layout.TranscriptPath(id.ID))
		if err != nil {
			return &SummarizeError{Err: err}
		}
		summary, err := p.deps.Summarizer.Summarize(ctx, string(transcript))
		if err != nil {
			return &SummarizeError{Err: err}
		}
		if err := os.WriteFile(p.layout.SummaryPath(id.ID), []byte(summary), 0644); err != nil {
			return &SummarizeError{Err: err}
		}
		p.observer.StageProgress(id, stage, 100, 100)
		return nil
	}

	return fmt.Errorf("unknown stage %d", stage)
}

// ensureModel loads the shared model handle on first use. A load failure is
// wrapped as ModelLoadError, the one error kind that aborts the whole run.
func (p *implPipeline) ensureModel(ctx context.Context) (transcriber.Model, error) {
	if p.model != nil {
		return p.model, nil
	}

	model, err := p.deps.Transcriber.LoadModel(ctx)
	if err != nil {
		return nil, &ModelLoadError{Err: err}
	}

	p.model = model
	return model, nil
}

// downloadProgress clamps byte progress so observers never see it move
// backwards even if the source re-reports after a connection retry, and
// returns a finish func emitting the final complete update.
func (p *implPipeline) downloadProgress(id media.Identity) (media.ProgressFunc, func()) {
	var lastDone, lastTotal int64

	report := func(done, total int64) {
		if done < lastDone {
			done = lastDone
		}
		lastDone = done
		if total > lastTotal {
			lastTotal = total
		}
		p.observer.StageProgress(id, StageDownload, done, lastTotal)
	}

	finish := func() {
		if lastTotal > 0 {
			p.observer.StageProgress(id, StageDownload, lastTotal, lastTotal)
		} else {
			p.observer.StageProgress(id, StageDownload, 100, 100)
		}
	}

	return report, finish
}
