package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/media"
)

// ProgressObserver receives per-stage lifecycle and progress events for one
// job. Download reports bytes; other stages report a completion percentage.
// Events for a job arrive strictly in order from a single goroutine, and
// progress is never reported backwards.
type ProgressObserver interface {
	StageStarted(id media.Identity, stage Stage)
	StageProgress(id media.Identity, stage Stage, done, total int64)
	// StageSkipped marks a stage already satisfied by an on-disk artifact;
	// displays should render it as complete.
	StageSkipped(id media.Identity, stage Stage)
	StageCompleted(id media.Identity, stage Stage)
	StageFailed(id media.Identity, stage Stage, err error)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) StageStarted(media.Identity, Stage)                {}
func (NopObserver) StageProgress(media.Identity, Stage, int64, int64) {}
func (NopObserver) StageSkipped(media.Identity, Stage)                {}
func (NopObserver) StageCompleted(media.Identity, Stage)              {}
func (NopObserver) StageFailed(media.Identity, Stage, error)          {}

type logObserver struct {
	logger logger.Logger
}

// NewLogObserver returns an observer reporting stage progress through the
// given logger. Byte-level updates go to debug to keep info output readable.
func NewLogObserver(log logger.Logger) ProgressObserver {
	return &logObserver{logger: log}
}

func (o *logObserver) StageStarted(id media.Identity, stage Stage) {
	o.logger.Info(context.Background(), "[%s] %s: started", id.ID, stage)
}

func (o *logObserver) StageProgress(id media.Identity, stage Stage, done, total int64) {
	if total > 0 {
		o.logger.Debug(context.Background(), "[%s] %s: %d/%d (%d%%)", id.ID, stage, done, total, done*100/total)
	} else {
		o.logger.Debug(context.Background(), "[%s] %s: %d bytes", id.ID, stage, done)
	}
}

func (o *logObserver) StageSkipped(id media.Identity, stage Stage) {
	o.logger.Info(context.Background(), "[%s] %s: already complete, skipping", id.ID, stage)
}

func (o *logObserver) StageCompleted(id media.Identity, stage Stage) {
	o.logger.Info(context.Background(), "[%s] %s: done", id.ID, stage)
}

func (o *logObserver) StageFailed(id media.Identity, stage Stage, err error) {
	o.logger.Error(context.Background(), "[%s] %s: failed: %v", id.ID, stage, err)
}
