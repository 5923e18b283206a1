package pipeline

import (
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/media"
	"github.com/nguyentantai21042004/video-digest/internal/summarizer"
	"github.com/nguyentantai21042004/video-digest/internal/transcoder"
	"github.com/nguyentantai21042004/video-digest/internal/transcriber"
	"github.com/nguyentantai21042004/video-digest/internal/workspace"
)

// Collaborators are the external systems the pipeline drives. All are
// narrow interfaces so tests can substitute in-memory fakes; the pipeline
// itself owns all artifact file I/O.
type Collaborators struct {
	Source      media.Source
	Transcoder  transcoder.Transcoder
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
}

type implPipeline struct {
	layout    workspace.Layout
	retention workspace.Policy
	deps      Collaborators
	observer  ProgressObserver
	logger    logger.Logger

	// model is loaded once and reused by every job in the run.
	model transcriber.Model
}

// New creates a Pipeline over the given working-directory layout and
// collaborators. Pass NopObserver{} when no progress display is attached.
func New(layout workspace.Layout, retention workspace.Policy, deps Collaborators, obs ProgressObserver, log logger.Logger) Pipeline {
	if obs == nil {
		obs = NopObserver{}
	}
	return &implPipeline{
		layout:    layout,
		retention: retention,
		deps:      deps,
		observer:  obs,
		logger:    log,
	}
}
