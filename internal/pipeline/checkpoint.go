package pipeline

import "os"

// resumePoint reports the first stage that still has to run for the job.
//
// Completion predicates are evaluated from the last stage backward, and the
// first stage found complete settles the question: a later artifact can only
// exist because every earlier stage ran at some point, and the earlier
// artifacts may since have been removed by retention cleanup. Once a later
// artifact is found, earlier ones are never consulted — checking them too
// would wrongly re-run work after cleanup.
//
// Model readiness is process-local, not a file: the handle does not survive
// a restart, but any on-disk artifact outranks it in the scan.
func (p *implPipeline) resumePoint(id string) Stage {
	checks := []struct {
		stage Stage
		done  func() bool
	}{
		{StageModelLoad, func() bool { return p.model != nil }},
		{StageDownload, func() bool { _, ok := p.layout.FindMedia(id); return ok }},
		{StageExtractAudio, func() bool { return fileExists(p.layout.AudioPath(id)) }},
		{StageTranscribe, func() bool { return fileExists(p.layout.TranscriptPath(id)) }},
		{StageSummarize, func() bool { return fileExists(p.layout.SummaryPath(id)) }},
	}

	for i := len(checks) - 1; i >= 0; i-- {
		if checks[i].done() {
			return checks[i].stage + 1
		}
	}
	return StageModelLoad
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
