package pipeline

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

// Stage failures are job-local and folded into the job's Result at the
// pipeline boundary. Only ModelLoadError escapes the batch: no job can
// proceed without the shared model.

// MetadataError reports a failure to resolve a URL's stable identity.
type MetadataError struct {
	URL string
	Err error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("resolve metadata for %s: %v", e.URL, e.Err)
}
func (e *MetadataError) Unwrap() error { return e.Err }

// DownloadError reports a failed media fetch.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}
func (e *DownloadError) Unwrap() error { return e.Err }

// TranscodeError reports a failed audio extraction, carrying the external
// process exit code and captured stderr when available.
type TranscodeError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *TranscodeError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("transcode failed (exit %d): %s", e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("transcode failed: %v", e.Err)
}
func (e *TranscodeError) Unwrap() error { return e.Err }

// newTranscodeError lifts process exit details out of the error chain.
func newTranscodeError(err error) *TranscodeError {
	te := &TranscodeError{Err: err}
	var exitErr *executor.ExitError
	if errors.As(err, &exitErr) {
		te.ExitCode = exitErr.ExitCode
		te.Stderr = exitErr.Stderr
	}
	return te
}

// TranscribeError reports a failed speech-to-text run.
type TranscribeError struct {
	Err error
}

func (e *TranscribeError) Error() string { return fmt.Sprintf("transcribe: %v", e.Err) }
func (e *TranscribeError) Unwrap() error { return e.Err }

// SummarizeError reports a failed summarization call (network, quota, ...).
type SummarizeError struct {
	Err error
}

func (e *SummarizeError) Error() string { return fmt.Sprintf("summarize: %v", e.Err) }
func (e *SummarizeError) Unwrap() error { return e.Err }

// ModelLoadError is fatal to the whole run, not just the failing job.
type ModelLoadError struct {
	Err error
}

func (e *ModelLoadError) Error() string { return fmt.Sprintf("load model: %v", e.Err) }
func (e *ModelLoadError) Unwrap() error { return e.Err }
