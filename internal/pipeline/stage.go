package pipeline

// Stage is one ordered unit of a job. The order is fixed; every job walks
// the same sequence from its resume point.
type Stage int

const (
	StageModelLoad Stage = iota
	StageDownload
	StageExtractAudio
	StageTranscribe
	StageSummarize

	stageDone // one past the last stage; "nothing left to run"
)

func (s Stage) String() string {
	switch s {
	case StageModelLoad:
		return "model load"
	case StageDownload:
		return "download"
	case StageExtractAudio:
		return "extract audio"
	case StageTranscribe:
		return "transcribe"
	case StageSummarize:
		return "summarize"
	}
	return "unknown"
}
