package workspace

import "os"

// Policy selects which of a succeeded job's artifacts to keep. The summary
// artifact is outside retention entirely: the result sink owns persistence
// of the final text.
type Policy struct {
	KeepMedia      bool
	KeepAudio      bool
	KeepTranscript bool
}

// CleanArtifacts applies policy to a succeeded job. Removal is best-effort:
// an already-absent file is not an error, and the trailing directory removals
// only succeed when nothing is left inside.
func (l Layout) CleanArtifacts(id string, policy Policy) {
	if !policy.KeepMedia {
		if media, ok := l.FindMedia(id); ok {
			os.Remove(media)
		}
	}
	if !policy.KeepAudio {
		os.Remove(l.AudioPath(id))
	}
	if !policy.KeepTranscript {
		os.Remove(l.TranscriptPath(id))
	}

	os.Remove(l.JobDir(id))
	if !policy.KeepMedia && !policy.KeepAudio && !policy.KeepTranscript {
		os.Remove(l.Root)
	}
}
