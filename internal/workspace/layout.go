package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Artifact names are fixed per job so completion can be detected from the
// directory contents alone. Only the media extension varies with what the
// source delivers; its base name does not.
const (
	MediaBase      = "video"
	AudioName      = "audio.mp3"
	TranscriptName = "transcription.txt"
	SummaryName    = "summary.txt"
)

// Layout maps stable job IDs to working directories and artifact paths.
// Storage is keyed on the immutable source-assigned ID only; titles are
// display metadata and never reach the filesystem, so title edits upstream
// cannot orphan artifacts.
type Layout struct {
	Root string
}

func NewLayout(root string) Layout {
	return Layout{Root: root}
}

func (l Layout) JobDir(id string) string {
	return filepath.Join(l.Root, id)
}

// EnsureJobDir creates the job's working directory if absent. Idempotent.
func (l Layout) EnsureJobDir(id string) (string, error) {
	dir := l.JobDir(id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create job dir: %w", err)
	}
	return dir, nil
}

func (l Layout) AudioPath(id string) string {
	return filepath.Join(l.JobDir(id), AudioName)
}

func (l Layout) TranscriptPath(id string) string {
	return filepath.Join(l.JobDir(id), TranscriptName)
}

func (l Layout) SummaryPath(id string) string {
	return filepath.Join(l.JobDir(id), SummaryName)
}

// FindMedia reports the job's media artifact, if any.
func (l Layout) FindMedia(id string) (string, bool) {
	return FindMediaIn(l.JobDir(id))
}

// FindMediaIn looks up the media artifact in dir. The extension depends on
// the source, so the lookup globs the fixed base name. In-flight downloader
// droppings (.part, .ytdl) are not evidence of a completed download.
func FindMediaIn(dir string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, MediaBase+".*"))
	if err != nil {
		return "", false
	}

	var candidates []string
	for _, m := range matches {
		if strings.HasSuffix(m, ".part") || strings.HasSuffix(m, ".ytdl") || strings.HasSuffix(m, ".tmp") {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.Strings(candidates)
	return candidates[0], true
}
