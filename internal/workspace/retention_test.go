package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func setupJob(t *testing.T, withSummary bool) (Layout, string) {
	t.Helper()
	l := NewLayout(filepath.Join(t.TempDir(), "processing"))
	dir, err := l.EnsureJobDir("abc")
	if err != nil {
		t.Fatal(err)
	}
	mustWrite(t, filepath.Join(dir, "video.mp4"), "media")
	mustWrite(t, l.AudioPath("abc"), "audio")
	mustWrite(t, l.TranscriptPath("abc"), "transcript")
	if withSummary {
		mustWrite(t, l.SummaryPath("abc"), "summary")
	}
	return l, dir
}

func TestCleanArtifactsAllDiscardedRemovesDirs(t *testing.T) {
	l, dir := setupJob(t, false)

	l.CleanArtifacts("abc", Policy{})

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("job dir still present: %v", err)
	}
	if _, err := os.Stat(l.Root); !os.IsNotExist(err) {
		t.Errorf("processing dir still present: %v", err)
	}
}

func TestCleanArtifactsNeverRemovesSummary(t *testing.T) {
	l, dir := setupJob(t, true)

	l.CleanArtifacts("abc", Policy{})

	if _, err := os.Stat(l.SummaryPath("abc")); err != nil {
		t.Errorf("summary artifact removed: %v", err)
	}
	// Directory is non-empty, so the best-effort removal must leave it alone.
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("non-empty job dir removed: %v", err)
	}
	if _, ok := l.FindMedia("abc"); ok {
		t.Error("media artifact survived discard policy")
	}
}

func TestCleanArtifactsRespectsKeepFlags(t *testing.T) {
	l, _ := setupJob(t, true)

	l.CleanArtifacts("abc", Policy{KeepMedia: true, KeepTranscript: true})

	if _, ok := l.FindMedia("abc"); !ok {
		t.Error("kept media artifact removed")
	}
	if _, err := os.Stat(l.TranscriptPath("abc")); err != nil {
		t.Errorf("kept transcript removed: %v", err)
	}
	if _, err := os.Stat(l.AudioPath("abc")); err == nil {
		t.Error("discarded audio artifact still present")
	}
}

func TestCleanArtifactsMissingFilesIgnored(t *testing.T) {
	l := NewLayout(filepath.Join(t.TempDir(), "processing"))
	if _, err := l.EnsureJobDir("abc"); err != nil {
		t.Fatal(err)
	}

	// Nothing to remove; must not panic or error.
	l.CleanArtifacts("abc", Policy{})
}
