package summarizer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildPromptSections(t *testing.T) {
	prompt := buildPrompt("the transcript body")

	for _, section := range []string{"## Key Highlights", "## Main Points", "## Detailed Summary"} {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
	if !strings.Contains(prompt, "the transcript body") {
		t.Error("prompt missing transcript")
	}
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("googleapi: Error 429: Resource has been exhausted"), true},
		{errors.New("RESOURCE_EXHAUSTED"), true},
		{errors.New("quota exceeded for metric"), true},
		{errors.New("connection reset by peer"), false},
	}

	for _, tt := range tests {
		if got := isQuotaError(tt.err); got != tt.want {
			t.Errorf("isQuotaError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestRotateKeyWraps(t *testing.T) {
	s := &implSummarizer{apiKeys: []string{"a", "b", "c"}}

	s.rotateKey()
	s.rotateKey()
	s.rotateKey()
	if s.currentKey != 0 {
		t.Errorf("currentKey = %d, want 0 after full rotation", s.currentKey)
	}
}

func TestCleanMarkdownInline(t *testing.T) {
	if got := cleanMarkdownInline("a **bold** and `code` and __under__"); got != "a bold and code and under" {
		t.Errorf("cleanMarkdownInline = %q", got)
	}
}

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.docx")

	markdown := "## Key Highlights\n- **first** takeaway\n- second takeaway\n\n---\n\nA closing paragraph."
	if err := WriteDocx("My Video", markdown, path); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}
