package sink

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

func TestPublishNewestFirst(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "summaries.md")
	s := New(path, "", logger.New("error"))

	first := Entry{ID: "aaa", Title: "First Video", Summary: "first summary", GeneratedAt: time.Now()}
	second := Entry{ID: "bbb", Title: "Second Video", Summary: "second summary", GeneratedAt: time.Now()}

	if err := s.Publish(ctx, first); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := s.Publish(ctx, second); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	posSecond := strings.Index(content, "Second Video")
	posFirst := strings.Index(content, "First Video")
	if posSecond < 0 || posFirst < 0 {
		t.Fatalf("entries missing from file:\n%s", content)
	}
	if posSecond > posFirst {
		t.Error("newest entry is not first")
	}
	if !strings.Contains(content, "(ID: bbb)") {
		t.Errorf("entry header missing id:\n%s", content)
	}
	if !strings.Contains(content, "first summary") {
		t.Error("prior entry content lost on second publish")
	}
}

func TestPublishCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summaries.md")
	s := New(path, "", logger.New("error"))

	err := s.Publish(context.Background(), Entry{ID: "abc", Title: "T", Summary: "s", GeneratedAt: time.Now()})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("summaries file not created: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after publish")
	}
}

func TestPublishExportsDocx(t *testing.T) {
	dir := t.TempDir()
	docxDir := filepath.Join(dir, "docx")
	s := New(filepath.Join(dir, "summaries.md"), docxDir, logger.New("error"))

	err := s.Publish(context.Background(), Entry{ID: "abc", Title: "T", Summary: "## Key Highlights\n- one", GeneratedAt: time.Now()})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(docxDir, "abc.docx")); err != nil {
		t.Errorf("docx export missing: %v", err)
	}
}
