package watcher

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadURLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.txt")
	content := "# tonight's uploads\nhttps://video/abc\n\n  https://video/def  \n# skip me\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	urls, err := ReadURLFile(path)
	if err != nil {
		t.Fatalf("ReadURLFile() error = %v", err)
	}
	if len(urls) != 2 || urls[0] != "https://video/abc" || urls[1] != "https://video/def" {
		t.Errorf("urls = %v", urls)
	}
}

func TestReadURLFileMissing(t *testing.T) {
	if _, err := ReadURLFile("nonexistent.txt"); err == nil {
		t.Error("ReadURLFile() should error for missing file")
	}
}

func TestIsURLFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"drop/batch.txt", true},
		{"drop/links.URL", true},
		{"drop/video.mp4", false},
		{"drop/batch.txt.done", false},
	}

	for _, tt := range tests {
		if got := isURLFile(tt.path); got != tt.want {
			t.Errorf("isURLFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
