package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/summarizer"
)

type implSink struct {
	path    string
	docxDir string
	logger  logger.Logger
}

// New creates a Sink writing to the markdown file at path. When docxDir is
// non-empty, each entry is additionally exported as a docx file there.
func New(path, docxDir string, log logger.Logger) Sink {
	return &implSink{path: path, docxDir: docxDir, logger: log}
}

// Publish prepends the entry so the newest summary reads first. The whole
// file is rewritten to a temp file and renamed into place; an interrupted
// write can therefore never corrupt prior entries.
func (s *implSink) Publish(ctx context.Context, entry Entry) error {
	block := fmt.Sprintf("# %s (ID: %s)\n*Generated on %s*\n\n%s\n\n---\n\n",
		entry.Title,
		entry.ID,
		entry.GeneratedAt.Format("2006-01-02 15:04"),
		strings.TrimSpace(entry.Summary),
	)

	existing, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read summaries file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append([]byte(block), existing...), 0644); err != nil {
		return fmt.Errorf("write summaries file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace summaries file: %w", err)
	}

	s.exportDocx(ctx, entry)
	return nil
}

// exportDocx is best-effort; a failed export never fails the publish.
func (s *implSink) exportDocx(ctx context.Context, entry Entry) {
	if s.docxDir == "" {
		return
	}

	if err := os.MkdirAll(s.docxDir, 0755); err != nil {
		s.logger.Warn(ctx, "Failed to create docx dir %s: %v", s.docxDir, err)
		return
	}

	path := filepath.Join(s.docxDir, entry.ID+".docx")
	if err := summarizer.WriteDocx(entry.Title, entry.Summary, path); err != nil {
		s.logger.Warn(ctx, "Failed to export docx for %s: %v", entry.ID, err)
		return
	}

	s.logger.Debug(ctx, "Exported docx: %s", path)
}
