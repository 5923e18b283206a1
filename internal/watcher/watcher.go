package watcher

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

type implWatcher struct {
	inputDir string
	handler  BatchHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start blocks, processing drop files sequentially as they appear. Jobs run
// one batch at a time to match the pipeline's single-job execution model.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for URL list files (.txt, .url)", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isURLFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring %s", event.Name)
				continue
			}

			// Small delay so the file is fully written before reading.
			time.Sleep(500 * time.Millisecond)
			w.process(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying filesystem watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) process(ctx context.Context, path string) {
	urls, err := ReadURLFile(path)
	if err != nil {
		w.logger.Error(ctx, "Failed to read %s: %v", path, err)
		return
	}
	if len(urls) == 0 {
		w.logger.Warn(ctx, "No URLs in %s", path)
		return
	}

	w.logger.Info(ctx, "Picked up %s: %d URL(s)", path, len(urls))
	if err := w.handler(ctx, urls); err != nil {
		w.logger.Error(ctx, "Batch for %s failed: %v", path, err)
		return
	}

	// Mark the file consumed so a restart does not reprocess it.
	if err := os.Rename(path, path+".done"); err != nil {
		w.logger.Warn(ctx, "Failed to mark %s done: %v", path, err)
	}
}

// ReadURLFile parses a drop file: one URL per line, blank lines and
// #-comments skipped.
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}

func isURLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".url":
		return true
	}
	return false
}
