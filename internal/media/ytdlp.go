package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/workspace"
)

// progressTemplate makes yt-dlp print machine-readable byte counts, one line
// per update. "NA" is printed for unknown fields.
const progressTemplate = "download:%(progress.downloaded_bytes)s %(progress.total_bytes)s %(progress.total_bytes_estimate)s"

// Resolve queries the source for the video's stable id and title without
// downloading anything. yt-dlp returns the same id for the same URL across
// calls, which is what makes resume possible.
func (s *implSource) Resolve(ctx context.Context, url string) (Identity, error) {
	out, err := s.executor.Execute(ctx, s.binary,
		"--no-playlist",
		"--skip-download",
		"--no-warnings",
		"--print", "id",
		"--print", "title",
		url,
	)
	if err != nil {
		return Identity{}, fmt.Errorf("resolve metadata: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	id := strings.TrimSpace(lines[0])
	if id == "" {
		return Identity{}, fmt.Errorf("resolve metadata: empty id for %s", url)
	}

	title := id
	if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
		title = strings.TrimSpace(lines[1])
	}

	return Identity{ID: id, URL: url, Title: title}, nil
}

// Fetch downloads the media into destDir under the fixed artifact base name,
// reporting byte progress parsed from yt-dlp's stdout.
func (s *implSource) Fetch(ctx context.Context, url, destDir string, onProgress ProgressFunc) (string, error) {
	template := filepath.Join(destDir, workspace.MediaBase+".%(ext)s")

	args := []string{
		"--no-playlist",
		"--no-warnings",
		"-f", s.format,
		"-o", template,
		"--newline",
		"--progress-template", progressTemplate,
		url,
	}

	_, err := s.executor.ExecuteStream(ctx, func(line string) {
		if onProgress == nil {
			return
		}
		if done, total, ok := parseProgressLine(line); ok {
			onProgress(done, total)
		}
	}, s.binary, args...)
	if err != nil {
		return "", fmt.Errorf("fetch media: %w", err)
	}

	path, ok := workspace.FindMediaIn(destDir)
	if !ok {
		return "", fmt.Errorf("fetch media: no media artifact in %s after download", destDir)
	}

	s.logger.Debug(ctx, "Fetched %s -> %s", url, path)
	return path, nil
}

// parseProgressLine decodes lines produced by progressTemplate. When the
// exact total is unknown the estimate substitutes for it.
func parseProgressLine(line string) (done, total int64, ok bool) {
	rest, found := strings.CutPrefix(line, "download:")
	if !found {
		return 0, 0, false
	}

	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return 0, 0, false
	}

	done = parseBytes(fields[0])
	if done < 0 {
		return 0, 0, false
	}
	total = parseBytes(fields[1])
	if total < 0 {
		total = parseBytes(fields[2])
	}
	if total < 0 {
		total = 0
	}
	return done, total, true
}

// parseBytes handles both integer and float renderings; yt-dlp prints "NA"
// for fields it does not know, which maps to -1 here.
func parseBytes(s string) int64 {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return -1
	}
	return int64(n)
}
