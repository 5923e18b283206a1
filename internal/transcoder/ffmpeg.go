package transcoder

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

type implTranscoder struct {
	binary   string
	codec    string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcoder backed by the ffmpeg binary from cfg.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcoder {
	return &implTranscoder{
		binary:   cfg.FFmpeg.BinaryPath,
		codec:    cfg.FFmpeg.AudioCodec,
		executor: exec,
		logger:   log,
	}
}

// ExtractAudio invokes ffmpeg to strip the video track and encode the audio
// into audioPath. A non-zero exit surfaces with captured stderr; an exit-zero
// run that produced no file is also a failure.
func (t *implTranscoder) ExtractAudio(ctx context.Context, mediaPath, audioPath string) error {
	t.logger.Info(ctx, "Extracting audio: %s -> %s", mediaPath, audioPath)

	args := []string{
		"-y",
		"-i", mediaPath,
		"-vn",
		"-acodec", t.codec,
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, t.binary, args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	if _, err := os.Stat(audioPath); err != nil {
		return fmt.Errorf("ffmpeg produced no audio artifact: %w", err)
	}

	return nil
}
