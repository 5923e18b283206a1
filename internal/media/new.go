package media

import (
	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

type implSource struct {
	binary   string
	format   string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Source backed by the yt-dlp binary from cfg.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Source {
	return &implSource{
		binary:   cfg.Source.BinaryPath,
		format:   cfg.Source.Format,
		executor: exec,
		logger:   log,
	}
}
