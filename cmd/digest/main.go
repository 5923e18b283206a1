package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/media"
	"github.com/nguyentantai21042004/video-digest/internal/pipeline"
	"github.com/nguyentantai21042004/video-digest/internal/sink"
	"github.com/nguyentantai21042004/video-digest/internal/summarizer"
	"github.com/nguyentantai21042004/video-digest/internal/transcoder"
	"github.com/nguyentantai21042004/video-digest/internal/transcriber"
	"github.com/nguyentantai21042004/video-digest/internal/watcher"
	"github.com/nguyentantai21042004/video-digest/internal/workspace"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "path to config file")
	watchDir := flag.String("watch", "", "watch a directory for URL list files instead of taking URLs as arguments")
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log := logger.New(cfg.Logging.Level)

	apiKeys := config.APIKeysFromEnv()
	if len(apiKeys) == 0 {
		fmt.Fprintln(os.Stderr, "No API key found. Set GEMINI_API_KEYS (or GEMINI_API_KEY).")
		return 1
	}

	urls := flag.Args()
	if *watchDir == "" && len(urls) == 0 {
		usage()
		return 1
	}

	exec := executor.New()
	layout := workspace.NewLayout(cfg.Paths.Processing)
	retention := workspace.Policy{
		KeepMedia:      cfg.Retention.KeepMedia,
		KeepAudio:      cfg.Retention.KeepAudio,
		KeepTranscript: cfg.Retention.KeepTranscript,
	}

	docxDir := ""
	if cfg.Export.Docx {
		docxDir = cfg.Export.DocxDir
	}

	deps := pipeline.Collaborators{
		Source:      media.New(cfg, exec, log),
		Transcoder:  transcoder.New(cfg, exec, log),
		Transcriber: transcriber.New(cfg, exec, log),
		Summarizer:  summarizer.New(apiKeys, cfg.Gemini.Model, log),
	}

	pipe := pipeline.New(layout, retention, deps, pipeline.NewLogObserver(log), log)
	batch := pipeline.NewBatch(pipe, sink.New(cfg.Paths.Summaries, docxDir, log), log)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *watchDir != "" {
		return runWatch(ctx, *watchDir, batch, log)
	}

	summary, err := batch.Run(ctx, urls)
	if err != nil {
		log.Error(ctx, "Run ended early: %v", err)
	}
	log.Info(ctx, "Done: %d succeeded, %d failed", len(summary.Succeeded), len(summary.Failed))

	if len(summary.Succeeded) > 0 {
		return 0
	}
	return 1
}

// runWatch blocks on the drop-directory watcher until interrupted.
func runWatch(ctx context.Context, dir string, batch pipeline.Batch, log logger.Logger) int {
	handler := func(ctx context.Context, urls []string) error {
		summary, err := batch.Run(ctx, urls)
		if err != nil {
			return err
		}
		log.Info(ctx, "Batch done: %d succeeded, %d failed", len(summary.Succeeded), len(summary.Failed))
		return nil
	}

	w, err := watcher.New(dir, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return 1
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && err != context.Canceled {
		log.Error(ctx, "Watcher error: %v", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] <url> [<url> ...]

Summarizes remote videos: download, extract audio, transcribe, summarize.
Interrupted jobs resume from their last completed stage.

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}
