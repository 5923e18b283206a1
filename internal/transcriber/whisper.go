package transcriber

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

type whisperModel struct {
	name       string
	modelPath  string
	binaryPath string
}

func (m *whisperModel) Name() string { return m.name }

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by a whisper.cpp binary.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg.Whisper,
		executor: exec,
		logger:   log,
	}
}

// LoadModel verifies the whisper binary and model weights are present and
// returns a handle reused by every job in the run. There is no file artifact
// for this; readiness is process-local.
func (t *implTranscriber) LoadModel(ctx context.Context) (Model, error) {
	if _, err := os.Stat(t.cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("whisper model %s: %w", t.cfg.ModelPath, err)
	}

	binary := t.cfg.BinaryPath
	if strings.ContainsRune(binary, os.PathSeparator) {
		if _, err := os.Stat(binary); err != nil {
			return nil, fmt.Errorf("whisper binary %s: %w", binary, err)
		}
	} else {
		resolved, err := exec.LookPath(binary)
		if err != nil {
			return nil, fmt.Errorf("whisper binary %s: %w", binary, err)
		}
		binary = resolved
	}

	name := strings.TrimSuffix(filepath.Base(t.cfg.ModelPath), filepath.Ext(t.cfg.ModelPath))
	t.logger.Info(ctx, "Whisper model ready: %s", name)

	return &whisperModel{name: name, modelPath: t.cfg.ModelPath, binaryPath: binary}, nil
}

// Transcribe runs whisper.cpp over the audio file and returns the plain-text
// transcript. whisper writes <prefix>.txt next to the audio; that scratch
// file is consumed and removed here, the caller owns the durable transcript
// artifact.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string, model Model) (string, error) {
	m, ok := model.(*whisperModel)
	if !ok {
		return "", fmt.Errorf("model handle was not loaded by this transcriber")
	}

	prefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing %s with %d threads", audioPath, t.cfg.Threads)

	args := []string{
		"-m", m.modelPath,
		"-f", audioPath,
		"-otxt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", prefix,
	}

	if _, err := t.executor.Execute(ctx, m.binaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	scratch := prefix + ".txt"
	data, err := os.ReadFile(scratch)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	os.Remove(scratch)

	return strings.TrimSpace(string(data)), nil
}
