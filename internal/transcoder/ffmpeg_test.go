package transcoder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

type fakeExecutor struct {
	execute func(ctx context.Context, name string, args ...string) (string, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.execute(ctx, name, args...)
}

func (f *fakeExecutor) ExecuteStream(ctx context.Context, onLine func(string), name string, args ...string) (string, error) {
	return f.execute(ctx, name, args...)
}

func newTestTranscoder(exec *fakeExecutor) Transcoder {
	cfg := &config.Config{}
	cfg.Whisper.ModelPath = "m.bin"
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return New(cfg, exec, logger.New("error"))
}

func TestExtractAudio(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "audio.mp3")

	tc := newTestTranscoder(&fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			if name != "ffmpeg" {
				t.Fatalf("binary = %q, want ffmpeg", name)
			}
			joined := strings.Join(args, " ")
			if !strings.Contains(joined, "-vn") || !strings.Contains(joined, "-acodec libmp3lame") {
				t.Fatalf("unexpected args: %q", joined)
			}
			if args[len(args)-1] != audioPath {
				t.Fatalf("output path = %q, want %q", args[len(args)-1], audioPath)
			}
			return "", os.WriteFile(audioPath, []byte("mp3"), 0644)
		},
	})

	if err := tc.ExtractAudio(context.Background(), filepath.Join(dir, "video.mp4"), audioPath); err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}
}

func TestExtractAudioCommandFailure(t *testing.T) {
	exitErr := &executor.ExitError{Name: "ffmpeg", ExitCode: 1, Stderr: "Invalid data found"}
	tc := newTestTranscoder(&fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", exitErr
		},
	})

	err := tc.ExtractAudio(context.Background(), "v.mp4", filepath.Join(t.TempDir(), "audio.mp3"))
	if err == nil {
		t.Fatal("ExtractAudio() should fail")
	}

	var got *executor.ExitError
	if !errors.As(err, &got) {
		t.Fatalf("error chain should carry *executor.ExitError, got %v", err)
	}
	if got.ExitCode != 1 || !strings.Contains(got.Stderr, "Invalid data") {
		t.Errorf("exit error = %+v", got)
	}
}

func TestExtractAudioMissingOutputIsError(t *testing.T) {
	tc := newTestTranscoder(&fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", nil // exit zero but writes nothing
		},
	})

	if err := tc.ExtractAudio(context.Background(), "v.mp4", filepath.Join(t.TempDir(), "audio.mp3")); err == nil {
		t.Error("missing output file should be an error")
	}
}
