package executor

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// ExitError reports a command that started but exited non-zero, with its
// captured stderr for diagnostics.
type ExitError struct {
	Name     string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command '%s' exited with code %d\nstderr: %s", e.Name, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("command '%s' exited with code %d", e.Name, e.ExitCode)
}

// Execute runs an external command and returns its captured stdout
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", wrapRunError(name, err, stderr.String())
	}

	return stdout.String(), nil
}

// ExecuteStream runs an external command and invokes onLine for each line the
// command writes to stdout while it is still running. Used for tools that
// report progress on stdout (yt-dlp with --newline).
func (e *implExecutor) ExecuteStream(ctx context.Context, onLine func(line string), name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("command '%s' stdout pipe: %w", name, err)
	}

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("command '%s' start: %w", name, err)
	}

	var stdout strings.Builder
	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		stdout.WriteString(line)
		stdout.WriteByte('\n')
		if onLine != nil {
			onLine(line)
		}
	}

	if err := cmd.Wait(); err != nil {
		return "", wrapRunError(name, err, stderr.String())
	}

	return stdout.String(), nil
}

func wrapRunError(name string, err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Name: name, ExitCode: exitErr.ExitCode(), Stderr: stderr}
	}

	if stderr != "" {
		return fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderr)
	}
	return fmt.Errorf("command '%s' failed: %w", name, err)
}
