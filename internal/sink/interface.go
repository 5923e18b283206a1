package sink

import (
	"context"
	"time"
)

// Entry is one completed job's publishable result.
type Entry struct {
	ID          string
	Title       string
	Summary     string
	GeneratedAt time.Time
}

// Sink persists completed results into a human-readable document, newest
// first. Publish is called once per completed job.
type Sink interface {
	Publish(ctx context.Context, entry Entry) error
}
