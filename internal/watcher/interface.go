package watcher

import "context"

// Watcher monitors a drop directory for URL list files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// BatchHandler processes the URLs found in one drop file.
type BatchHandler func(ctx context.Context, urls []string) error
