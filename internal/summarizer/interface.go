package summarizer

import "context"

// Summarizer turns a transcript into a markdown summary via an external
// text-generation service.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
