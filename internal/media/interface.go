package media

import "context"

// ProgressFunc receives byte-level download progress. total may be 0 when
// the source cannot estimate the final size.
type ProgressFunc func(done, total int64)

// Identity is the stable, source-assigned identity of one job. ID keys all
// storage; Title is display metadata only and may change between runs.
type Identity struct {
	ID    string
	URL   string
	Title string
}

// Source resolves a URL's identity without downloading and fetches its media
// artifact into a destination directory.
type Source interface {
	Resolve(ctx context.Context, url string) (Identity, error)
	Fetch(ctx context.Context, url, destDir string, onProgress ProgressFunc) (string, error)
}
