package transcoder

import "context"

// Transcoder extracts the audio track from a media file into a standalone
// audio artifact at audioPath.
type Transcoder interface {
	ExtractAudio(ctx context.Context, mediaPath, audioPath string) error
}
