package transcriber

import "context"

// Model is an opaque handle to loaded speech-to-text resources. It is loaded
// once per run and passed into every Transcribe call rather than held as
// ambient state.
type Model interface {
	Name() string
}

// Transcriber loads a speech-to-text model and turns audio files into text.
type Transcriber interface {
	LoadModel(ctx context.Context) (Model, error)
	Transcribe(ctx context.Context, audioPath string, model Model) (string, error)
}
