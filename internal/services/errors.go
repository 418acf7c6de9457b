package services

// TranscriptError covers every transcript-stage failure: no tracks,
// disabled captions, unknown video, network errors. Only the message
// of the underlying failure is kept.
type TranscriptError struct{ Message string }

func (e *TranscriptError) Error() string { return e.Message }

// GenerationError covers every failure of the generation call.
type GenerationError struct{ Message string }

func (e *GenerationError) Error() string { return e.Message }
