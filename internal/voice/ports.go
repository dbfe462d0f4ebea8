package voice

import (
	"context"
	"io"
)

// AudioStream is a live microphone capture of raw PCM.
type AudioStream interface {
	io.ReadCloser
	// Stop releases the microphone. Reads return io.EOF afterwards.
	Stop() error
}

// Microphone opens capture streams.
type Microphone interface {
	Available() bool
	Start(ctx context.Context, cfg AudioConfig) (AudioStream, error)
}

// Recognizer turns live speech into text.
type Recognizer interface {
	// Available reports whether recognition can run here at all.
	Available(ctx context.Context) bool
	Start(ctx context.Context) (Recognition, error)
}

// Recognition is one running recognizer session.
type Recognition interface {
	// Results is closed once the session has ended and the microphone
	// has been released.
	Results() <-chan RecognitionResult
	// Stop ends capture and lets the recognizer deliver its final result.
	Stop() error
	// Abort ends the session without waiting for results.
	Abort() error
	// Err is the reason the session failed, valid after Results is closed.
	Err() error
}

// Recorder captures a clip for later upload.
type Recorder interface {
	Available() bool
	Start(ctx context.Context) (Recording, error)
}

// Recording is a clip being captured.
type Recording interface {
	// Stop releases the microphone and returns the captured clip.
	Stop() (Clip, error)
	// Abort releases the microphone and drops the clip.
	Abort() error
}

// Synthesizer speaks text on this device.
type Synthesizer interface {
	Available() bool
	Speak(ctx context.Context, text string) error
}

// Player plays audio from a URL.
type Player interface {
	Play(ctx context.Context, url string) error
}

// EventSink is told about every status change.
type EventSink interface {
	StatusChanged(st Status)
}
