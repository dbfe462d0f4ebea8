package voice

import "time"

// CaptureState is the position of the coordinator in its capture cycle.
type CaptureState string

const (
	StateIdle         CaptureState = "idle"
	StateListening    CaptureState = "listening"
	StateRecording    CaptureState = "recording"
	StateTranscribing CaptureState = "transcribing"
)

// Strategy is how speech becomes text. It is chosen once, when the
// coordinator is built.
type Strategy string

const (
	// StrategyStreaming recognizes speech live through a Recognizer.
	StrategyStreaming Strategy = "streaming"
	// StrategyRecordUpload records a clip and uploads it to a Transcriber.
	StrategyRecordUpload Strategy = "record_upload"
	// StrategyNone means no capture path is usable.
	StrategyNone Strategy = "none"
)

// ErrorCode classifies the error recorded on Status.
type ErrorCode string

const (
	ErrorCodeNone          ErrorCode = ""
	ErrorCodeCapability    ErrorCode = "capability"
	ErrorCodeMicrophone    ErrorCode = "microphone"
	ErrorCodeRecognition   ErrorCode = "recognition"
	ErrorCodeTranscription ErrorCode = "transcription"
)

// Status is a consistent view of the coordinator.
type Status struct {
	State    CaptureState
	Strategy Strategy
	// Transcript is the latest recognized text, interim results included.
	Transcript string
	// Committed is the final text ready to be sent on.
	Committed string
	Err       string
	ErrorCode ErrorCode
}

// Active reports whether a capture cycle is running.
func (s Status) Active() bool {
	return s.State != StateIdle
}

// AudioConfig describes how the microphone is captured.
type AudioConfig struct {
	SampleRate  int
	Channels    int
	InputFormat string
	InputDevice string
}

// Clip is a finished recording.
type Clip struct {
	Data        []byte
	Filename    string
	ContentType string
	Duration    time.Duration
}

// RecognitionResult is one recognizer update.
type RecognitionResult struct {
	Text  string
	Final bool
}

// Transcription is the backend's reading of an uploaded clip.
type Transcription struct {
	Text       string
	Confidence float64
	Duration   time.Duration
}

// SynthesizeOptions is a remote speech synthesis request.
type SynthesizeOptions struct {
	Text  string
	Voice string
	Speed float64
}

// Synthesis points at audio produced by the backend.
type Synthesis struct {
	AudioURL string
	Duration time.Duration
}

// VoiceOption is a voice the backend can synthesize with.
type VoiceOption struct {
	ID     string
	Name   string
	Gender string
}
