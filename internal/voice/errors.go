package voice

import "errors"

var (
	ErrRecognizerUnavailable = errors.New("speech recognition is not available")
	ErrCaptureUnsupported    = errors.New("no audio capture method is available")
	ErrMicrophoneUnavailable = errors.New("failed to access microphone")
	ErrBusy                  = errors.New("voice input is busy transcribing")
	ErrNoAudio               = errors.New("no audio captured")
	ErrClosed                = errors.New("voice input is closed")
)

// ErrorCodeOf classifies err for Status.ErrorCode.
func ErrorCodeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return ErrorCodeNone
	case errors.Is(err, ErrRecognizerUnavailable), errors.Is(err, ErrCaptureUnsupported):
		return ErrorCodeCapability
	case errors.Is(err, ErrMicrophoneUnavailable):
		return ErrorCodeMicrophone
	default:
		return ErrorCodeRecognition
	}
}
