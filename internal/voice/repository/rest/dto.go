package rest

import (
	"time"

	"productivity-assistant/internal/voice"
)

type transcriptionResp struct {
	Text       string   `json:"text"`
	Confidence float64  `json:"confidence"`
	Duration   *float64 `json:"duration"`
}

func (r transcriptionResp) toDomain() voice.Transcription {
	return voice.Transcription{
		Text:       r.Text,
		Confidence: r.Confidence,
		Duration:   seconds(r.Duration),
	}
}

type synthesizeReq struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice,omitempty"`
	Speed float64 `json:"speed,omitempty"`
}

type synthesizeResp struct {
	Message  string   `json:"message"`
	AudioURL string   `json:"audio_url"`
	Duration *float64 `json:"duration"`
}

type voicesResp struct {
	Voices []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Gender string `json:"gender"`
	} `json:"voices"`
}

func seconds(v *float64) time.Duration {
	if v == nil {
		return 0
	}
	return time.Duration(*v * float64(time.Second))
}
