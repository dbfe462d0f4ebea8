package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"productivity-assistant/internal/voice"
)

const defaultClipName = "recording.wav"

func (r *implRepository) Transcribe(ctx context.Context, clip voice.Clip) (voice.Transcription, error) {
	if len(clip.Data) == 0 {
		return voice.Transcription{}, voice.ErrNoAudio
	}
	name := clip.Filename
	if name == "" {
		name = defaultClipName
	}

	var resp transcriptionResp
	if err := r.client.Upload(ctx, "/voice/transcribe", "audio", name, bytes.NewReader(clip.Data), &resp); err != nil {
		return voice.Transcription{}, fmt.Errorf("voice.rest.Transcribe: %w", err)
	}
	return resp.toDomain(), nil
}

func (r *implRepository) Synthesize(ctx context.Context, opt voice.SynthesizeOptions) (voice.Synthesis, error) {
	var resp synthesizeResp
	body := synthesizeReq{Text: opt.Text, Voice: opt.Voice, Speed: opt.Speed}
	if err := r.client.Post(ctx, "/voice/synthesize", body, &resp); err != nil {
		return voice.Synthesis{}, fmt.Errorf("voice.rest.Synthesize: %w", err)
	}
	if resp.AudioURL == "" {
		return voice.Synthesis{}, errors.New("voice.rest.Synthesize: no audio_url in response")
	}

	// The backend answers with a path on its own host.
	audioURL, err := r.client.ResolveURL(resp.AudioURL)
	if err != nil {
		return voice.Synthesis{}, fmt.Errorf("voice.rest.Synthesize: %w", err)
	}
	return voice.Synthesis{AudioURL: audioURL, Duration: seconds(resp.Duration)}, nil
}

func (r *implRepository) Voices(ctx context.Context) ([]voice.VoiceOption, error) {
	var resp voicesResp
	if err := r.client.Get(ctx, "/voice/voices", nil, &resp); err != nil {
		return nil, fmt.Errorf("voice.rest.Voices: %w", err)
	}

	out := make([]voice.VoiceOption, 0, len(resp.Voices))
	for _, v := range resp.Voices {
		out = append(out, voice.VoiceOption{ID: v.ID, Name: v.Name, Gender: v.Gender})
	}
	return out, nil
}
