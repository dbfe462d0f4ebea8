package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"productivity-assistant/internal/voice"
)

// Recorder buffers microphone audio and hands it over as a WAV clip.
type Recorder struct {
	mic voice.Microphone
	cfg voice.AudioConfig
}

func NewRecorder(mic voice.Microphone, cfg voice.AudioConfig) *Recorder {
	return &Recorder{mic: mic, cfg: withAudioDefaults(cfg)}
}

func (r *Recorder) Available() bool {
	return r.mic != nil && r.mic.Available()
}

func (r *Recorder) Start(ctx context.Context) (voice.Recording, error) {
	stream, err := r.mic.Start(ctx, r.cfg)
	if err != nil {
		if errors.Is(err, voice.ErrMicrophoneUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", voice.ErrMicrophoneUnavailable, err)
	}

	rec := &recording{
		stream: stream,
		cfg:    r.cfg,
		done:   make(chan struct{}),
	}
	go rec.drain()
	return rec, nil
}

type recording struct {
	stream voice.AudioStream
	cfg    voice.AudioConfig

	pcm     bytes.Buffer
	readErr error
	done    chan struct{}

	once sync.Once
}

func (r *recording) drain() {
	defer close(r.done)
	if _, err := io.Copy(&r.pcm, r.stream); err != nil && !errors.Is(err, io.EOF) {
		r.readErr = err
	}
}

func (r *recording) Stop() (voice.Clip, error) {
	var stopErr error
	r.once.Do(func() { stopErr = r.stream.Stop() })
	<-r.done

	if r.pcm.Len() == 0 {
		if stopErr != nil {
			return voice.Clip{}, stopErr
		}
		if r.readErr != nil {
			return voice.Clip{}, r.readErr
		}
		return voice.Clip{}, voice.ErrNoAudio
	}

	pcm := r.pcm.Bytes()
	return voice.Clip{
		Data:        encodeWAV(pcm, r.cfg.SampleRate, r.cfg.Channels),
		Filename:    "recording.wav",
		ContentType: "audio/wav",
		Duration:    pcmDuration(len(pcm), r.cfg.SampleRate, r.cfg.Channels),
	}, nil
}

func (r *recording) Abort() error {
	var err error
	r.once.Do(func() { err = r.stream.Stop() })
	<-r.done
	return err
}
