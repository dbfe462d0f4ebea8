package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"productivity-assistant/internal/voice"
	"productivity-assistant/internal/voice/repository"
	pkgLog "productivity-assistant/pkg/log"
)

// implUseCase is the capture state machine.
//
//	idle -> listening -> idle                  (streaming)
//	idle -> recording -> transcribing -> idle  (record and upload)
//
// Every capture cycle gets a generation number. Callbacks from a cycle
// that was cancelled or replaced compare generations and drop their
// results. The single state field is what keeps the two capture paths
// from ever holding the microphone together.
type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	dev        Devices
	cfg        Config
	strategy   voice.Strategy
	lifeCtx    context.Context
	lifeCancel context.CancelFunc

	mu          sync.Mutex
	state       voice.CaptureState
	transcript  string
	committed   string
	err         string
	errCode     voice.ErrorCode
	gen         uint64
	starting    bool
	stopping    bool
	closed      bool
	recognition voice.Recognition
	recording   voice.Recording
	cycleCtx    context.Context
	cycleCancel context.CancelFunc
	idle        chan struct{} // closed while idle
}

func (uc *implUseCase) Toggle(ctx context.Context) (voice.Status, error) {
	uc.mu.Lock()
	if uc.closed {
		st := uc.statusLocked()
		uc.mu.Unlock()
		return st, voice.ErrClosed
	}

	switch uc.state {
	case voice.StateIdle:
		return uc.start(ctx)
	case voice.StateListening:
		return uc.stopListening(ctx)
	case voice.StateRecording:
		return uc.stopRecording(ctx)
	default:
		st := uc.statusLocked()
		uc.mu.Unlock()
		return st, voice.ErrBusy
	}
}

// start is called with mu held and releases it.
func (uc *implUseCase) start(ctx context.Context) (voice.Status, error) {
	if uc.strategy == voice.StrategyNone {
		uc.failLocked(voice.ErrCaptureUnsupported, voice.ErrorCodeCapability)
		st := uc.statusLocked()
		uc.mu.Unlock()
		uc.notify(st)
		return st, voice.ErrCaptureUnsupported
	}

	uc.gen++
	gen := uc.gen
	cycleCtx, cancel := context.WithCancel(uc.lifeCtx)
	uc.cycleCtx, uc.cycleCancel = cycleCtx, cancel
	uc.starting = true
	uc.err, uc.errCode = "", voice.ErrorCodeNone

	streaming := uc.strategy == voice.StrategyStreaming
	if streaming {
		uc.transcript, uc.committed = "", ""
		uc.setStateLocked(voice.StateListening)
	} else {
		uc.setStateLocked(voice.StateRecording)
	}
	st := uc.statusLocked()
	uc.mu.Unlock()
	uc.notify(st)

	var (
		recognition voice.Recognition
		recording   voice.Recording
		err         error
	)
	if streaming {
		recognition, err = uc.dev.Recognizer.Start(cycleCtx)
	} else {
		recording, err = uc.dev.Recorder.Start(cycleCtx)
	}

	uc.mu.Lock()
	if gen != uc.gen {
		// Cancelled while the device was opening.
		uc.mu.Unlock()
		abort(recognition, recording)
		cancel()
		return uc.Status(), nil
	}
	uc.starting = false

	if err != nil {
		code := voice.ErrorCodeOf(err)
		if !streaming && code == voice.ErrorCodeRecognition {
			code = voice.ErrorCodeMicrophone
		}
		uc.l.Warnf(ctx, "voice.usecase.Toggle: start %s: %v", uc.strategy, err)
		uc.failLocked(err, code)
		st := uc.statusLocked()
		uc.mu.Unlock()
		uc.notify(st)
		return st, err
	}

	if streaming {
		uc.recognition = recognition
		go uc.watch(gen, recognition)
	} else {
		uc.recording = recording
	}
	st = uc.statusLocked()
	uc.mu.Unlock()
	return st, nil
}

// stopListening is called with mu held and releases it. The state stays
// listening until the recognizer closes its results.
func (uc *implUseCase) stopListening(ctx context.Context) (voice.Status, error) {
	if uc.starting {
		st := uc.statusLocked()
		uc.mu.Unlock()
		return st, voice.ErrBusy
	}
	if uc.stopping {
		st := uc.statusLocked()
		uc.mu.Unlock()
		return st, nil
	}
	uc.stopping = true
	rec := uc.recognition
	st := uc.statusLocked()
	uc.mu.Unlock()

	if err := rec.Stop(); err != nil {
		uc.l.Warnf(ctx, "voice.usecase.Toggle: stop recognizer: %v", err)
	}
	return st, nil
}

// stopRecording is called with mu held and releases it.
func (uc *implUseCase) stopRecording(ctx context.Context) (voice.Status, error) {
	if uc.starting {
		st := uc.statusLocked()
		uc.mu.Unlock()
		return st, voice.ErrBusy
	}
	rec := uc.recording
	uc.recording = nil
	gen, cycleCtx := uc.gen, uc.cycleCtx
	uc.setStateLocked(voice.StateTranscribing)
	st := uc.statusLocked()
	uc.mu.Unlock()
	uc.notify(st)

	go uc.transcribe(cycleCtx, gen, rec)
	return st, nil
}

// watch applies recognition results. The recognizer finalizes speech one
// segment at a time, so each result replaces the transcript with the
// committed segments followed by the current one.
func (uc *implUseCase) watch(gen uint64, rec voice.Recognition) {
	for r := range rec.Results() {
		uc.mu.Lock()
		if gen != uc.gen {
			uc.mu.Unlock()
			continue
		}
		text := strings.TrimSpace(r.Text)
		if r.Final {
			uc.committed = joinText(uc.committed, text)
			uc.transcript = uc.committed
		} else {
			uc.transcript = joinText(uc.committed, text)
		}
		st := uc.statusLocked()
		uc.mu.Unlock()
		uc.notify(st)
	}

	err := rec.Err()

	uc.mu.Lock()
	if gen != uc.gen {
		uc.mu.Unlock()
		return
	}
	if err != nil && uc.committed == "" {
		uc.l.Warnf(uc.lifeCtx, "voice.usecase.watch: %v", err)
		uc.failLocked(fmt.Errorf("speech recognition error: %w", err), voice.ErrorCodeOf(err))
	} else {
		uc.finishLocked()
	}
	st := uc.statusLocked()
	uc.mu.Unlock()
	uc.notify(st)
}

func (uc *implUseCase) transcribe(cycleCtx context.Context, gen uint64, rec voice.Recording) {
	clip, err := rec.Stop()
	if err == nil {
		ctx, cancel := context.WithTimeout(cycleCtx, uc.cfg.TranscribeTimeout)
		var tr voice.Transcription
		tr, err = uc.repo.Transcribe(ctx, clip)
		cancel()
		if err == nil {
			uc.mu.Lock()
			if gen == uc.gen {
				text := strings.TrimSpace(tr.Text)
				uc.transcript, uc.committed = text, text
				uc.finishLocked()
				st := uc.statusLocked()
				uc.mu.Unlock()
				uc.notify(st)
				return
			}
			uc.mu.Unlock()
			return
		}
	}

	uc.mu.Lock()
	if gen != uc.gen {
		uc.mu.Unlock()
		return
	}
	uc.l.Warnf(cycleCtx, "voice.usecase.transcribe: %v", err)
	code := voice.ErrorCodeTranscription
	if errors.Is(err, voice.ErrMicrophoneUnavailable) {
		code = voice.ErrorCodeMicrophone
	}
	uc.failLocked(fmt.Errorf("failed to transcribe audio: %w", err), code)
	st := uc.statusLocked()
	uc.mu.Unlock()
	uc.notify(st)
}

func (uc *implUseCase) Cancel(ctx context.Context) voice.Status {
	uc.mu.Lock()
	if uc.state == voice.StateIdle {
		st := uc.statusLocked()
		uc.mu.Unlock()
		return st
	}
	uc.gen++
	recognition, recording := uc.recognition, uc.recording
	uc.finishLocked()
	st := uc.statusLocked()
	uc.mu.Unlock()

	abort(recognition, recording)
	uc.l.Debugf(ctx, "voice.usecase.Cancel: capture cancelled")
	uc.notify(st)
	return st
}

func (uc *implUseCase) Await(ctx context.Context) (voice.Status, error) {
	uc.mu.Lock()
	idle := uc.idle
	uc.mu.Unlock()

	select {
	case <-idle:
		return uc.Status(), nil
	case <-ctx.Done():
		return uc.Status(), ctx.Err()
	}
}

func (uc *implUseCase) Status() voice.Status {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.statusLocked()
}

func (uc *implUseCase) ClearTranscript() {
	uc.mu.Lock()
	uc.transcript, uc.committed = "", ""
	st := uc.statusLocked()
	uc.mu.Unlock()
	uc.notify(st)
}

func (uc *implUseCase) ClearError() {
	uc.mu.Lock()
	uc.err, uc.errCode = "", voice.ErrorCodeNone
	st := uc.statusLocked()
	uc.mu.Unlock()
	uc.notify(st)
}

func (uc *implUseCase) Close() error {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return nil
	}
	uc.closed = true
	uc.mu.Unlock()

	uc.Cancel(uc.lifeCtx)
	uc.lifeCancel()
	return nil
}

// finishLocked returns to idle and releases the cycle's resources.
func (uc *implUseCase) finishLocked() {
	uc.starting = false
	uc.stopping = false
	uc.recognition = nil
	uc.recording = nil
	if uc.cycleCancel != nil {
		uc.cycleCancel()
		uc.cycleCancel = nil
	}
	uc.cycleCtx = nil
	uc.setStateLocked(voice.StateIdle)
}

func (uc *implUseCase) failLocked(err error, code voice.ErrorCode) {
	uc.finishLocked()
	uc.err = err.Error()
	uc.errCode = code
}

func (uc *implUseCase) setStateLocked(next voice.CaptureState) {
	switch {
	case next == voice.StateIdle && uc.state != voice.StateIdle:
		close(uc.idle)
	case next != voice.StateIdle && uc.state == voice.StateIdle:
		uc.idle = make(chan struct{})
	}
	uc.state = next
}

func (uc *implUseCase) statusLocked() voice.Status {
	return voice.Status{
		State:      uc.state,
		Strategy:   uc.strategy,
		Transcript: uc.transcript,
		Committed:  uc.committed,
		Err:        uc.err,
		ErrorCode:  uc.errCode,
	}
}

func (uc *implUseCase) notify(st voice.Status) {
	if uc.dev.Sink != nil {
		uc.dev.Sink.StatusChanged(st)
	}
}

func abort(recognition voice.Recognition, recording voice.Recording) {
	if recognition != nil {
		_ = recognition.Abort()
	}
	if recording != nil {
		_ = recording.Abort()
	}
}

func joinText(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
