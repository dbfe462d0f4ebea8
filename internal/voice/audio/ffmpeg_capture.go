// Package audio holds the local device adapters of the voice coordinator:
// microphone capture, clip recording, speech synthesis and playback.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"productivity-assistant/internal/voice"
)

const (
	startupGrace = 250 * time.Millisecond
	stopGrace    = 1200 * time.Millisecond
)

// FFMPEGCapture streams microphone PCM (s16le) using ffmpeg.
type FFMPEGCapture struct {
	command string
}

func NewFFMPEGCapture(command string) *FFMPEGCapture {
	if command == "" {
		command = "ffmpeg"
	}
	return &FFMPEGCapture{command: command}
}

// Available reports whether the ffmpeg binary can be found.
func (c *FFMPEGCapture) Available() bool {
	_, err := exec.LookPath(c.command)
	return err == nil
}

func (c *FFMPEGCapture) Start(ctx context.Context, cfg voice.AudioConfig) (voice.AudioStream, error) {
	cfg = withAudioDefaults(cfg)

	args := []string{
		"-nostdin",
		"-hide_banner",
		"-loglevel", "warning",
		"-f", cfg.InputFormat,
		"-i", cfg.InputDevice,
		"-ac", strconv.Itoa(cfg.Channels),
		"-ar", strconv.Itoa(cfg.SampleRate),
		"-f", "s16le",
		"-",
	}

	cmd := exec.CommandContext(ctx, c.command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// An os.Pipe instead of StdoutPipe: Wait must not close the read end
	// while PCM ffmpeg flushed on stop is still unread.
	stdout, pw, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create ffmpeg stdout pipe: %w", err)
	}
	cmd.Stdout = pw
	if err := cmd.Start(); err != nil {
		_ = stdout.Close()
		_ = pw.Close()
		return nil, fmt.Errorf("%w: failed to start ffmpeg: %v", voice.ErrMicrophoneUnavailable, err)
	}
	_ = pw.Close()

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- cmd.Wait()
		close(waitErr)
	}()

	// A device that cannot be opened makes ffmpeg exit right away.
	select {
	case err := <-waitErr:
		_ = stdout.Close()
		detail := trimSpace(stderr.String())
		if err != nil {
			return nil, fmt.Errorf("%w: ffmpeg exited before capture started: %v: %s", voice.ErrMicrophoneUnavailable, err, detail)
		}
		return nil, fmt.Errorf("%w: ffmpeg exited before capture started", voice.ErrMicrophoneUnavailable)
	case <-time.After(startupGrace):
	}

	return &ffmpegStream{
		stdout:  stdout,
		stderr:  &stderr,
		process: cmd.Process,
		waitErr: waitErr,
	}, nil
}

func withAudioDefaults(cfg voice.AudioConfig) voice.AudioConfig {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 16000
	}
	if cfg.Channels <= 0 {
		cfg.Channels = 1
	}
	if cfg.InputFormat == "" {
		cfg.InputFormat = "pulse"
	}
	if cfg.InputDevice == "" {
		cfg.InputDevice = "default"
	}
	return cfg
}

type ffmpegStream struct {
	stdout *os.File
	stderr *bytes.Buffer

	process *os.Process
	waitErr <-chan error

	stopOnce sync.Once
	stopErr  error
}

// Read drains ffmpeg's output to EOF, including what it flushed after
// Stop, and releases the pipe once drained.
func (s *ffmpegStream) Read(p []byte) (int, error) {
	n, err := s.stdout.Read(p)
	if errors.Is(err, io.EOF) {
		_ = s.stdout.Close()
	}
	if errors.Is(err, os.ErrClosed) {
		err = io.EOF
	}
	return n, err
}

// Close stops ffmpeg and drops whatever output is still unread.
func (s *ffmpegStream) Close() error {
	err := s.Stop()
	_ = s.stdout.Close()
	return err
}

// Stop interrupts ffmpeg so it flushes, and kills it if it lingers.
// Output written before exit stays readable.
func (s *ffmpegStream) Stop() error {
	s.stopOnce.Do(func() {
		if s.process != nil {
			_ = s.process.Signal(os.Interrupt)
		}

		select {
		case err, ok := <-s.waitErr:
			if ok {
				s.stopErr = normalizeStopErr(err)
			}
		case <-time.After(stopGrace):
			if s.process != nil {
				_ = s.process.Kill()
			}
			if err, ok := <-s.waitErr; ok {
				s.stopErr = normalizeStopErr(err)
			}
		}

		if s.stopErr != nil && s.stderr.Len() > 0 {
			s.stopErr = fmt.Errorf("%w: %s", s.stopErr, trimSpace(s.stderr.String()))
		}
	})
	return s.stopErr
}

// normalizeStopErr treats the exit status of an interrupted ffmpeg as clean.
func normalizeStopErr(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

func trimSpace(s string) string {
	return string(bytes.TrimSpace([]byte(s)))
}
