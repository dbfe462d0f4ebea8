package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExecSynthesizer speaks through an on-device text to speech command
// such as espeak or say.
type ExecSynthesizer struct {
	path string
	args []string
}

// defaultSynthesizers are tried in order when no command is configured.
var defaultSynthesizers = []string{"espeak-ng", "espeak", "say"}

// NewExecSynthesizer resolves command (or the first known synthesizer on
// PATH). The text is passed as the last argument.
func NewExecSynthesizer(command string, args []string) *ExecSynthesizer {
	candidates := defaultSynthesizers
	if command != "" {
		candidates = []string{command}
	}
	for _, c := range candidates {
		if path, err := exec.LookPath(c); err == nil {
			return &ExecSynthesizer{path: path, args: args}
		}
	}
	return &ExecSynthesizer{args: args}
}

func (s *ExecSynthesizer) Available() bool {
	return s.path != ""
}

func (s *ExecSynthesizer) Speak(ctx context.Context, text string) error {
	if s.path == "" {
		return errors.New("no speech synthesizer found")
	}
	return run(ctx, s.path, append(append([]string(nil), s.args...), text)...)
}

// ExecPlayer plays audio URLs with a command line player.
type ExecPlayer struct {
	command string
	args    []string
}

// NewExecPlayer defaults to ffplay without a window.
func NewExecPlayer(command string, args []string) *ExecPlayer {
	if command == "" {
		command = "ffplay"
		if args == nil {
			args = []string{"-nodisp", "-autoexit", "-loglevel", "error"}
		}
	}
	return &ExecPlayer{command: command, args: args}
}

func (p *ExecPlayer) Play(ctx context.Context, url string) error {
	return run(ctx, p.command, append(append([]string(nil), p.args...), url)...)
}

func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return fmt.Errorf("%s: %w: %s", name, err, detail)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
