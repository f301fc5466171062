package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command. Tests swap it out to inspect arguments.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if i := strings.LastIndex(msg, "\n"); i >= 0 {
			msg = msg[i+1:]
		}
		return fmt.Errorf("%s: %w: %s", name, err, msg)
	}

	return nil
}

type SubtitleOptions struct {
	Video    string
	Subtitle string
	Output   string
	// Language is an ISO 639-2 code; see subtitle.LanguageCode.
	Language string
	Title    string
	// Soft muxes the subtitles as a selectable mov_text track instead of
	// burning them into the picture.
	Soft bool
}

type FFmpeg struct {
	Path   string
	Runner Runner
}

func NewFFmpeg(path string) FFmpeg {
	if path == "" {
		path = "ffmpeg"
	}
	return FFmpeg{Path: path, Runner: execRunner{}}
}

func (f FFmpeg) ExtractAudio(ctx context.Context, video string, audio string) error {
	err := f.Runner.Run(ctx, f.Path, ExtractAudioArgs(video, audio)...)
	if err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	return nil
}

func (f FFmpeg) AddSubtitles(ctx context.Context, opts SubtitleOptions) error {
	err := f.Runner.Run(ctx, f.Path, SubtitleArgs(opts)...)
	if err != nil {
		return fmt.Errorf("add subtitles: %w", err)
	}
	return nil
}

func ExtractAudioArgs(video string, audio string) []string {
	return []string{"-y", "-i", video, audio}
}

func SubtitleArgs(opts SubtitleOptions) []string {
	if opts.Soft {
		return []string{
			"-y",
			"-i", opts.Video,
			"-i", opts.Subtitle,
			"-c", "copy",
			"-c:s", "mov_text",
			"-metadata:s:s:0", "language=" + opts.Language,
			"-metadata:s:s:0", "title=" + opts.Title,
			opts.Output,
		}
	}

	return []string{
		"-y",
		"-i", opts.Video,
		"-vf", "subtitles=" + escapeFilterPath(opts.Subtitle),
		opts.Output,
	}
}

// escapeFilterPath escapes the characters the filtergraph parser treats as
// option separators.
func escapeFilterPath(path string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `:`, `\:`)
	return r.Replace(path)
}
