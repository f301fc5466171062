package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	name string
	args []string
	err  error
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.name = name
	r.args = args
	return r.err
}

func TestExtractAudioInvokesFFmpeg(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	f := FFmpeg{Path: "/usr/bin/ffmpeg", Runner: runner}

	err := f.ExtractAudio(context.Background(), "/jobs/a/input.mp4", "/jobs/a/audio-input.wav")
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/ffmpeg", runner.name)
	require.Equal(t, []string{"-y", "-i", "/jobs/a/input.mp4", "/jobs/a/audio-input.wav"}, runner.args)
}

func TestSubtitleArgsBurnIn(t *testing.T) {
	t.Parallel()

	args := SubtitleArgs(SubtitleOptions{
		Video:    "/jobs/a/input.mp4",
		Subtitle: "/jobs/a/sub-input.eng.srt",
		Output:   "/jobs/a/output-input.mp4",
	})

	require.Equal(t, []string{
		"-y",
		"-i", "/jobs/a/input.mp4",
		"-vf", "subtitles=/jobs/a/sub-input.eng.srt",
		"/jobs/a/output-input.mp4",
	}, args)
}

func TestSubtitleArgsEscapesFilterSeparators(t *testing.T) {
	t.Parallel()

	args := SubtitleArgs(SubtitleOptions{Video: "in.mp4", Subtitle: `C:\subs\it's.srt`, Output: "out.mp4"})
	require.Equal(t, `subtitles=C\:\\subs\\it\'s.srt`, args[4])
}

func TestSubtitleArgsSoftTrack(t *testing.T) {
	t.Parallel()

	args := SubtitleArgs(SubtitleOptions{
		Video:    "input.mp4",
		Subtitle: "sub-input.eng.srt",
		Output:   "output-input.mp4",
		Language: "eng",
		Title:    "sub-input.eng",
		Soft:     true,
	})

	require.Equal(t, []string{
		"-y",
		"-i", "input.mp4",
		"-i", "sub-input.eng.srt",
		"-c", "copy",
		"-c:s", "mov_text",
		"-metadata:s:s:0", "language=eng",
		"-metadata:s:s:0", "title=sub-input.eng",
		"output-input.mp4",
	}, args)
}

func TestAddSubtitlesWrapsRunnerError(t *testing.T) {
	t.Parallel()

	boom := errors.New("exit status 1")
	f := FFmpeg{Path: "ffmpeg", Runner: &recordingRunner{err: boom}}

	err := f.AddSubtitles(context.Background(), SubtitleOptions{Video: "a", Subtitle: "b", Output: "c"})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "add subtitles")
}

func TestNewFFmpegDefaultsToPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ffmpeg", NewFFmpeg("").Path)
	require.Equal(t, "/opt/ffmpeg", NewFFmpeg("/opt/ffmpeg").Path)
}
