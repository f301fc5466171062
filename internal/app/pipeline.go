package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/felixbrock/vidcaption/internal/domain"
	"github.com/felixbrock/vidcaption/internal/media"
	"github.com/felixbrock/vidcaption/internal/subtitle"
)

const videoBase = "input"

// workspace is the per-job directory holding the upload and every artefact
// derived from it.
type workspace struct {
	dir string
}

func newWorkspace(workDir string, jobId string) workspace {
	return workspace{dir: filepath.Join(workDir, "jobs", jobId)}
}

func (ws workspace) video() string {
	return filepath.Join(ws.dir, videoBase+".mp4")
}

func (ws workspace) audio() string {
	return filepath.Join(ws.dir, "audio-"+videoBase+".wav")
}

func (ws workspace) subtitles(language string) string {
	return filepath.Join(ws.dir, subtitle.FileName(videoBase, language))
}

func (ws workspace) output() string {
	return filepath.Join(ws.dir, "output-"+videoBase+".mp4")
}

func (ws workspace) store(src io.Reader) error {
	if err := os.MkdirAll(ws.dir, 0o755); err != nil {
		return err
	}

	dst, err := os.Create(ws.video())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("store upload: %w", err)
	}

	return dst.Close()
}

func (ws workspace) remove() {
	if err := os.RemoveAll(ws.dir); err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
	}
}

func (a *App) enqueue(job domain.Job) {
	go a.process(job)
}

// process waits for a free slot, runs the captioning steps and records the
// outcome on the job.
func (a *App) process(job domain.Job) {
	a.slots <- struct{}{}
	defer func() { <-a.slots }()

	ctx, cancel := context.WithTimeout(context.Background(), a.jobTimeout())
	defer cancel()

	err := a.caption(ctx, &job)

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()), "job", job.Id)
		job.Error = err.Error()
		a.transition(&job, domain.JobFailed)
		a.capture(job.Id, "job_failed")
		return
	}

	a.transition(&job, domain.JobCompleted)
	a.capture(job.Id, "job_completed")
	slog.Info("captioned video", "job", job.Id, "language", job.Language)
}

func (a *App) caption(ctx context.Context, job *domain.Job) error {
	ws := newWorkspace(a.Config.WorkDir, job.Id)

	a.transition(job, domain.JobExtracting)
	err := a.Media.ExtractAudio(ctx, ws.video(), ws.audio())

	if err != nil {
		return fmt.Errorf("audio extraction failed: %w", err)
	}

	a.transition(job, domain.JobTranscribing)
	transcript, err := a.TranscriptionRepo.Transcribe(ctx, ws.audio())

	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	} else if len(transcript.Segments) == 0 {
		return errors.New("transcription failed: no speech detected")
	}

	job.Language = subtitle.LanguageCode(transcript.Language)

	a.transition(job, domain.JobSubtitling)
	srtPath := ws.subtitles(job.Language)
	err = os.WriteFile(srtPath, subtitle.Generate(transcript.Segments), 0o644)

	if err != nil {
		return fmt.Errorf("subtitle generation failed: %w", err)
	}

	a.transition(job, domain.JobRendering)
	err = a.Media.AddSubtitles(ctx, media.SubtitleOptions{
		Video:    ws.video(),
		Subtitle: srtPath,
		Output:   ws.output(),
		Language: job.Language,
		Title:    subtitle.TrackTitle(filepath.Base(srtPath)),
		Soft:     job.SoftSubtitle,
	})

	if err != nil {
		return fmt.Errorf("adding subtitles failed: %w", err)
	}

	return nil
}

func (a *App) transition(job *domain.Job, state string) {
	job.State = state
	job.UpdatedAt = time.Now().UTC()

	err := a.JobRepo.Update(*job)
	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()), "job", job.Id, "state", state)
	}
}

func (a *App) capture(jobId string, event string) {
	if a.EventRepo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := a.EventRepo.Capture(ctx, event, jobId)
	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()), "job", jobId)
	}
}

func (a *App) jobTimeout() time.Duration {
	if a.Config.JobTimeout <= 0 {
		return 30 * time.Minute
	}
	return a.Config.JobTimeout
}
