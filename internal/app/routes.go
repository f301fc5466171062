package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	g "maragu.dev/gomponents"

	"github.com/felixbrock/vidcaption/internal/components"
	"github.com/felixbrock/vidcaption/internal/domain"
	"github.com/felixbrock/vidcaption/internal/subtitle"
)

func (a *App) page(title string, content ...g.Node) templ.Component {
	return components.Page(components.PageConfig{Title: title, HeaderHeight: a.Config.HeaderHeight}, content...)
}

func (a *App) index(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	hero := components.NewHero(a.Config.HeaderHeight)
	return &ComponentResponse{Component: a.page("", hero.Node()), Code: 200, Message: "OK"}
}

func (a *App) uploadPage(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return &ComponentResponse{Component: a.page("Upload Video - vidCaption", components.UploadPage(a.Config.SoftSubtitles)), Code: 200, Message: "OK"}
}

func (a *App) notFound(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return a.errorResponse(get404(), nil)
}

func (a *App) methodNotAllowed(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return a.errorResponse(get405(), nil)
}

func (a *App) tooManyRequests(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return a.errorResponse(get429(), nil)
}

func (a *App) upload(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if a.Config.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)
	}

	file, header, err := r.FormFile(components.VideoField)

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return a.errorResponse(get413(), err)
	} else if err != nil {
		return a.errorResponse(get400(), err)
	}

	defer func() {
		err = file.Close()
		if err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
	}()

	now := time.Now().UTC()
	job := domain.Job{
		Id:           uuid.New().String(),
		VideoName:    videoName(header.Filename),
		State:        domain.JobPending,
		SoftSubtitle: r.FormValue(components.SoftField) == "on",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ws := newWorkspace(a.Config.WorkDir, job.Id)
	err = ws.store(file)

	if err != nil {
		ws.remove()
		return a.errorResponse(get500(), err)
	}

	err = a.JobRepo.Insert(job)

	if err != nil {
		ws.remove()
		return a.errorResponse(get500(), err)
	}

	a.capture(job.Id, "job_created")
	a.enqueue(job)

	return &ComponentResponse{Redirect: components.JobPath(job.Id)}
}

func (a *App) readJob(r *http.Request) (*domain.Job, *errCtx, error) {
	job, err := a.JobRepo.Read(chi.URLParam(r, "id"))

	if errors.Is(err, domain.ErrJobNotFound) {
		ctx := get404()
		return nil, &ctx, err
	} else if err != nil {
		ctx := get500()
		return nil, &ctx, err
	}

	return job, nil, nil
}

func (a *App) jobPage(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	job, failure, err := a.readJob(r)

	if failure != nil {
		return a.errorResponse(*failure, err)
	}

	return &ComponentResponse{Component: a.page(job.VideoName+" - vidCaption", components.JobPage(*job)), Code: 200, Message: "OK"}
}

func (a *App) jobStatus(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	job, failure, err := a.readJob(r)

	if failure != nil {
		return &ComponentResponse{
			Error:     err,
			Message:   failure.Title,
			Code:      failure.Code,
			Component: components.Templ(components.ErrorMessage(failure.Code, failure.Title, failure.Msg)),
		}
	}

	return &ComponentResponse{Component: components.Templ(components.JobStatus(*job)), Code: 200, Message: "OK"}
}

func (a *App) downloadSubtitles(w http.ResponseWriter, r *http.Request) *AppError {
	return a.download(w, r, func(ws workspace, job domain.Job) (string, string) {
		return ws.subtitles(job.Language), downloadName(job.VideoName, "."+subtitle.LanguageCode(job.Language)+".srt")
	})
}

func (a *App) downloadVideo(w http.ResponseWriter, r *http.Request) *AppError {
	return a.download(w, r, func(ws workspace, job domain.Job) (string, string) {
		return ws.output(), downloadName(job.VideoName, ".captioned.mp4")
	})
}

func (a *App) download(w http.ResponseWriter, r *http.Request, pick func(workspace, domain.Job) (string, string)) *AppError {
	job, failure, err := a.readJob(r)

	if failure != nil {
		return &AppError{Error: err, Message: failure.Title, Code: failure.Code}
	}

	if job.State != domain.JobCompleted {
		return &AppError{Message: "Captions are not ready yet.", Code: http.StatusConflict}
	}

	path, name := pick(newWorkspace(a.Config.WorkDir, job.Id), *job)

	if _, err := os.Stat(path); err != nil {
		return &AppError{Error: err, Message: "Not found", Code: http.StatusNotFound}
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)
	return nil
}

func videoName(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return "video.mp4"
	}
	return name
}

func downloadName(videoName string, suffix string) string {
	return strings.TrimSuffix(videoName, filepath.Ext(videoName)) + suffix
}
