package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/felixbrock/vidcaption/internal/domain"
	"github.com/felixbrock/vidcaption/internal/media"
)

type Config struct {
	Port         string
	OAIApiKey    string
	OAIBaseUrl   string
	WhisperModel string
	PHApiKey     string
	PHBaseUrl    string
	WorkDir      string
	StaticDir    string
	FFmpegPath   string
	// HeaderHeight is the top bar height in pixels; the hero derives its
	// height and scroll offset from it.
	HeaderHeight        int
	MaxUploadBytes      int64
	MaxConcurrentJobs   int
	JobTimeout          time.Duration
	UploadRatePerMinute int
	SoftSubtitles       bool
	// TrustProxy takes the client address from X-Forwarded-For and X-Real-IP.
	TrustProxy bool
}

type JobRepo interface {
	Insert(job domain.Job) error
	Update(job domain.Job) error
	Read(id string) (*domain.Job, error)
}

type TranscriptionRepo interface {
	Transcribe(ctx context.Context, audioPath string) (*domain.Transcript, error)
}

type EventRepo interface {
	Capture(ctx context.Context, eventType string, jobId string) error
}

type MediaProcessor interface {
	ExtractAudio(ctx context.Context, video string, audio string) error
	AddSubtitles(ctx context.Context, opts media.SubtitleOptions) error
}

type App struct {
	JobRepo           JobRepo
	TranscriptionRepo TranscriptionRepo
	EventRepo         EventRepo
	Media             MediaProcessor
	Config            Config

	slots   chan struct{}
	limiter *ipLimiter
}

func (a *App) Routes() http.Handler {
	a.slots = make(chan struct{}, max(a.Config.MaxConcurrentJobs, 1))
	a.limiter = newIPLimiter(a.Config.UploadRatePerMinute, uploadBurst)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// Forwarded headers are client controlled; only honour them behind a
	// trusted reverse proxy.
	if a.Config.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(a.Config.StaticDir))))
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(a.Config.StaticDir, "assets")))))
	r.Get("/app-logo.png", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(a.Config.StaticDir, "app-logo.png"))
	})

	r.Get("/", ComponentHandler(a.index).ServeHTTP)
	r.Get("/upload", ComponentHandler(a.uploadPage).ServeHTTP)
	r.With(a.limiter.Middleware(ComponentHandler(a.tooManyRequests))).Post("/upload", ComponentHandler(a.upload).ServeHTTP)

	r.Route("/jobs/{id}", func(r chi.Router) {
		r.Get("/", ComponentHandler(a.jobPage).ServeHTTP)
		r.Get("/status", ComponentHandler(a.jobStatus).ServeHTTP)
		r.Get("/subtitles", AppHandler(a.downloadSubtitles).ServeHTTP)
		r.Get("/video", AppHandler(a.downloadVideo).ServeHTTP)
	})

	r.NotFound(ComponentHandler(a.notFound).ServeHTTP)
	r.MethodNotAllowed(ComponentHandler(a.methodNotAllowed).ServeHTTP)

	return r
}

func (a *App) Start() {
	if err := os.MkdirAll(a.Config.WorkDir, 0o755); err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}
}
