package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"

	"github.com/felixbrock/vidcaption/internal/app"
	"github.com/felixbrock/vidcaption/internal/components"
	"github.com/felixbrock/vidcaption/internal/media"
	"github.com/felixbrock/vidcaption/internal/persistence"
)

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Error(fmt.Sprintf("%s must be an integer, using %d", key, fallback))
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Error(fmt.Sprintf("%s must be a boolean, using %t", key, fallback))
		return fallback
	}
	return b
}

func config() app.Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
	}

	oaiApiKey := os.Getenv("OAI_API_KEY")
	if oaiApiKey == "" {
		slog.Error("OAI_API_KEY environment variable not set")
	}

	jobTimeout, err := time.ParseDuration(envOr("JOB_TIMEOUT", "30m"))
	if err != nil {
		slog.Error(fmt.Sprintf("JOB_TIMEOUT is not a duration: %s", err.Error()))
		jobTimeout = 30 * time.Minute
	}

	return app.Config{
		Port:                envOr("GOPORT", "8000"),
		OAIApiKey:           oaiApiKey,
		OAIBaseUrl:          os.Getenv("OAI_BASE_URL"),
		WhisperModel:        envOr("WHISPER_MODEL", "whisper-1"),
		PHApiKey:            os.Getenv("PH_API_KEY"),
		PHBaseUrl:           os.Getenv("PH_BASE_URL"),
		WorkDir:             envOr("WORK_DIR", "data"),
		StaticDir:           envOr("STATIC_DIR", "static"),
		FFmpegPath:          envOr("FFMPEG_PATH", "ffmpeg"),
		HeaderHeight:        envInt("HEADER_HEIGHT", components.DefaultHeaderHeight),
		MaxUploadBytes:      int64(envInt("MAX_UPLOAD_MB", 500)) << 20,
		MaxConcurrentJobs:   envInt("MAX_CONCURRENT_JOBS", 2),
		JobTimeout:          jobTimeout,
		UploadRatePerMinute: envInt("UPLOAD_RATE_PER_MINUTE", 6),
		SoftSubtitles:       envBool("SOFT_SUBTITLES", false),
		TrustProxy:          envBool("TRUST_PROXY", false),
	}
}

func main() {
	config := config()

	jobRepo, err := persistence.NewJobRepo(filepath.Join(config.WorkDir, "jobs.csv"))
	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}

	a := app.App{
		JobRepo:           jobRepo,
		TranscriptionRepo: persistence.NewOpenAIRepo(config.OAIApiKey, config.OAIBaseUrl, config.WhisperModel),
		EventRepo:         persistence.NewPHRepo(config.PHApiKey, config.PHBaseUrl),
		Media:             media.NewFFmpeg(config.FFmpegPath),
		Config:            config,
	}

	a.Start()
}
