package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")

const (
	JobPending      = "pending"
	JobExtracting   = "extracting"
	JobTranscribing = "transcribing"
	JobSubtitling   = "subtitling"
	JobRendering    = "rendering"
	JobCompleted    = "completed"
	JobFailed       = "failed"
)

type Job struct {
	Id           string    `json:"id"`
	VideoName    string    `json:"video_name"`
	State        string    `json:"state"`
	Language     string    `json:"language"`
	SoftSubtitle bool      `json:"soft_subtitle"`
	Error        string    `json:"error"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Done reports whether the job reached a terminal state.
func (j Job) Done() bool {
	return j.State == JobCompleted || j.State == JobFailed
}

type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type Transcript struct {
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}
