package persistence

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/felixbrock/vidcaption/internal/domain"
)

const defaultOpenAIBaseUrl = "https://api.openai.com/v1"

type transcriptionResp struct {
	Language string           `json:"language"`
	Text     string           `json:"text"`
	Segments []domain.Segment `json:"segments"`
}

// OpenAIRepo transcribes audio through an OpenAI-compatible
// /audio/transcriptions endpoint.
type OpenAIRepo struct {
	BaseHeaders []string
	BaseUrl     string
	Model       string
}

func NewOpenAIRepo(apiKey string, baseUrl string, model string) OpenAIRepo {
	if baseUrl == "" {
		baseUrl = defaultOpenAIBaseUrl
	}
	if model == "" {
		model = "whisper-1"
	}
	return OpenAIRepo{
		BaseHeaders: []string{fmt.Sprintf("Authorization: Bearer %s", apiKey)},
		BaseUrl:     baseUrl,
		Model:       model,
	}
}

func (r OpenAIRepo) Transcribe(ctx context.Context, audioPath string) (*domain.Transcript, error) {
	body, contentType, err := r.transcriptionForm(audioPath)

	if err != nil {
		return nil, err
	}

	resp, err := request[transcriptionResp](ctx, reqConfig{
		Method:  "POST",
		Url:     fmt.Sprintf("%s/audio/transcriptions", r.BaseUrl),
		Headers: append(append([]string{}, r.BaseHeaders...), fmt.Sprintf("Content-Type: %s", contentType)),
		Body:    body},
		200)

	if err != nil {
		return nil, fmt.Errorf("transcribe %s: %w", filepath.Base(audioPath), err)
	}

	return &domain.Transcript{Language: resp.Language, Segments: resp.Segments}, nil
}

func (r OpenAIRepo) transcriptionForm(audioPath string) ([]byte, string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"model", r.Model},
		{"response_format", "verbose_json"},
		{"timestamp_granularities[]", "segment"},
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", err
		}
	}

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
