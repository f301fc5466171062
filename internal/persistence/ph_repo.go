package persistence

import (
	"context"
	"encoding/json"
	"fmt"
)

const defaultPHBaseUrl = "https://eu.posthog.com"

type phEvent struct {
	ApiKey     string            `json:"api_key"`
	Event      string            `json:"event"`
	Properties map[string]string `json:"properties"`
}

// PHRepo captures product analytics events. Captures are dropped when no API
// key is configured.
type PHRepo struct {
	BaseHeaders []string
	BaseUrl     string
	ApiKey      string
}

func NewPHRepo(apiKey string, baseUrl string) PHRepo {
	if baseUrl == "" {
		baseUrl = defaultPHBaseUrl
	}
	return PHRepo{
		BaseHeaders: []string{"Content-Type: application/json"},
		BaseUrl:     baseUrl,
		ApiKey:      apiKey,
	}
}

func (r PHRepo) Capture(ctx context.Context, eventType string, jobId string) error {
	if r.ApiKey == "" {
		return nil
	}

	body, err := json.Marshal(phEvent{
		ApiKey:     r.ApiKey,
		Event:      eventType,
		Properties: map[string]string{"distinct_id": jobId},
	})

	if err != nil {
		return err
	}

	_, err = request[struct{}](ctx, reqConfig{
		Method:  "POST",
		Url:     fmt.Sprintf("%s/capture/", r.BaseUrl),
		Headers: r.BaseHeaders,
		Body:    body},
		200)

	if err != nil {
		return fmt.Errorf("capture %s: %w", eventType, err)
	}

	return nil
}
