package persistence

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/felixbrock/vidcaption/internal/app"
)

type reqConfig struct {
	Method  string
	Url     string
	Headers []string
	Body    []byte
	Client  *http.Client
}

func request[T any](ctx context.Context, config reqConfig, expectedResCode int) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, config.Method, config.Url, bytes.NewBuffer(config.Body))

	if err != nil {
		return nil, err
	}

	for i := 0; i < len(config.Headers); i++ {
		headerKV := strings.SplitN(config.Headers[i], ":", 2)
		if len(headerKV) != 2 {
			return nil, fmt.Errorf("malformed header %q", headerKV[0])
		}
		req.Header.Add(strings.TrimSpace(headerKV[0]), strings.TrimSpace(headerKV[1]))
	}

	client := config.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)

	if err != nil {
		return nil, err
	}

	body, err := app.Read(resp.Body)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != expectedResCode {
		return nil, fmt.Errorf("unexpected response status code %d from %s: %s", resp.StatusCode, config.Url, truncate(body, 200))
	}

	if len(body) == 0 {
		return new(T), nil
	}

	return app.ReadJSON[T](body)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
