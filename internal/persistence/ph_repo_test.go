package persistence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapturePostsEvent(t *testing.T) {
	t.Parallel()

	var got phEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/capture/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"status": 1}`))
	}))
	defer srv.Close()

	err := NewPHRepo("phc_key", srv.URL).Capture(context.Background(), "job_completed", "job-1")
	require.NoError(t, err)
	require.Equal(t, phEvent{
		ApiKey:     "phc_key",
		Event:      "job_completed",
		Properties: map[string]string{"distinct_id": "job-1"},
	}, got)
}

func TestCaptureWithoutKeyIsNoop(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	require.NoError(t, NewPHRepo("", srv.URL).Capture(context.Background(), "job_created", "job-1"))
	require.Zero(t, calls.Load())
}
