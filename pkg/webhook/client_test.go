package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send_SucceedsFirstAttempt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	allowPrivateForTests = true
	defer func() { allowPrivateForTests = false }()

	client := NewClient(2*time.Second, 50, 3, 10*time.Millisecond, nil)
	ok := client.Send(context.Background(), srv.URL, map[string]string{"content": "hello"})

	assert.True(t, ok)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestClient_Send_RetriesOnServerErrorThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	allowPrivateForTests = true
	defer func() { allowPrivateForTests = false }()

	client := NewClient(2*time.Second, 50, 3, 5*time.Millisecond, nil)
	ok := client.Send(context.Background(), srv.URL, map[string]string{"content": "hello"})

	assert.True(t, ok)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestClient_Send_ExhaustsAttemptsOnPersistentFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	allowPrivateForTests = true
	defer func() { allowPrivateForTests = false }()

	client := NewClient(2*time.Second, 50, 3, 5*time.Millisecond, nil)
	ok := client.Send(context.Background(), srv.URL, map[string]string{"content": "hello"})

	assert.False(t, ok)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestClient_Send_AbortsOnContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	allowPrivateForTests = true
	defer func() { allowPrivateForTests = false }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(2*time.Second, 50, 3, 50*time.Millisecond, nil)
	ok := client.Send(ctx, srv.URL, map[string]string{"content": "hello"})

	assert.False(t, ok)
}
