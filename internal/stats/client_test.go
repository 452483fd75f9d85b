package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

func TestHTTPClient_Query_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "1", r.URL.Query().Get("question"))
		w.Write([]byte("Het best beoordeelde genre is Drama met een 8.2.\n"))
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	text, err := client.Query(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, "Het best beoordeelde genre is Drama met een 8.2.", text)
}

func TestHTTPClient_Query_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "onbekende vraag", http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Query(context.Background(), "99")

	assert.ErrorIs(t, err, ErrBadStatus)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPClient_Query_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Query(context.Background(), "1")

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPClient_Query_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0

	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Query(context.Background(), "1")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Query_RetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewHTTPClient(cfg, NoopObserver{})
	text, err := client.Query(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 2, attempts)
}

func TestHTTPClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	srv.Close()
	assert.False(t, client.Available(context.Background()))
}

func TestLogObserver_WritesQueryEvents(t *testing.T) {
	var buf strings.Builder
	obs := NewLogObserver(&buf)

	obs.OnQueryComplete(QueryEvent{QueryID: "3", LatencyMs: 12, Success: true})
	obs.OnQueryComplete(QueryEvent{QueryID: "4", LatencyMs: 7, Success: false, ErrorCode: "UNAVAILABLE"})

	out := buf.String()
	assert.Contains(t, out, "stats_query id=3 latency_ms=12 status=ok")
	assert.Contains(t, out, "stats_query id=4 latency_ms=7 status=err:UNAVAILABLE")
}
