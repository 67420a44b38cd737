package rpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testPolicy(retries int) Policy {
	return Policy{
		MaxRetries: retries,
		BaseDelay:  5 * time.Millisecond,
		Timeout:    time.Second,
	}
}

func TestClient_SucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(testPolicy(3), "")

	var out struct {
		Status string `json:"status"`
	}
	start := time.Now()
	err := client.Post(context.Background(), server.URL, map[string]string{"op": "ping"}, &out)

	assert.NoError(t, err)
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, 3, attempts)
	// Backoff doubles: base + 2*base between the three attempts.
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestClient_StopsAfterMaxRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(testPolicy(3), "")

	err := client.Post(context.Background(), server.URL, nil, nil)
	assert.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestClient_ErrorListInOKResponseIsFailure(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":null,"errors":[{"message":"ingredient not found"}]}`))
	}))
	defer server.Close()

	client := NewClient(testPolicy(2), "")

	err := client.Post(context.Background(), server.URL, nil, nil)
	assert.Error(t, err)
	var remoteErr RemoteError
	assert.True(t, errors.As(err, &remoteErr))
	assert.Contains(t, remoteErr.Message, "ingredient not found")
	assert.Equal(t, 2, attempts)
}

func TestClient_UnwrapsDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"name":"Ayam"}}`))
	}))
	defer server.Close()

	client := NewClient(testPolicy(1), "")

	var out struct {
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), server.URL, &out)
	assert.NoError(t, err)
	assert.Equal(t, "Ayam", out.Name)
}

func TestClient_ForwardsServiceToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(testPolicy(1), "svc-secret")

	err := client.Post(context.Background(), server.URL, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer svc-secret", gotAuth)
}

func TestWithFallback(t *testing.T) {
	t.Run("primary_succeeds", func(t *testing.T) {
		secondaryCalled := false
		err := WithFallback(
			func() error { return nil },
			func() error { secondaryCalled = true; return nil },
		)
		assert.NoError(t, err)
		assert.False(t, secondaryCalled)
	})

	t.Run("falls_back_after_primary_fails", func(t *testing.T) {
		err := WithFallback(
			func() error { return errors.New("unknown field") },
			func() error { return nil },
		)
		assert.NoError(t, err)
	})

	t.Run("returns_secondary_error", func(t *testing.T) {
		secondaryErr := errors.New("legacy query failed too")
		err := WithFallback(
			func() error { return errors.New("primary failed") },
			func() error { return secondaryErr },
		)
		assert.ErrorIs(t, err, secondaryErr)
	})
}
