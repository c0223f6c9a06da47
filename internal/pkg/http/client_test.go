package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/piresc/docshare/internal/pkg/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PostForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+15551234567", r.PostForm.Get("To"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"pending"}`))
	}))
	defer server.Close()

	client := NewClient("test", time.Second)
	resp, err := client.PostForm(context.Background(), server.URL, url.Values{"To": {"+15551234567"}}, "AC123", "token")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"status":"pending"}`, string(body))
}

func TestClient_ServerErrorsOpenBreaker(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClientWith(&http.Client{Timeout: time.Second},
		circuitbreaker.New(circuitbreaker.Config{Name: "test", FailureThreshold: 2, CoolDown: time.Minute}))

	for i := 0; i < 2; i++ {
		_, err := client.PostForm(context.Background(), server.URL, url.Values{}, "u", "p")
		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
		assert.True(t, IsUnavailable(err))
	}

	_, err := client.PostForm(context.Background(), server.URL, url.Values{}, "u", "p")
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "OPEN", client.BreakerStats().State)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient("slow", 20*time.Millisecond)
	_, err := client.PostForm(context.Background(), server.URL, url.Values{}, "u", "p")

	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
}

func TestClient_ClientErrorsPassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test", time.Second)
	resp, err := client.PostForm(context.Background(), server.URL, url.Values{}, "u", "p")

	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CLOSED", client.BreakerStats().State)
}
