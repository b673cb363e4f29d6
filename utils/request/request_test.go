package request

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "value", r.Header.Get("X-Test"))
		fmt.Fprint(w, `{"message": "ok"}`)
	}))
	defer server.Close()

	var resp struct {
		Message string `json:"message"`
	}
	err := Request(context.Background(), server.Client(), http.MethodGet,
		server.URL, "", &resp, "X-Test", "value")
	assert.Nil(t, err)
	assert.Equal(t, "ok", resp.Message)
}

func TestRequestNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := Request(context.Background(), nil, http.MethodGet, server.URL, "", nil)
	assert.NotNil(t, err)
}

func TestRequestContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := Request(ctx, server.Client(), http.MethodGet, server.URL, "", nil)
	assert.NotNil(t, err)
}

func TestRequestOddHeaders(t *testing.T) {
	err := Request(context.Background(), nil, http.MethodGet, "http://localhost", "", nil, "only-key")
	assert.NotNil(t, err)
}
