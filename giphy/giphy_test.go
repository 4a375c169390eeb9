package giphy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandom(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/gifs/random", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "dog", r.URL.Query().Get("tag"))
		assert.Equal(t, "G", r.URL.Query().Get("rating"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"image_url":"https://media.giphy.com/dog.gif"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "dog").WithBaseURL(server.URL)
	url, err := client.Random(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "https://media.giphy.com/dog.gif", url)
}

func TestRandom_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("bad-key", "dog").WithBaseURL(server.URL)
	_, err := client.Random(context.Background())
	assert.ErrorContains(t, err, "status 403")
}
