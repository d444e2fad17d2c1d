package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate_a/single", r.URL.Path)
		assert.Equal(t, "gtx", r.URL.Query().Get("client"))
		assert.Equal(t, "ru", r.URL.Query().Get("sl"))
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		assert.Equal(t, "куриная грудка", r.URL.Query().Get("q"))

		w.Write([]byte(`[[["chicken breast","куриная грудка",null,null,10]],null,"ru"]`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	result, err := client.Translate(context.Background(), "куриная грудка", "ru", "en")
	require.NoError(t, err)
	assert.Equal(t, "chicken breast", result)
}

func TestTranslateMultipleSegments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[["first sentence. ","первое предложение. "],["second sentence","второе предложение"]],null,"ru"]`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	result, err := client.Translate(context.Background(), "первое предложение. второе предложение", "auto", "en")
	require.NoError(t, err)
	assert.Equal(t, "first sentence. second sentence", result)
}

func TestTranslateEmptyText(t *testing.T) {
	client := NewClient()
	result, err := client.Translate(context.Background(), "  ", "auto", "en")
	require.NoError(t, err)
	assert.Equal(t, "  ", result)
}

func TestTranslateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.Translate(context.Background(), "текст", "auto", "en")
	assert.Error(t, err)
}
