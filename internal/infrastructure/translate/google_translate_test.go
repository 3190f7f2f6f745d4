package translate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halya-h/MovieMapUA/internal/infrastructure/translate"
)

func TestTranslate(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"Оперний театр"}]}}`))
	}))
	defer server.Close()

	client := translate.NewClientWithURL(server.URL, "test-key")
	got, err := client.Translate(context.Background(), "Opera House", "uk")

	require.NoError(t, err)
	assert.Equal(t, "Оперний театр", got)
	assert.Equal(t, "Opera House", gotBody["q"])
	assert.Equal(t, "uk", gotBody["target"])
	assert.Equal(t, "text", gotBody["format"])
}

func TestTranslate_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := translate.NewClientWithURL(server.URL, "test-key")
	_, err := client.Translate(context.Background(), "Opera House", "uk")
	require.Error(t, err)
}

func TestTranslate_EmptyTranslations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"translations":[]}}`))
	}))
	defer server.Close()

	client := translate.NewClientWithURL(server.URL, "test-key")
	_, err := client.Translate(context.Background(), "Opera House", "uk")
	require.Error(t, err)
}
