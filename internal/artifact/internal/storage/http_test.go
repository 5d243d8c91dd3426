package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStorage_Upload(t *testing.T) {
	t.Parallel()
	var gotPath, gotAuth, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewHTTPStorage(srv.URL, "https://cdn.biru.dev", "token-abc")
	u, err := s.Upload(context.Background(),
		"certificates/ABC123DEF456.pdf", "application/pdf", []byte("%PDF-fake"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.biru.dev/certificates/ABC123DEF456.pdf", u)
	assert.Equal(t, "/certificates/ABC123DEF456.pdf", gotPath)
	assert.Equal(t, "token-abc", gotAuth)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, []byte("%PDF-fake"), gotBody)
}

func TestHTTPStorage_UploadServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewHTTPStorage(srv.URL, "https://cdn.biru.dev", "bad-token")
	_, err := s.Upload(context.Background(), "k", "text/plain", []byte("x"))
	assert.Error(t, err)
}
