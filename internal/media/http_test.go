// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package media

import (
	"bytes"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexpad/nexpad/internal/platform/storage"
)

// newTestRouter mounts the handler without the admin guard so the endpoint
// behavior itself is under test.
func newTestRouter(store *storage.Client) *chi.Mux {
	handler := NewHandler(store, slog.Default())
	router := chi.NewRouter()
	router.Post("/media", handler.Upload)
	router.Delete("/media/*", handler.Delete)
	return router
}

func multipartBody(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, form.Close())
	return body, form.FormDataContentType()
}

func TestValidKey(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"covers/0195c9a2.png", true},
		{"covers/", false},
		{"covers/..", false},
		{"covers/../secrets.txt", false},
		{"covers/nested/file.png", false},
		{"other/file.png", false},
		{"", false},
	}

	for _, testCase := range cases {
		t.Run(testCase.key, func(t *testing.T) {
			assert.Equal(t, testCase.want, validKey(testCase.key))
		})
	}
}

func TestUpload(t *testing.T) {
	t.Run("fails upstream when storage is not configured", func(t *testing.T) {
		router := newTestRouter(nil)

		body, contentType := multipartBody(t, "cover.png")
		request := httptest.NewRequest(http.MethodPost, "/media", body)
		request.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})

	t.Run("rejects unsupported image format", func(t *testing.T) {
		store, err := storage.New("http://localhost:1", "auto", "key", "secret", "bucket", "")
		require.NoError(t, err)
		router := newTestRouter(store)

		body, contentType := multipartBody(t, "notes.txt")
		request := httptest.NewRequest(http.MethodPost, "/media", body)
		request.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestDelete(t *testing.T) {
	t.Run("rejects keys outside the covers namespace", func(t *testing.T) {
		store, err := storage.New("http://localhost:1", "auto", "key", "secret", "bucket", "")
		require.NoError(t, err)
		router := newTestRouter(store)

		for _, key := range []string{"covers/../secrets.txt", "other/file.png"} {
			request := httptest.NewRequest(http.MethodDelete, "/media/"+key, nil)
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code, key)
		}
	})

	t.Run("fails upstream when storage is not configured", func(t *testing.T) {
		router := newTestRouter(nil)

		request := httptest.NewRequest(http.MethodDelete, "/media/covers/0195c9a2.png", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})
}
