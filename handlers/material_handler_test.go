package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngo_discovery/models"
)

func TestGetMaterialHandler_RejectsBadID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/materials/{id}", GetMaterialHandler)

	for _, id := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/materials/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp models.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.CodeInvalidParams, resp.Code, "id %q should be rejected", id)
	}
}

func TestSaveToLibraryHandler_RejectsBadIDs(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/users/{uid}/library/{materialID}", SaveToLibraryHandler)

	for _, target := range []string{
		"/api/users/abc/library/1",
		"/api/users/1/library/abc",
		"/api/users/0/library/1",
	} {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp models.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.CodeInvalidParams, resp.Code, "%q should be rejected", target)
	}
}
