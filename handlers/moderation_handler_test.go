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

func TestModerationHandlers_RejectBadID(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/moderation/{id}/approve", ApproveModerationHandler)
	r.Post("/api/moderation/{id}/reject", RejectModerationHandler)

	for _, target := range []string{
		"/api/moderation/abc/approve",
		"/api/moderation/0/approve",
		"/api/moderation/abc/reject",
	} {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp models.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.CodeInvalidParams, resp.Code, "%q should be rejected", target)
	}
}
