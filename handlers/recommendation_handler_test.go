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
	"ngo_discovery/services"
)

// Parameter validation happens before any collaborator is touched, so these
// run without a database.
func TestGetRecommendationsHandler_RejectsBadUserID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/recommendations/{uid}", func(w http.ResponseWriter, req *http.Request) {
		GetRecommendationsHandler(w, req, &services.Recommender{})
	})

	for _, uid := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/recommendations/"+uid, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp models.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.CodeInvalidParams, resp.Code, "uid %q should be rejected", uid)
	}
}
