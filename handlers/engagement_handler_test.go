package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngo_discovery/models"
)

// The message check runs before any collaborator is touched, so this needs no
// database.
func TestContactNGOHandler_RequiresMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/ngos/{id}/contact", ContactNGOHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/ngos/1/contact",
		strings.NewReader(`{"name":"Vera","email":"vera@example.com","message":""}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.CodeMissingParams, resp.Code)
}

func TestContactNGOHandler_RejectsMalformedBody(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/ngos/{id}/contact", ContactNGOHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/ngos/1/contact", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.CodeInvalidParams, resp.Code)
}
