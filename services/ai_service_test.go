package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngo_discovery/config"
	"ngo_discovery/models"
)

func aiConfig(baseURL string) *config.Config {
	cfg := testConfig()
	cfg.AI.Enabled = true
	cfg.AI.BaseURL = baseURL
	cfg.AI.APIKey = "test-key"
	cfg.AI.Model = "test-model"
	cfg.AI.TimeoutSec = 1
	return cfg
}

func aiCandidates() []models.NGO {
	return []models.NGO{
		ngo(1, "Education", 10, "Moscow", 4.0, 50, 3),
		ngo(2, "Health", 20, "Moscow", 5.0, 0, 0),
	}
}

func chatBody(content string) string {
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func requireAIErrorKind(t *testing.T, err error, kind string) {
	t.Helper()
	require.Error(t, err)
	var aiErr *AIError
	require.True(t, errors.As(err, &aiErr))
	assert.Equal(t, kind, aiErr.Kind)
}

func TestAIClient_DisabledWhenNotConfigured(t *testing.T) {
	cases := map[string]func(*config.Config){
		"feature off": func(cfg *config.Config) { cfg.AI.Enabled = false },
		"no base url": func(cfg *config.Config) { cfg.AI.BaseURL = "" },
		"no api key":  func(cfg *config.Config) { cfg.AI.APIKey = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := aiConfig("http://localhost:1")
			mutate(cfg)
			client := NewAIClient(cfg)

			_, err := client.RerankNGOIDs(context.Background(), testUser("", ""), aiCandidates(), 5)
			requireAIErrorKind(t, err, AIErrDisabled)
		})
	}
}

func TestAIClient_ParsesIDList(t *testing.T) {
	var gotAuth, gotSession string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotSession = r.Header.Get("X-Session-ID")
		w.Write([]byte(chatBody("[2, 1]")))
	}))
	defer server.Close()

	client := NewAIClient(aiConfig(server.URL))
	ids, err := client.RerankNGOIDs(context.Background(), testUser("Moscow", `["Education"]`), aiCandidates(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.NotEmpty(t, gotSession)
}

func TestAIClient_ToleratesProseAroundArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatBody("Here is the ranking:\n```json\n[1, 2]\n```")))
	}))
	defer server.Close()

	client := NewAIClient(aiConfig(server.URL))
	ids, err := client.RerankNGOIDs(context.Background(), testUser("", ""), aiCandidates(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestAIClient_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewAIClient(aiConfig(server.URL))
	_, err := client.RerankNGOIDs(context.Background(), testUser("", ""), aiCandidates(), 5)
	requireAIErrorKind(t, err, AIErrBadStatus)
}

func TestAIClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewAIClient(aiConfig(server.URL))
	_, err := client.RerankNGOIDs(context.Background(), testUser("", ""), aiCandidates(), 5)
	requireAIErrorKind(t, err, AIErrBadPayload)
}

func TestAIClient_NoArrayInAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatBody("I cannot rank these organizations.")))
	}))
	defer server.Close()

	client := NewAIClient(aiConfig(server.URL))
	_, err := client.RerankNGOIDs(context.Background(), testUser("", ""), aiCandidates(), 5)
	requireAIErrorKind(t, err, AIErrBadPayload)
}

func TestAIClient_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewAIClient(aiConfig(server.URL))
	_, err := client.RerankNGOIDs(context.Background(), testUser("", ""), aiCandidates(), 5)
	requireAIErrorKind(t, err, AIErrEmptyResult)
}

func TestAIClient_HungServiceTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
	}))
	defer server.Close()

	client := NewAIClient(aiConfig(server.URL))
	start := time.Now()
	_, err := client.RerankNGOIDs(context.Background(), testUser("", ""), aiCandidates(), 5)
	requireAIErrorKind(t, err, AIErrNetwork)
	assert.Less(t, time.Since(start), 3*time.Second, "a hung call must be cut off, not awaited")
}

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList("[3,1,2]")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids)

	_, err = parseIDList("no brackets here")
	assert.Error(t, err)

	_, err = parseIDList(`["a","b"]`)
	assert.Error(t, err)
}
