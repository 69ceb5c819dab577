package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"ngo_discovery/config"
	"ngo_discovery/logger"
	"ngo_discovery/models"
)

// AIError kinds. Every kind resolves to the rule-based ranking; they exist so
// fallbacks are logged with their cause instead of a swallowed exception.
const (
	AIErrDisabled    = "disabled"     // feature off or no endpoint/key configured
	AIErrNetwork     = "network"      // connect/timeout failure
	AIErrBadStatus   = "bad_status"   // non-2xx from the service
	AIErrBadPayload  = "bad_payload"  // response body not in the expected shape
	AIErrEmptyResult = "empty_result" // model answered with nothing usable
)

// AIError is the typed outcome of an external-AI call that did not succeed.
type AIError struct {
	Kind string
	Err  error
}

func (e *AIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai rerank %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("ai rerank %s", e.Kind)
}

func (e *AIError) Unwrap() error { return e.Err }

// AIClient calls an OpenAI-compatible chat endpoint to reorder recommendation
// candidates. It is a pure optimization: every failure path returns an
// AIError and the caller keeps the rule-based order.
type AIClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewAIClient builds the client with the configured per-request timeout.
func NewAIClient(cfg *config.Config) *AIClient {
	return &AIClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.AI.TimeoutSec) * time.Second,
		},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// RerankNGOIDs asks the model to order the candidate ids for the user and
// returns them best-first. The returned ids are a subset of the candidates;
// anything else the model emits is dropped by the caller.
func (c *AIClient) RerankNGOIDs(ctx context.Context, user *models.User, candidates []models.NGO, limit int) ([]int64, error) {
	if !c.cfg.AI.Enabled || c.cfg.AI.BaseURL == "" || c.cfg.AI.APIKey == "" {
		return nil, &AIError{Kind: AIErrDisabled}
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.AI.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You rank nonprofit organizations for a user. Answer with a JSON array of organization ids only, best match first."},
			{Role: "user", Content: buildRerankPrompt(user, candidates, limit)},
		},
	})
	if err != nil {
		return nil, &AIError{Kind: AIErrBadPayload, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.AI.TimeoutSec)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.cfg.AI.BaseURL, "/")+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, &AIError{Kind: AIErrNetwork, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.AI.APIKey)
	req.Header.Set("X-Session-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &AIError{Kind: AIErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AIError{Kind: AIErrBadStatus, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AIError{Kind: AIErrNetwork, Err: err}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &AIError{Kind: AIErrBadPayload, Err: err}
	}
	if len(parsed.Choices) == 0 {
		return nil, &AIError{Kind: AIErrEmptyResult}
	}

	ids, err := parseIDList(parsed.Choices[0].Message.Content)
	if err != nil {
		return nil, &AIError{Kind: AIErrBadPayload, Err: err}
	}
	if len(ids) == 0 {
		return nil, &AIError{Kind: AIErrEmptyResult}
	}

	logger.Debug("AI rerank succeeded", "user_id", user.ID, "candidates", len(candidates), "returned", len(ids))
	return ids, nil
}

// buildRerankPrompt describes the user and the candidate pool in a compact
// line-per-candidate form.
func buildRerankPrompt(user *models.User, candidates []models.NGO, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User city: %s. User interests: %s.\n",
		orUnknown(user.City), orUnknown(strings.Join(user.Interests(), ", ")))
	fmt.Fprintf(&b, "Pick and order up to %d organizations for this user:\n", limit)
	for _, ngo := range candidates {
		fmt.Fprintf(&b, "%d: %s (%s, %s) - %s\n", ngo.ID, ngo.Name, ngo.CategoryName, ngo.City, ngo.ShortDescription)
	}
	return b.String()
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}

// parseIDList extracts a JSON integer array from the model output, tolerating
// surrounding prose or a markdown code fence.
func parseIDList(content string) ([]int64, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var ids []int64
	if err := json.Unmarshal([]byte(content[start:end+1]), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
