// Package suggest asks an external text-generation API for task tags. The
// call is best-effort by contract: on any failure (no API key, network
// error, malformed response) the caller gets an empty list, never an error.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-4o-mini"

	systemPrompt = "You are a task management assistant. Your job is to suggest relevant tags for a given task description. Respond with a JSON object of the form {\"tags\": [\"tag1\", \"tag2\"]} and nothing else."
)

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	// BaseURL may be overridden, e.g. to point tests at a stub server.
	BaseURL string

	apiKey string
	model  string
	client *http.Client
}

// NewClient creates a suggestion client. An empty apiKey is allowed; the
// client then degrades to returning no suggestions.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Suggest returns tag suggestions for a task description. A blank
// description short-circuits to an empty list without any network call.
func (c *Client) Suggest(ctx context.Context, description string) []string {
	if strings.TrimSpace(description) == "" {
		return []string{}
	}
	if c.apiKey == "" {
		return []string{}
	}
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Task Description: " + description + "\n\nSuggest a few relevant tags for the task."},
		},
	})
	if err != nil {
		return []string{}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return []string{}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debugf("suggest: request failed: %v", err)
		return []string{}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Debugf("suggest: unexpected status %d", resp.StatusCode)
		return []string{}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return []string{}
	}
	var cr chatResponse
	if err := json.Unmarshal(data, &cr); err != nil || len(cr.Choices) == 0 {
		log.Debugf("suggest: malformed response: %v", err)
		return []string{}
	}
	return parseTags(cr.Choices[0].Message.Content)
}

// parseTags extracts the tags array from the model's reply. Models
// occasionally wrap JSON in a markdown fence, so that is stripped first.
func parseTags(content string) []string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	var out struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil || out.Tags == nil {
		return []string{}
	}
	return out.Tags
}
