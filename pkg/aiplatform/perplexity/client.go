// Package perplexity provides an aiplatform.Client backed by the Perplexity
// chat completions API. Perplexity answers come with web citations, the
// strongest visibility signal a scan can observe.
package perplexity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/aiplatform"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

const (
	endpoint     = "https://api.perplexity.ai/chat/completions"
	defaultModel = "sonar"
)

// Client talks to the Perplexity REST API and fulfills the aiplatform.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
}

// Platform implements aiplatform.Client.
func (c *Client) Platform() domain.Platform { return domain.PlatformPerplexity }

// Ask sends a single user query and returns the answer text together with
// the citations Perplexity attaches at the top level of its response.
func (c *Client) Ask(ctx context.Context, query string) (*aiplatform.Answer, error) {
	if c.apiKey == "" {
		return nil, serrors.With(serrors.ErrNotConfigured, "perplexity API key is not configured")
	}

	// https://docs.perplexity.ai/api-reference/chat-completions
	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	bodyBytes, err := json.Marshal(struct {
		Model    string    `json:"model"`
		Messages []message `json:"messages"`
	}{
		Model:    c.model,
		Messages: []message{{Role: "user", Content: query}},
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "perplexity rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, serrors.With(serrors.ErrUnauthorized, "perplexity rejected the API key: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("perplexity request failed: %s", strings.TrimSpace(string(b)))
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Citations []string `json:"citations"`
	}
	if err := json.Unmarshal(b, &chatResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, errors.New("perplexity returned no choices")
	}

	return &aiplatform.Answer{
		Text:      chatResp.Choices[0].Message.Content,
		Citations: chatResp.Citations,
	}, nil
}

// Ensure Client conforms to the aiplatform.Client interface at compile time.
var _ aiplatform.Client = (*Client)(nil)

// New constructs a Client using the provided http.Client, API key and model.
// An empty model selects the default search-backed model.
func New(httpClient *http.Client, apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}

	return &Client{httpClient: httpClient, apiKey: apiKey, model: model}
}
