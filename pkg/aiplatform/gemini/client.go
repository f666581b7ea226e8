// Package gemini provides an aiplatform.Client backed by the Google Gemini
// generateContent API. When Gemini grounds an answer in search results it
// attaches the sources as grounding chunks, which surface here as citations.
package gemini

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
	baseURL      = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel = "gemini-2.0-flash"
)

// Client talks to the Gemini REST API and fulfills the aiplatform.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
}

// Platform implements aiplatform.Client.
func (c *Client) Platform() domain.Platform { return domain.PlatformGemini }

// Ask sends a single query and returns the concatenated answer parts plus
// any grounding source URLs.
func (c *Client) Ask(ctx context.Context, query string) (*aiplatform.Answer, error) {
	if c.apiKey == "" {
		return nil, serrors.With(serrors.ErrNotConfigured, "gemini API key is not configured")
	}

	// https://ai.google.dev/api/generate-content
	type part struct {
		Text string `json:"text"`
	}
	bodyBytes, err := json.Marshal(struct {
		Contents []struct {
			Parts []part `json:"parts"`
		} `json:"contents"`
	}{
		Contents: []struct {
			Parts []part `json:"parts"`
		}{{Parts: []part{{Text: query}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

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
		return nil, serrors.With(serrors.ErrRateLimited, "gemini rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, serrors.With(serrors.ErrUnauthorized, "gemini rejected the API key: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini request failed: %s", strings.TrimSpace(string(b)))
	}

	var genResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			GroundingMetadata struct {
				GroundingChunks []struct {
					Web struct {
						URI string `json:"uri"`
					} `json:"web"`
				} `json:"groundingChunks"`
			} `json:"groundingMetadata"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(b, &genResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	if len(genResp.Candidates) == 0 {
		return nil, errors.New("gemini returned no candidates")
	}

	candidate := genResp.Candidates[0]
	var text strings.Builder
	for _, p := range candidate.Content.Parts {
		text.WriteString(p.Text)
	}
	var citations []string
	for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
		if chunk.Web.URI != "" {
			citations = append(citations, chunk.Web.URI)
		}
	}

	return &aiplatform.Answer{Text: text.String(), Citations: citations}, nil
}

// Ensure Client conforms to the aiplatform.Client interface at compile time.
var _ aiplatform.Client = (*Client)(nil)

// New constructs a Client using the provided http.Client, API key and model.
// An empty model selects the default flash model.
func New(httpClient *http.Client, apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}

	return &Client{httpClient: httpClient, apiKey: apiKey, model: model}
}
