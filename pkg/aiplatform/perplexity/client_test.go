package perplexity_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/aiplatform/perplexity"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
	"github.com/stretchr/testify/require"
)

// rtFunc lets tests stub the HTTP transport.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestAsk_Success(t *testing.T) {
	client := perplexity.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "api.perplexity.ai", r.URL.Host)
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "sonar", req.Model)
		require.Len(t, req.Messages, 1)
		require.Equal(t, "user", req.Messages[0].Role)
		require.Equal(t, "best crm tools", req.Messages[0].Content)

		return jsonResponse(http.StatusOK, `{
			"choices": [{"message": {"content": "Salesforce and HubSpot lead the market."}}],
			"citations": ["https://salesforce.com", "https://hubspot.com/blog"]
		}`), nil
	})}, "test-key", "")

	answer, err := client.Ask(context.Background(), "best crm tools")
	require.NoError(t, err)
	require.Equal(t, "Salesforce and HubSpot lead the market.", answer.Text)
	require.Equal(t, []string{"https://salesforce.com", "https://hubspot.com/blog"}, answer.Citations)
}

func TestAsk_NotConfigured(t *testing.T) {
	called := false
	client := perplexity.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		called = true

		return jsonResponse(http.StatusOK, `{}`), nil
	})}, "", "")

	_, err := client.Ask(context.Background(), "anything")
	require.ErrorIs(t, err, serrors.ErrNotConfigured)
	require.False(t, called, "a client without credentials must not reach the network")
}

func TestAsk_RateLimited(t *testing.T) {
	client := perplexity.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, `{"error": "quota exceeded"}`), nil
	})}, "test-key", "")

	_, err := client.Ask(context.Background(), "anything")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestAsk_Unauthorized(t *testing.T) {
	client := perplexity.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"error": "bad key"}`), nil
	})}, "test-key", "")

	_, err := client.Ask(context.Background(), "anything")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAsk_UpstreamError(t *testing.T) {
	client := perplexity.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, `upstream unavailable`), nil
	})}, "test-key", "")

	_, err := client.Ask(context.Background(), "anything")
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrRateLimited)
}

func TestAsk_EmptyChoices(t *testing.T) {
	client := perplexity.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"choices": []}`), nil
	})}, "test-key", "")

	_, err := client.Ask(context.Background(), "anything")
	require.ErrorContains(t, err, "no choices")
}

func TestPlatform(t *testing.T) {
	client := perplexity.New(http.DefaultClient, "k", "")
	require.Equal(t, domain.PlatformPerplexity, client.Platform())
}
