// Package openaichat provides an aiplatform.Client backed by the OpenAI chat
// completions API. The same client doubles as the text generation backend for
// query generation, site classification and content previews.
package openaichat

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/aiplatform"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

const defaultModel = openai.ChatModelGPT4oMini

// Client wraps the OpenAI SDK. A Client constructed without an API key stays
// usable as a disabled adapter: every call fails with
// serrors.ErrNotConfigured instead of forcing nil checks on call sites.
type Client struct {
	api   *openai.Client
	model openai.ChatModel
}

// Configured reports whether an API key was provided.
func (c *Client) Configured() bool { return c.api != nil }

// Platform implements aiplatform.Client.
func (c *Client) Platform() domain.Platform { return domain.PlatformChatGPT }

// Ask implements aiplatform.Client. Chat completions carry no source links,
// so the returned answer never has citations.
func (c *Client) Ask(ctx context.Context, query string) (*aiplatform.Answer, error) {
	text, err := c.complete(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(query),
		},
		Model: c.model,
	})
	if err != nil {
		return nil, err
	}

	return &aiplatform.Answer{Text: text}, nil
}

// Generate produces free-form text for the given system and user prompts.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model: c.model,
	})
}

// GenerateJSON is like Generate but constrains the model to a single JSON
// object, at a low temperature so the structure stays stable across calls.
func (c *Client) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model:       c.model,
		Temperature: openai.Float(0.2),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	})
}

func (c *Client) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	if c.api == nil {
		return "", serrors.With(serrors.ErrNotConfigured, "openai API key is not configured")
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			switch apiErr.StatusCode {
			case http.StatusTooManyRequests:
				return "", serrors.With(serrors.ErrRateLimited, "openai rate limited: %s", apiErr.Message)
			case http.StatusUnauthorized, http.StatusForbidden:
				return "", serrors.With(serrors.ErrUnauthorized, "openai rejected the API key: %s", apiErr.Message)
			}
		}

		return "", fmt.Errorf("could not complete chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Ensure Client conforms to the aiplatform.Client interface at compile time.
var _ aiplatform.Client = (*Client)(nil)

// New constructs a Client. An empty apiKey yields a disabled client, an empty
// model selects the default mini model. Extra request options are mainly a
// seam for injecting transports in tests.
func New(apiKey, model string, opts ...option.RequestOption) *Client {
	chatModel := defaultModel
	if model != "" {
		chatModel = openai.ChatModel(model)
	}
	if apiKey == "" {
		return &Client{model: chatModel}
	}

	api := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &Client{api: &api, model: chatModel}
}
