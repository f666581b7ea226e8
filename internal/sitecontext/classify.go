package sitecontext

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
)

// CategoryOther is assigned when classification fails or the model answers
// outside the known set.
const CategoryOther = "other"

// categories the classifier is allowed to emit. Everything else collapses to
// CategoryOther so downstream prompts stay predictable.
var categories = map[string]struct{}{ //nolint: gochecknoglobals
	"software":    {},
	"ecommerce":   {},
	"services":    {},
	"media":       {},
	"education":   {},
	"finance":     {},
	"health":      {},
	"travel":      {},
	"food":        {},
	CategoryOther: {},
}

// TextModel generates a JSON object for a system and user prompt. It is
// satisfied by openaichat.Client.
type TextModel interface {
	GenerateJSON(ctx context.Context, system, user string) (string, error)
}

// Classifier assigns a business category to a site using a text model.
type Classifier struct {
	model TextModel
}

// NewClassifier constructs a Classifier backed by the given model.
func NewClassifier(model TextModel) *Classifier {
	return &Classifier{model: model}
}

const classifySystemPrompt = `You classify websites into exactly one business category.
Answer with a JSON object of the form {"category": "<value>"} where <value> is one of:
software, ecommerce, services, media, education, finance, health, travel, food, other.`

// Classify returns the business category for dom, using whatever homepage
// context is available. Unknown or malformed model answers come back as
// CategoryOther with no error so callers never have to unwind a scan over a
// bad classification.
func (c *Classifier) Classify(ctx context.Context, dom string, site *domain.SiteContext) (string, error) {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Domain: %s\n", dom)
	if site != nil {
		if site.Title != "" {
			fmt.Fprintf(&prompt, "Title: %s\n", site.Title)
		}
		if site.Description != "" {
			fmt.Fprintf(&prompt, "Description: %s\n", site.Description)
		}
		if len(site.Headings) > 0 {
			fmt.Fprintf(&prompt, "Headings: %s\n", strings.Join(site.Headings, "; "))
		}
	}

	raw, err := c.model.GenerateJSON(ctx, classifySystemPrompt, prompt.String())
	if err != nil {
		return "", fmt.Errorf("could not classify site: %w", err)
	}

	var parsed struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return CategoryOther, nil //nolint: nilerr
	}

	category := strings.ToLower(strings.TrimSpace(parsed.Category))
	if _, ok := categories[category]; !ok {
		return CategoryOther, nil
	}

	return category, nil
}
