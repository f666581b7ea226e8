// Package preview generates a teaser of AI-optimized homepage copy for a
// scanned domain. The preview rides along on the scan report as a pitch for
// what optimized content could look like; it is always best-effort and never
// blocks a scan.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
)

const maxOutlineItems = 5

// TextModel generates a JSON object for a system and user prompt. It is
// satisfied by openaichat.Client.
type TextModel interface {
	GenerateJSON(ctx context.Context, system, user string) (string, error)
}

// Generator produces content previews from a text model.
type Generator struct {
	model TextModel
}

// New constructs a Generator backed by the given model.
func New(model TextModel) *Generator {
	return &Generator{model: model}
}

const previewSystemPrompt = `You write homepage copy optimized for visibility inside AI assistant answers.
Answer with a JSON object of the form:
{"pageTitle": "<60 characters or fewer>", "metaDescription": "<155 characters or fewer>", "outline": ["<section heading>", "..."]}
The outline lists the section headings of the rewritten homepage, most important first.`

// Generate returns a content preview for dom. businessSummary and site are
// optional context; either may be empty.
func (g *Generator) Generate(ctx context.Context, dom, businessSummary string, site *domain.SiteContext) (*domain.ContentPreview, error) {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Domain: %s\n", dom)
	if businessSummary != "" {
		fmt.Fprintf(&prompt, "Business: %s\n", businessSummary)
	}
	if site != nil {
		if site.Title != "" {
			fmt.Fprintf(&prompt, "Current title: %s\n", site.Title)
		}
		if site.Description != "" {
			fmt.Fprintf(&prompt, "Current description: %s\n", site.Description)
		}
		if site.Category != "" {
			fmt.Fprintf(&prompt, "Category: %s\n", site.Category)
		}
	}

	raw, err := g.model.GenerateJSON(ctx, previewSystemPrompt, prompt.String())
	if err != nil {
		return nil, fmt.Errorf("could not generate preview: %w", err)
	}

	var parsed struct {
		PageTitle       string   `json:"pageTitle"`
		MetaDescription string   `json:"metaDescription"`
		Outline         []string `json:"outline"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("could not decode preview: %w", err)
	}
	if strings.TrimSpace(parsed.PageTitle) == "" {
		return nil, errors.New("model returned a preview without a page title")
	}

	outline := make([]string, 0, maxOutlineItems)
	for _, item := range parsed.Outline {
		if item = strings.TrimSpace(item); item != "" {
			outline = append(outline, item)
		}
		if len(outline) == maxOutlineItems {
			break
		}
	}

	return &domain.ContentPreview{
		PageTitle:       strings.TrimSpace(parsed.PageTitle),
		MetaDescription: strings.TrimSpace(parsed.MetaDescription),
		Outline:         outline,
	}, nil
}
