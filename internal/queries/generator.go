// Package queries turns a domain and its site context into the three intent
// queries a scan sends to every platform: discovery (the underlying need,
// brand withheld), brand (a direct lookup) and decision (comparison
// shopping). Generation is model-assisted when homepage context is rich and
// falls back to fixed templates otherwise, so a scan always has usable
// queries.
package queries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Arjun0606/cabbageseo-sub003/internal/signals"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/logger"
)

const maxSummaryWords = 20

// TextModel generates a JSON object for a system and user prompt. It is
// satisfied by openaichat.Client.
type TextModel interface {
	GenerateJSON(ctx context.Context, system, user string) (string, error)
}

// Generator produces query sets. A nil model always yields templates.
type Generator struct {
	model TextModel
}

// New constructs a Generator backed by the given model.
func New(model TextModel) *Generator {
	return &Generator{model: model}
}

const generateSystemPrompt = `You generate search queries for measuring how AI assistants perceive a business.
Answer with a JSON object of the form:
{"businessSummary": "<what the business does, 20 words or fewer>", "queries": [{"intent": "discovery", "text": "..."}, {"intent": "brand", "text": "..."}, {"intent": "decision", "text": "..."}]}
Rules:
- discovery: what a customer with the underlying need would ask before knowing the brand exists. It must not contain the brand or domain name.
- brand: a direct lookup of the brand.
- decision: a review or comparison question a customer close to buying would ask.`

// Generate returns one query per intent plus a short business summary. The
// model is consulted only when the site context carries a title or
// description; any model failure or rule violation falls back to Templates,
// so the returned set is always complete.
func (g *Generator) Generate(ctx context.Context, dom string, site *domain.SiteContext) domain.QuerySet {
	if g.model == nil || site == nil || (site.Title == "" && site.Description == "") {
		return Templates(dom)
	}

	set, err := g.fromModel(ctx, dom, site)
	if err != nil {
		logger.Get(ctx).Warn("falling back to template queries", zap.Error(err))

		return Templates(dom)
	}

	return set
}

func (g *Generator) fromModel(ctx context.Context, dom string, site *domain.SiteContext) (domain.QuerySet, error) {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Domain: %s\n", dom)
	fmt.Fprintf(&prompt, "Brand: %s\n", signals.BrandToken(dom))
	if site.Title != "" {
		fmt.Fprintf(&prompt, "Title: %s\n", site.Title)
	}
	if site.Description != "" {
		fmt.Fprintf(&prompt, "Description: %s\n", site.Description)
	}
	if len(site.Headings) > 0 {
		fmt.Fprintf(&prompt, "Headings: %s\n", strings.Join(site.Headings, "; "))
	}
	if site.Category != "" {
		fmt.Fprintf(&prompt, "Category: %s\n", site.Category)
	}

	raw, err := g.model.GenerateJSON(ctx, generateSystemPrompt, prompt.String())
	if err != nil {
		return domain.QuerySet{}, fmt.Errorf("could not generate queries: %w", err)
	}

	var parsed struct {
		BusinessSummary string `json:"businessSummary"`
		Queries         []struct {
			Intent string `json:"intent"`
			Text   string `json:"text"`
		} `json:"queries"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.QuerySet{}, fmt.Errorf("could not decode generated queries: %w", err)
	}

	byIntent := make(map[domain.QueryIntent]string, 3)
	for _, q := range parsed.Queries {
		intent := domain.QueryIntent(strings.ToLower(strings.TrimSpace(q.Intent)))
		switch intent {
		case domain.IntentDiscovery, domain.IntentBrand, domain.IntentDecision:
			byIntent[intent] = strings.TrimSpace(q.Text)
		}
	}
	for _, intent := range []domain.QueryIntent{domain.IntentDiscovery, domain.IntentBrand, domain.IntentDecision} {
		if byIntent[intent] == "" {
			return domain.QuerySet{}, fmt.Errorf("model omitted the %s query", intent)
		}
	}
	if namesBrand(byIntent[domain.IntentDiscovery], dom) {
		return domain.QuerySet{}, errors.New("model named the brand in the discovery query")
	}

	return domain.QuerySet{
		Queries: []domain.GeneratedQuery{
			{Text: byIntent[domain.IntentDiscovery], Intent: domain.IntentDiscovery},
			{Text: byIntent[domain.IntentBrand], Intent: domain.IntentBrand},
			{Text: byIntent[domain.IntentDecision], Intent: domain.IntentDecision},
		},
		BusinessSummary: truncateWords(parsed.BusinessSummary, maxSummaryWords),
		Source:          domain.QuerySourceModel,
	}, nil
}

// Templates is the deterministic fallback. It is pure: no model, no network.
func Templates(dom string) domain.QuerySet {
	brand := signals.BrandToken(dom)

	return domain.QuerySet{
		Queries: []domain.GeneratedQuery{
			{Text: fmt.Sprintf("tell me about %s", brand), Intent: domain.IntentDiscovery},
			{Text: fmt.Sprintf("what is %s", dom), Intent: domain.IntentBrand},
			{Text: fmt.Sprintf("%s reviews", brand), Intent: domain.IntentDecision},
		},
		Source: domain.QuerySourceTemplate,
	}
}

// namesBrand reports whether text contains the domain, its brand token or a
// spaced/hyphenated compound form of it.
func namesBrand(text, dom string) bool {
	brand := signals.BrandToken(dom)
	lower := strings.ToLower(text)
	if strings.Contains(lower, strings.ToLower(dom)) || strings.Contains(lower, brand) {
		return true
	}
	if first, second, ok := signals.SplitCompound(brand); ok {
		if strings.Contains(lower, first+" "+second) || strings.Contains(lower, first+"-"+second) {
			return true
		}
	}

	return false
}

func truncateWords(s string, limit int) string {
	words := strings.Fields(s)
	if len(words) > limit {
		words = words[:limit]
	}

	return strings.Join(words, " ")
}
