package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReportID uniquely identifies a persisted visibility report.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ReportID uuid.UUID

// String returns the canonical UUID form.
func (id ReportID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the ID is unset, which marks a report that was never
// persisted.
func (id ReportID) IsZero() bool { return id == ReportID(uuid.Nil) }

// MarshalJSON renders the ID as a UUID string, or null for a report that was
// never persisted.
func (id ReportID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(id.String()) //nolint: wrapcheck
}

// UnmarshalJSON implements json.Unmarshaler, accepting null as the zero ID.
func (id *ReportID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ReportID(uuid.Nil)

		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err //nolint: wrapcheck
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = ReportID(u)

	return nil
}

// Platform identifies an AI answer platform queried during a scan.
type Platform string

const (
	// PlatformPerplexity is the Perplexity chat completions API.
	PlatformPerplexity Platform = "perplexity"
	// PlatformGemini is the Google Gemini generateContent API.
	PlatformGemini Platform = "gemini"
	// PlatformChatGPT is the OpenAI chat completions API.
	PlatformChatGPT Platform = "chatgpt"
)

// PlatformResult is the outcome of querying one platform about a domain.
// The signal booleans are ordered by strength: InCitations implies
// DomainFound, which implies MentionedYou.
type PlatformResult struct {
	Platform Platform `json:"platform"`
	// QueryShown is the query presented alongside the result, preferring the
	// non-brand query when it produced a positive signal.
	QueryShown string `json:"query"`
	// MentionedYou reports whether the brand or domain appeared in an answer.
	MentionedYou bool `json:"mentioned"`
	// InCitations reports whether a cited source resolves to the domain.
	InCitations bool `json:"cited"`
	// DomainFound reports whether the registrable domain itself appeared in
	// answer text or citations.
	DomainFound bool `json:"domainFound"`
	// MentionPosition is the relative offset of the first positive mention in
	// [0,1], or -1 when there is none.
	MentionPosition float64 `json:"mentionPosition"`
	// MentionCount is the total number of positive mentions across the
	// platform's answers.
	MentionCount int `json:"mentionCount"`
	// RecommendedOthers lists competitor domains the platform surfaced.
	RecommendedOthers []string `json:"recommendedOthers,omitempty"`
	// Score is this platform's standalone visibility score.
	Score int `json:"score"`
	// Snippet is a short excerpt of the shown answer.
	Snippet string `json:"snippet,omitempty"`
}

// PlatformError records a platform that could not be queried. Scans degrade
// rather than fail when platforms error.
type PlatformError struct {
	Platform Platform `json:"platform"`
	Message  string   `json:"message"`
	// NotConfigured distinguishes a missing credential from a transient
	// upstream failure.
	NotConfigured bool `json:"notConfigured,omitempty"`
}

// ScoreBreakdown holds the weighted contribution of each scoring factor.
// The factors sum to the visibility score before rounding and capping.
type ScoreBreakdown struct {
	Citations  float64 `json:"citations"`
	Domain     float64 `json:"domain"`
	Mentions   float64 `json:"mentions"`
	Prominence float64 `json:"prominence"`
	Depth      float64 `json:"depth"`
}

// Total sums the factor contributions.
func (b ScoreBreakdown) Total() float64 {
	return b.Citations + b.Domain + b.Mentions + b.Prominence + b.Depth
}

// ScanSummary aggregates a scan's outcome across all platforms.
type ScanSummary struct {
	TotalQueries     int              `json:"totalQueries"`
	MentionedCount   int              `json:"mentionedCount"`
	IsInvisible      bool             `json:"isInvisible"`
	VisibilityScore  int              `json:"visibilityScore"`
	PlatformScores   map[Platform]int `json:"platformScores"`
	ScoreBreakdown   ScoreBreakdown   `json:"scoreBreakdown"`
	ScoreExplanation string           `json:"scoreExplanation"`
	BusinessSummary  string           `json:"businessSummary,omitempty"`
	Message          string           `json:"message"`
	PlatformErrors   []PlatformError  `json:"platformErrors,omitempty"`
}

// ContentPreview is a teaser of AI-visibility-optimized page content
// suggested for the scanned domain.
type ContentPreview struct {
	PageTitle       string   `json:"pageTitle"`
	MetaDescription string   `json:"metaDescription"`
	Outline         []string `json:"outline"`
}

// VisibilityReport is the complete result of scanning one domain.
type VisibilityReport struct {
	// ID is zero when persistence failed or is disabled; the report is still
	// served to the caller.
	ID      ReportID         `json:"reportId"`
	Domain  string           `json:"domain"`
	Results []PlatformResult `json:"results"`
	Summary ScanSummary      `json:"summary"`
	Preview *ContentPreview  `json:"contentPreview,omitempty"`
	// CreatedAt is the time when the scan completed.
	CreatedAt time.Time `json:"createdAt"`
}
