package domain

// Tie is the winner value used when both sides score equally.
const Tie = "tie"

// PlatformWinner names the domain with the higher standalone score on one
// platform.
type PlatformWinner struct {
	Platform Platform `json:"platform"`
	// Winner is the winning domain, or Tie.
	Winner string `json:"winner"`
	// Scores maps each compared domain to its score on this platform.
	// Domains whose platform call failed score zero.
	Scores map[string]int `json:"scores"`
}

// Upsell is the deterministic call-to-action attached to a comparison,
// keyed off the verdict tier.
type Upsell struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
	CTA      string `json:"cta"`
}

// Comparison is the outcome of scanning two domains head to head.
type Comparison struct {
	First  *VisibilityReport `json:"domain1"`
	Second *VisibilityReport `json:"domain2"`
	// Winner is the domain with the higher overall score, or Tie.
	Winner string `json:"winner"`
	// ScoreDelta is the absolute difference between the overall scores.
	ScoreDelta      int              `json:"scoreDelta"`
	PlatformWinners []PlatformWinner `json:"platformWinners"`
	// Verdict is a one-line natural language reading of the gap.
	Verdict string `json:"verdict"`
	Upsell  Upsell `json:"upsell"`
}
