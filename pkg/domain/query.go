package domain

// QueryIntent classifies a generated query by the stage of the customer
// journey it simulates.
type QueryIntent string

const (
	// IntentDiscovery simulates a problem-driven search that does not name
	// the brand.
	IntentDiscovery QueryIntent = "discovery"
	// IntentBrand is a direct lookup of the brand or domain.
	IntentBrand QueryIntent = "brand"
	// IntentDecision simulates comparison or review style research.
	IntentDecision QueryIntent = "decision"
)

// QuerySource records how a query set was produced.
type QuerySource string

const (
	// QuerySourceModel marks queries produced by the AI generator.
	QuerySourceModel QuerySource = "model"
	// QuerySourceTemplate marks deterministic fallback queries.
	QuerySourceTemplate QuerySource = "template"
)

// GeneratedQuery is a single query to pose to AI platforms.
type GeneratedQuery struct {
	Text   string      `json:"text"`
	Intent QueryIntent `json:"intent"`
}

// QuerySet is the full set of queries generated for one scan, one per
// intent.
type QuerySet struct {
	Queries []GeneratedQuery `json:"queries"`
	// BusinessSummary is a one-line description of what the business does,
	// produced alongside model-generated queries.
	BusinessSummary string      `json:"businessSummary,omitempty"`
	Source          QuerySource `json:"source"`
}

// ByIntent returns the query for the given intent.
func (qs QuerySet) ByIntent(intent QueryIntent) (GeneratedQuery, bool) {
	for _, q := range qs.Queries {
		if q.Intent == intent {
			return q, true
		}
	}

	return GeneratedQuery{}, false
}
