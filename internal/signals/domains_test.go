package signals_test

import (
	"testing"

	"github.com/Arjun0606/cabbageseo-sub003/internal/signals"
	"github.com/stretchr/testify/require"
)

func TestInCitations(t *testing.T) {
	const domain = "example.com"

	tests := []struct {
		name      string
		citations []string
		want      bool
	}{
		{"exact host", []string{"https://example.com/page"}, true},
		{"subdomain", []string{"https://docs.example.com/guide"}, true},
		{"www prefix", []string{"https://www.example.com"}, true},
		{"schemeless", []string{"example.com/pricing"}, true},
		{"among others", []string{"https://other.io", "https://example.com"}, true},
		{"different domain", []string{"https://competitor.io"}, false},
		{"lookalike suffix", []string{"https://notexample.com"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, signals.InCitations(tt.citations, domain))
		})
	}
}

func TestDomainFound(t *testing.T) {
	const domain = "example.com"

	require.True(t, signals.DomainFound("Visit example.com for details.", nil, domain))
	require.True(t, signals.DomainFound("Here are some options.", []string{"https://example.com"}, domain),
		"a citation hit counts as the domain being shown")
	require.False(t, signals.DomainFound("Example is a common word.", nil, domain),
		"the brand token alone is not the domain string")
	require.False(t, signals.DomainFound("I'm not aware of example.com.", nil, domain))
}

func TestMentionedDomains(t *testing.T) {
	text := "Check https://stripe.com/pricing first, then paypal.com. Some also like square.com for this."
	citations := []string{"https://docs.stripe.com/api", "https://wise.com"}

	got := signals.MentionedDomains(text, citations)
	require.Equal(t, []string{"stripe.com", "paypal.com", "square.com", "wise.com"}, got,
		"domains should be registrable, deduped and in order of first appearance")
}

func TestMentionedDomains_IgnoresProse(t *testing.T) {
	got := signals.MentionedDomains("Node.js apps and plain prose with no links.", nil)
	require.NotContains(t, got, "node.js")
}
