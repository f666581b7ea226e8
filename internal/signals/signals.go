// Package signals extracts visibility signals from AI platform answers:
// brand mentions, mention position and count, citation hits and competitor
// domains. Everything here is pure string analysis with no I/O, so results
// are reproducible for a given answer.
package signals

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// negativePhrases mark hedging sentences. A brand occurrence inside such a
// sentence is not a positive signal: "I'm not aware of example.com" must not
// count as a mention.
var negativePhrases = []string{ //nolint: gochecknoglobals
	"i'm not aware of",
	"i am not aware of",
	"not aware of any",
	"no information available",
	"no information about",
	"i don't have information",
	"i do not have information",
	"i don't have any information",
	"couldn't find any information",
	"could not find any information",
	"i'm not familiar with",
	"i am not familiar with",
	"does not appear to be",
	"doesn't appear to be",
	"unable to find",
	"there is no information",
}

// BrandToken derives the brand name from a registrable domain: the left-most
// label. "producthunt.com" yields "producthunt".
func BrandToken(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if i := strings.IndexByte(domain, '.'); i > 0 {
		return domain[:i]
	}

	return domain
}

// SplitCompound attempts to split a compound brand token into two known
// words, so "producthunt" also matches "product hunt" and "product-hunt".
func SplitCompound(token string) (first, second string, ok bool) {
	if len(token) < 6 {
		return "", "", false
	}
	for i := 3; i <= len(token)-3; i++ {
		a, b := token[:i], token[i:]
		if _, found := commonWords[a]; !found {
			continue
		}
		if _, found := commonWords[b]; !found {
			continue
		}

		return a, b, true
	}

	return "", "", false
}

// brandVariants lists the strings that count as a brand mention: the bare
// token, the registrable domain and the compound decompositions.
func brandVariants(domain string) []string {
	token := BrandToken(domain)
	variants := []string{token}
	if domain != token {
		variants = append(variants, domain)
	}
	if first, second, ok := SplitCompound(token); ok {
		variants = append(variants, first+" "+second, first+"-"+second)
	}

	return variants
}

var (
	variantMu    sync.Mutex
	variantCache = map[string]*regexp.Regexp{} //nolint: gochecknoglobals
)

// variantRE returns a cached word-boundary matcher for the given variant.
func variantRE(variant string) *regexp.Regexp {
	variantMu.Lock()
	defer variantMu.Unlock()

	if re, ok := variantCache[variant]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(variant) + `\b`)
	variantCache[variant] = re

	return re
}

// positiveMatches returns the non-overlapping intervals of brand variants in
// text, excluding occurrences inside hedging sentences. Intervals are sorted
// by position.
func positiveMatches(text, domain string) [][2]int {
	if text == "" {
		return nil
	}

	var intervals [][2]int
	for _, v := range brandVariants(domain) {
		for _, loc := range variantRE(v).FindAllStringIndex(text, -1) {
			if isNegativeAt(text, loc[0]) {
				continue
			}
			intervals = append(intervals, [2]int{loc[0], loc[1]})
		}
	}

	// the token also matches inside the domain string; keep the longest
	// interval at each position and drop the overlaps
	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i][0] != intervals[j][0] {
			return intervals[i][0] < intervals[j][0]
		}

		return intervals[i][1] > intervals[j][1]
	})

	var out [][2]int
	lastEnd := -1
	for _, iv := range intervals {
		if iv[0] < lastEnd {
			continue
		}
		out = append(out, iv)
		lastEnd = iv[1]
	}

	return out
}

// IsBrandMentioned reports whether the answer mentions the brand or domain
// outside of hedging sentences.
func IsBrandMentioned(text, domain string) bool {
	return len(positiveMatches(text, domain)) > 0
}

// MentionPosition returns the relative offset of the first positive mention
// in [0,1], or -1 when there is none. Smaller is more prominent.
func MentionPosition(text, domain string) float64 {
	matches := positiveMatches(text, domain)
	if len(matches) == 0 || len(text) == 0 {
		return -1
	}

	return float64(matches[0][0]) / float64(len(text))
}

// MentionCount returns the number of positive mentions in the answer.
func MentionCount(text, domain string) int {
	return len(positiveMatches(text, domain))
}

// IsNegativeMention reports whether the text hedges about knowing the brand.
func IsNegativeMention(text string) bool {
	return containsNegativePhrase(strings.ToLower(text))
}

func containsNegativePhrase(s string) bool {
	for _, p := range negativePhrases {
		if strings.Contains(s, p) {
			return true
		}
	}

	return false
}

// isNegativeAt reports whether the sentence containing byte offset idx is a
// hedging sentence.
func isNegativeAt(text string, idx int) bool {
	return containsNegativePhrase(strings.ToLower(sentenceAt(text, idx)))
}

// sentenceAt returns the sentence containing byte offset idx. Dots glued to
// a following word are domain-internal, not punctuation.
func sentenceAt(text string, idx int) string {
	start := 0
	for i := idx - 1; i >= 0; i-- {
		if isSentenceEnd(text, i) {
			start = i + 1

			break
		}
	}
	end := len(text)
	for i := idx; i < len(text); i++ {
		if isSentenceEnd(text, i) {
			end = i + 1

			break
		}
	}

	return text[start:end]
}

func isSentenceEnd(text string, i int) bool {
	switch text[i] {
	case '!', '?', '\n':
		return true
	case '.':
		return i+1 >= len(text) || !isWordByte(text[i+1])
	}

	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-'
}

// Evaluation aggregates the signals extracted from one answer.
type Evaluation struct {
	// Mentioned is the weakest signal: the brand appeared at all.
	Mentioned bool
	// DomainFound means the registrable domain itself appeared in text or
	// citations. Implies Mentioned.
	DomainFound bool
	// Cited means a citation resolves to the domain. Implies DomainFound.
	Cited bool
	// Position is the relative offset of the first positive mention, or -1.
	Position float64
	// Count is the number of positive mentions in the text.
	Count int
	// OtherDomains lists competitor domains surfaced by the answer, in order
	// of first appearance.
	OtherDomains []string
}

// Evaluate extracts all signals for a target domain from an answer.
func Evaluate(text string, citations []string, domain string) Evaluation {
	ev := Evaluation{Position: -1}

	matches := positiveMatches(text, domain)
	if len(matches) > 0 {
		ev.Mentioned = true
		ev.Count = len(matches)
		ev.Position = float64(matches[0][0]) / float64(len(text))
	}

	ev.Cited = InCitations(citations, domain)
	ev.DomainFound = ev.Cited || domainInText(text, domain)

	// signal strength ordering: cited implies found implies mentioned
	if ev.DomainFound {
		ev.Mentioned = true
	}

	ev.OtherDomains = otherDomains(text, citations, domain)

	return ev
}
