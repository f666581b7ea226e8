package signals

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
	"mvdan.cc/xurls/v2"
)

// relaxedURL finds URLs without requiring a scheme, the way AI answers tend
// to write them.
var relaxedURL = xurls.Relaxed() //nolint: gochecknoglobals

// domainTokenRE picks up bare domains the URL matcher misses, bounded to
// common endings so prose like "node.js" is not collected.
var domainTokenRE = regexp.MustCompile( //nolint: gochecknoglobals
	`(?i)\b[a-z0-9][a-z0-9-]{0,62}\.(?:com|net|org|io|co|ai|app|dev|so|sh|me|gg|tv|xyz|info|biz|us|uk|ca|de|fr|es|nl|tech|site|store|shop|cloud|agency|studio|design|tools)\b`)

// hostOf extracts the lowercase hostname from a URL or bare domain.
func hostOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	return strings.ToLower(u.Hostname())
}

// registrable reduces a host to its registrable domain (eTLD+1), falling
// back to the trimmed host when the public suffix list cannot place it.
func registrable(host string) string {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld
	}

	return host
}

// hostMatches reports whether host is the target domain or one of its
// subdomains.
func hostMatches(host, domain string) bool {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if host == domain {
		return true
	}
	if strings.HasSuffix(host, "."+domain) {
		return true
	}

	return registrable(host) == domain
}

// InCitations reports whether any citation URL resolves to the target domain
// or one of its subdomains. Citations are mechanical source lists, so the
// hedging-sentence guard does not apply here.
func InCitations(citations []string, domain string) bool {
	for _, c := range citations {
		host := hostOf(c)
		if host == "" {
			continue
		}
		if hostMatches(host, domain) {
			return true
		}
	}

	return false
}

// domainInText reports whether the registrable domain string itself appears
// in the text outside of hedging sentences.
func domainInText(text, domain string) bool {
	for _, loc := range variantRE(strings.ToLower(domain)).FindAllStringIndex(text, -1) {
		if !isNegativeAt(text, loc[0]) {
			return true
		}
	}

	return false
}

// DomainFound reports whether the exact registrable domain appears in answer
// text or citations.
func DomainFound(text string, citations []string, domain string) bool {
	return domainInText(text, domain) || InCitations(citations, domain)
}

// MentionedDomains collects every registrable domain surfaced by an answer,
// from URLs in the text, bare domain tokens and the citation list, deduped
// in order of first appearance.
func MentionedDomains(text string, citations []string) []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(host string) {
		if host == "" {
			return
		}
		d := registrable(host)
		if d == "" || !strings.Contains(d, ".") {
			return
		}
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	for _, raw := range relaxedURL.FindAllString(text, -1) {
		add(hostOf(raw))
	}
	for _, tok := range domainTokenRE.FindAllString(text, -1) {
		add(strings.ToLower(tok))
	}
	for _, c := range citations {
		add(hostOf(c))
	}

	return out
}

// otherDomains filters the target and its subdomains out of the mentioned
// set, leaving competitor domains.
func otherDomains(text string, citations []string, domain string) []string {
	var out []string
	for _, d := range MentionedDomains(text, citations) {
		if hostMatches(d, domain) {
			continue
		}
		out = append(out, d)
	}

	return out
}
