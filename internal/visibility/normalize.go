package visibility

import (
	"net"
	"regexp"
	"strings"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

// hostnameRE matches a bare hostname: dot-separated labels of letters,
// digits and inner hyphens, with at least two labels.
var hostnameRE = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`) //nolint: gochecknoglobals

// NormalizeDomain returns the canonical form of a user-supplied domain.
//
// The normalization rules are intentionally strict so that equivalent
// spellings always key the same scans and reports:
//   - Trim whitespace and lowercase
//   - Strip a scheme and any userinfo
//   - Strip path, query and fragment
//   - Strip an explicit port and a trailing dot
//   - Strip one leading "www."
//   - Reject anything that is not a dotted hostname, including IP addresses
//
// Normalization is idempotent: applying it to its own output yields the same
// domain.
func NormalizeDomain(input string) (string, error) {
	dom := strings.ToLower(strings.TrimSpace(input))
	if dom == "" {
		return "", serrors.With(serrors.ErrBadRequest, "domain is required")
	}

	// strip scheme
	if i := strings.Index(dom, "://"); i >= 0 {
		dom = dom[i+3:]
	}
	// strip path, query and fragment
	if i := strings.IndexAny(dom, "/?#"); i >= 0 {
		dom = dom[:i]
	}
	// strip userinfo
	if i := strings.LastIndex(dom, "@"); i >= 0 {
		dom = dom[i+1:]
	}
	// strip an explicit port
	if host, _, err := net.SplitHostPort(dom); err == nil {
		dom = host
	} // else: no port present
	dom = strings.TrimSuffix(dom, ".")
	dom = strings.TrimPrefix(dom, "www.")

	if dom == "" || len(dom) > 253 || !hostnameRE.MatchString(dom) {
		return "", serrors.With(serrors.ErrBadRequest, "%q is not a valid domain", strings.TrimSpace(input))
	}
	// an all-digit last label means an IP address, not a hostname
	if allDigits(dom[strings.LastIndexByte(dom, '.')+1:]) {
		return "", serrors.With(serrors.ErrBadRequest, "%q is not a valid domain", strings.TrimSpace(input))
	}

	return dom, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}
