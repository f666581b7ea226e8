// Package sitecontext fetches a small snapshot of a site's homepage (title,
// description, headings) and classifies the business behind it. The snapshot
// grounds query generation so scans ask about what the site actually does
// instead of guessing from the bare domain name.
package sitecontext

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
)

const (
	defaultTimeout      = 5 * time.Second
	defaultMaxBodyBytes = 256 << 10
	defaultMaxHeadings  = 6
	defaultUserAgent    = "Mozilla/5.0 (compatible; CabbageSEOBot/1.0; +https://cabbageseo.com/bot)"
)

// Options configures homepage fetching.
type Options struct {
	// Timeout bounds the whole fetch. Scans treat the homepage as optional
	// context, so this should stay well below the platform timeouts.
	Timeout time.Duration
	// MaxBodyBytes caps how much of the homepage is read before parsing.
	MaxBodyBytes int64
	// MaxHeadings caps how many h1/h2 headings are kept.
	MaxHeadings int
	// UserAgent is sent with every request.
	UserAgent string
}

// Fetcher downloads homepages and extracts a domain.SiteContext from the
// HTML head and headings. It is safe for concurrent use.
type Fetcher struct {
	httpClient *http.Client
	options    Options
}

// New constructs a Fetcher. Zero option fields fall back to defaults.
func New(httpClient *http.Client, options Options) *Fetcher {
	if options.Timeout == 0 {
		options.Timeout = defaultTimeout
	}
	if options.MaxBodyBytes == 0 {
		options.MaxBodyBytes = defaultMaxBodyBytes
	}
	if options.MaxHeadings == 0 {
		options.MaxHeadings = defaultMaxHeadings
	}
	if options.UserAgent == "" {
		options.UserAgent = defaultUserAgent
	}

	return &Fetcher{httpClient: httpClient, options: options}
}

// Fetch downloads https://{dom} and extracts the page title, description and
// leading headings. dom must already be normalized.
func (f *Fetcher) Fetch(ctx context.Context, dom string) (*domain.SiteContext, error) {
	ctx, cancel := context.WithTimeout(ctx, f.options.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://"+dom, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", f.options.UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch homepage: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("homepage returned status %d", resp.StatusCode)
	}
	if contentType := resp.Header.Get("Content-Type"); !strings.Contains(contentType, "text/html") {
		return nil, fmt.Errorf("homepage is not html: %q", contentType)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, f.options.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("could not parse homepage: %w", err)
	}

	return f.extract(doc), nil
}

func (f *Fetcher) extract(doc *html.Node) *domain.SiteContext {
	site := &domain.SiteContext{}
	var ogDescription string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if site.Title == "" {
					site.Title = textOf(n)
				}
			case "meta":
				var name, property, content string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "name":
						name = attr.Val
					case "property":
						property = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if name == "description" && site.Description == "" {
					site.Description = strings.TrimSpace(content)
				}
				if property == "og:description" && ogDescription == "" {
					ogDescription = strings.TrimSpace(content)
				}
			case "h1", "h2":
				if len(site.Headings) < f.options.MaxHeadings {
					if heading := textOf(n); heading != "" && !slices.Contains(site.Headings, heading) {
						site.Headings = append(site.Headings, heading)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if site.Description == "" {
		site.Description = ogDescription
	}

	return site
}

// textOf collapses the text nodes under n into a single whitespace-normalized
// string.
func textOf(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
