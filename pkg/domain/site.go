package domain

// SiteContext is the metadata fetched from a domain's homepage. It enriches
// query generation; scans proceed with an empty context when the fetch
// fails.
type SiteContext struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Headings    []string `json:"headings,omitempty"`
	// Category is a coarse business category assigned after fetching, one of
	// a fixed set ("software", "ecommerce", ...).
	Category string `json:"category,omitempty"`
}

// IsEmpty reports whether nothing useful was fetched.
func (c SiteContext) IsEmpty() bool {
	return c.Title == "" && c.Description == "" && len(c.Headings) == 0
}
