// Package domain contains the core domain entities of the visibility engine:
// scan reports, per-platform results, generated queries and comparisons.
// These types carry the business semantics and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
