// Package storage defines the persistence interfaces the application relies
// on. It abstracts report storage so that different backends (e.g.
// PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
)

// ReportStorage persists visibility reports and serves them back for
// shareable report URLs. Reports are append-only: a new scan always inserts
// a new row and nothing updates or deletes existing ones.
type ReportStorage interface {
	// StoreReport persists the report and returns its assigned ID. The
	// report's own ID field is ignored on insert.
	StoreReport(ctx context.Context, report *domain.VisibilityReport) (domain.ReportID, error)
	// ReportByID returns the report with the given ID, or nil when no such
	// report exists.
	ReportByID(ctx context.Context, id domain.ReportID) (*domain.VisibilityReport, error)
}

// Storage describes a storage handle with lifecycle management.
type Storage interface {
	ReportStorage

	// Close releases any resources held by the storage implementation (e.g.
	// the underlying connection pool). After Close, the instance should not
	// be used.
	Close() error
}
