package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
)

const (
	reportsTable = "reports"
)

// StoreReport inserts a new report row and returns its generated ID. Reports
// are never updated in place; every scan produces a fresh row.
func (p *PgSQL) StoreReport(ctx context.Context, report *domain.VisibilityReport) (domain.ReportID, error) {
	var pgReport PgReport
	if err := pgReport.FromDomain(report); err != nil {
		return domain.ReportID{}, err
	}

	var row PgReport
	found, err := p.Builder.Insert(reportsTable).
		Rows(pgReport).
		Returning(&PgReport{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return domain.ReportID{}, fmt.Errorf("could not store report into pg: %w", err)
	}
	if !found {
		return domain.ReportID{}, errors.New("no row returned when storing report")
	}

	return domain.ReportID(row.ID), nil
}

// ReportByID returns a report by its ID, or nil when no such report exists.
func (p *PgSQL) ReportByID(ctx context.Context, id domain.ReportID) (*domain.VisibilityReport, error) {
	var row PgReport
	found, err := p.Builder.From(reportsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch report by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
