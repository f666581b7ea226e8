package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
)

// PgReport is the database representation of a visibility report. Results,
// summary and preview are stored as jsonb so the report payload can evolve
// without schema churn; score and invisibility are broken out as columns for
// querying.
type PgReport struct {
	ID     uuid.UUID `db:"id"     goqu:"skipinsert"`
	Domain string    `db:"domain"`

	VisibilityScore int  `db:"visibility_score"`
	IsInvisible     bool `db:"is_invisible"`

	Results        json.RawMessage `db:"results"`
	Summary        json.RawMessage `db:"summary"`
	ContentPreview json.RawMessage `db:"content_preview"`

	CreatedAt time.Time `db:"created_at"`
}

func (p *PgReport) ToDomain() (*domain.VisibilityReport, error) {
	var results []domain.PlatformResult
	if err := json.Unmarshal(p.Results, &results); err != nil {
		return nil, fmt.Errorf("could not unmarshal report results: %w", err)
	}

	var summary domain.ScanSummary
	if err := json.Unmarshal(p.Summary, &summary); err != nil {
		return nil, fmt.Errorf("could not unmarshal report summary: %w", err)
	}

	var preview *domain.ContentPreview
	if len(p.ContentPreview) > 0 {
		preview = &domain.ContentPreview{}
		if err := json.Unmarshal(p.ContentPreview, preview); err != nil {
			return nil, fmt.Errorf("could not unmarshal content preview: %w", err)
		}
	}

	return &domain.VisibilityReport{
		ID:        domain.ReportID(p.ID),
		Domain:    p.Domain,
		Results:   results,
		Summary:   summary,
		Preview:   preview,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (p *PgReport) FromDomain(report *domain.VisibilityReport) error {
	results, err := json.Marshal(report.Results)
	if err != nil {
		return fmt.Errorf("could not marshal report results: %w", err)
	}

	summary, err := json.Marshal(report.Summary)
	if err != nil {
		return fmt.Errorf("could not marshal report summary: %w", err)
	}

	// nil preview stays a nil RawMessage so the column is NULL
	var preview json.RawMessage
	if report.Preview != nil {
		preview, err = json.Marshal(report.Preview)
		if err != nil {
			return fmt.Errorf("could not marshal content preview: %w", err)
		}
	}

	*p = PgReport{
		ID:              uuid.UUID(report.ID),
		Domain:          report.Domain,
		VisibilityScore: report.Summary.VisibilityScore,
		IsInvisible:     report.Summary.IsInvisible,
		Results:         results,
		Summary:         summary,
		ContentPreview:  preview,
		CreatedAt:       report.CreatedAt,
	}

	return nil
}
