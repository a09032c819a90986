package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pvlab/helios/internal/db"
	"github.com/pvlab/helios/internal/domain"
)

// SQLiteBaselineRepo implements BaselineRepo over a DBTX. Baselines are
// written once and never updated; there is deliberately no Update method.
type SQLiteBaselineRepo struct {
	db db.DBTX
}

func NewSQLiteBaselineRepo(dbtx db.DBTX) *SQLiteBaselineRepo {
	return &SQLiteBaselineRepo{db: dbtx}
}

func (r *SQLiteBaselineRepo) Create(ctx context.Context, b *domain.Baseline) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO baselines (id, label, captured_at, created_by, description)
		 VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.Label, b.CapturedAt.Format(time.RFC3339), b.CreatedBy, b.Description,
	)
	if err != nil {
		return fmt.Errorf("inserting baseline %q: %w", b.Label, err)
	}

	for nodeID, entry := range b.Entries {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO baseline_entries (baseline_id, node_id, budget, duration_days, start_date, end_date)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			b.ID, nodeID, entry.Budget, entry.DurationDays,
			entry.StartDate.Format(dateLayout), entry.EndDate.Format(dateLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting baseline entry %s/%s: %w", b.Label, nodeID, err)
		}
	}
	return nil
}

func (r *SQLiteBaselineRepo) GetByLabel(ctx context.Context, label string) (*domain.Baseline, error) {
	var b domain.Baseline
	var capturedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, label, captured_at, created_by, description FROM baselines WHERE label = ?`,
		label,
	).Scan(&b.ID, &b.Label, &capturedAt, &b.CreatedBy, &b.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("baseline %q: %w", label, ErrNotFound)
		}
		return nil, fmt.Errorf("loading baseline %q: %w", label, err)
	}
	if b.CapturedAt, err = time.Parse(time.RFC3339, capturedAt); err != nil {
		return nil, fmt.Errorf("parsing captured_at of %q: %w", label, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT node_id, budget, duration_days, start_date, end_date
		 FROM baseline_entries WHERE baseline_id = ?`, b.ID)
	if err != nil {
		return nil, fmt.Errorf("loading baseline entries of %q: %w", label, err)
	}
	defer rows.Close()

	b.Entries = make(map[string]domain.BaselineEntry)
	for rows.Next() {
		var nodeID, startDate, endDate string
		var entry domain.BaselineEntry
		if err := rows.Scan(&nodeID, &entry.Budget, &entry.DurationDays, &startDate, &endDate); err != nil {
			return nil, fmt.Errorf("scanning baseline entry: %w", err)
		}
		if entry.StartDate, err = parseDate(startDate, dateLayout); err != nil {
			return nil, fmt.Errorf("parsing entry start date: %w", err)
		}
		if entry.EndDate, err = parseDate(endDate, dateLayout); err != nil {
			return nil, fmt.Errorf("parsing entry end date: %w", err)
		}
		b.Entries[nodeID] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating baseline entries: %w", err)
	}
	return &b, nil
}

func (r *SQLiteBaselineRepo) List(ctx context.Context) ([]*domain.Baseline, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, label, captured_at, created_by, description
		 FROM baselines ORDER BY captured_at, label`)
	if err != nil {
		return nil, fmt.Errorf("listing baselines: %w", err)
	}
	defer rows.Close()

	var out []*domain.Baseline
	for rows.Next() {
		var b domain.Baseline
		var capturedAt string
		if err := rows.Scan(&b.ID, &b.Label, &capturedAt, &b.CreatedBy, &b.Description); err != nil {
			return nil, fmt.Errorf("scanning baseline: %w", err)
		}
		if b.CapturedAt, err = time.Parse(time.RFC3339, capturedAt); err != nil {
			return nil, fmt.Errorf("parsing captured_at: %w", err)
		}
		out = append(out, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating baselines: %w", err)
	}
	return out, nil
}

func (r *SQLiteBaselineRepo) Delete(ctx context.Context, label string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM baselines WHERE label = ?`, label)
	if err != nil {
		return fmt.Errorf("deleting baseline %q: %w", label, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting baseline %q: %w", label, err)
	}
	if affected == 0 {
		return fmt.Errorf("baseline %q: %w", label, ErrNotFound)
	}
	return nil
}
