package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/pvlab/helios/internal/db"
	"github.com/pvlab/helios/internal/domain"
)

// wbsNodeColumns is the canonical SELECT column list for wbs_nodes.
const wbsNodeColumns = `id, parent_id, name, level, duration_days, start_date, end_date,
		assignee, status, progress, budget, actual_cost, kind,
		is_milestone, is_critical, order_index, created_at, updated_at`

// SQLiteWBSNodeRepo implements WBSNodeRepo over a DBTX, so the same
// implementation serves both direct and transactional access.
type SQLiteWBSNodeRepo struct {
	db db.DBTX
}

func NewSQLiteWBSNodeRepo(dbtx db.DBTX) *SQLiteWBSNodeRepo {
	return &SQLiteWBSNodeRepo{db: dbtx}
}

func (r *SQLiteWBSNodeRepo) ReplaceAll(ctx context.Context, nodes []*domain.WBSNode) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM wbs_dependencies`); err != nil {
		return fmt.Errorf("clearing dependencies: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM wbs_nodes`); err != nil {
		return fmt.Errorf("clearing nodes: %w", err)
	}
	// Parents must exist before children for the FK on parent_id.
	ordered := make([]*domain.WBSNode, len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Level < ordered[j].Level })
	for _, n := range ordered {
		if err := r.insert(ctx, n); err != nil {
			return err
		}
	}
	// Dependencies reference other nodes, so they are written only after
	// every node row exists.
	for _, n := range nodes {
		if err := r.insertDependencies(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteWBSNodeRepo) UpsertAll(ctx context.Context, nodes []*domain.WBSNode) error {
	ordered := make([]*domain.WBSNode, len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Level < ordered[j].Level })
	for _, n := range ordered {
		query := `INSERT OR REPLACE INTO wbs_nodes (` + wbsNodeColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query, r.args(n)...); err != nil {
			return fmt.Errorf("upserting node %s: %w", n.ID, err)
		}
		if _, err := r.db.ExecContext(ctx, `DELETE FROM wbs_dependencies WHERE node_id = ?`, n.ID); err != nil {
			return fmt.Errorf("clearing dependencies for %s: %w", n.ID, err)
		}
	}
	for _, n := range ordered {
		if err := r.insertDependencies(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteWBSNodeRepo) insert(ctx context.Context, n *domain.WBSNode) error {
	query := `INSERT INTO wbs_nodes (` + wbsNodeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, r.args(n)...); err != nil {
		return fmt.Errorf("inserting node %s: %w", n.ID, err)
	}
	return nil
}

func (r *SQLiteWBSNodeRepo) args(n *domain.WBSNode) []any {
	return []any{
		n.ID,
		n.ParentID, // *string: nil becomes SQL NULL
		n.Name,
		n.Level,
		n.DurationDays,
		n.StartDate.Format(dateLayout),
		n.EndDate.Format(dateLayout),
		n.Assignee,
		string(n.Status),
		n.Progress,
		n.Budget,
		n.ActualCost,
		string(n.Kind),
		boolToInt(n.IsMilestone),
		boolToInt(n.IsCritical),
		n.OrderIndex,
		n.CreatedAt.Format(time.RFC3339),
		n.UpdatedAt.Format(time.RFC3339),
	}
}

func (r *SQLiteWBSNodeRepo) insertDependencies(ctx context.Context, n *domain.WBSNode) error {
	for _, dep := range n.Dependencies {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO wbs_dependencies (node_id, depends_on) VALUES (?, ?)`,
			n.ID, dep,
		); err != nil {
			return fmt.Errorf("inserting dependency %s -> %s: %w", n.ID, dep, err)
		}
	}
	return nil
}

func (r *SQLiteWBSNodeRepo) GetByID(ctx context.Context, id string) (*domain.WBSNode, error) {
	query := `SELECT ` + wbsNodeColumns + ` FROM wbs_nodes WHERE id = ?`
	n, err := r.scanNode(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	deps, err := r.loadDependencies(ctx)
	if err != nil {
		return nil, err
	}
	n.Dependencies = deps[n.ID]
	return n, nil
}

func (r *SQLiteWBSNodeRepo) List(ctx context.Context) ([]*domain.WBSNode, error) {
	query := `SELECT ` + wbsNodeColumns + ` FROM wbs_nodes ORDER BY level, order_index, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}
	defer rows.Close()

	nodes, err := r.collect(rows)
	if err != nil {
		return nil, err
	}

	deps, err := r.loadDependencies(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		n.Dependencies = deps[n.ID]
	}
	return nodes, nil
}

func (r *SQLiteWBSNodeRepo) ListChildren(ctx context.Context, parentID string) ([]*domain.WBSNode, error) {
	query := `SELECT ` + wbsNodeColumns + ` FROM wbs_nodes WHERE parent_id = ? ORDER BY order_index, id`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing children of %s: %w", parentID, err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *SQLiteWBSNodeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wbs_nodes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting node %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting node %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("node %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteWBSNodeRepo) loadDependencies(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT node_id, depends_on FROM wbs_dependencies ORDER BY node_id, depends_on`)
	if err != nil {
		return nil, fmt.Errorf("loading dependencies: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var nodeID, dependsOn string
		if err := rows.Scan(&nodeID, &dependsOn); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		out[nodeID] = append(out[nodeID], dependsOn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return out, nil
}

func (r *SQLiteWBSNodeRepo) collect(rows *sql.Rows) ([]*domain.WBSNode, error) {
	var nodes []*domain.WBSNode
	for rows.Next() {
		n, err := r.scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nodes: %w", err)
	}
	return nodes, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanNode.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteWBSNodeRepo) scanNode(row rowScanner) (*domain.WBSNode, error) {
	var n domain.WBSNode
	var parentID sql.NullString
	var startDate, endDate, createdAt, updatedAt string
	var status, kind string
	var isMilestone, isCritical int

	err := row.Scan(
		&n.ID, &parentID, &n.Name, &n.Level, &n.DurationDays,
		&startDate, &endDate, &n.Assignee, &status,
		&n.Progress, &n.Budget, &n.ActualCost, &kind,
		&isMilestone, &isCritical, &n.OrderIndex, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("wbs node: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning node: %w", err)
	}

	if parentID.Valid {
		p := parentID.String
		n.ParentID = &p
	}
	n.Status = domain.NodeStatus(status)
	n.Kind = domain.NodeKind(kind)
	n.IsMilestone = intToBool(isMilestone)
	n.IsCritical = intToBool(isCritical)

	if n.StartDate, err = parseDate(startDate, dateLayout); err != nil {
		return nil, fmt.Errorf("parsing start date of %s: %w", n.ID, err)
	}
	if n.EndDate, err = parseDate(endDate, dateLayout); err != nil {
		return nil, fmt.Errorf("parsing end date of %s: %w", n.ID, err)
	}
	if n.CreatedAt, err = parseDate(createdAt, time.RFC3339); err != nil {
		return nil, fmt.Errorf("parsing created_at of %s: %w", n.ID, err)
	}
	if n.UpdatedAt, err = parseDate(updatedAt, time.RFC3339); err != nil {
		return nil, fmt.Errorf("parsing updated_at of %s: %w", n.ID, err)
	}

	return &n, nil
}
