package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/policedept/records-system/internal/core/domain"
	"github.com/policedept/records-system/internal/core/ports"
)

// CaseRepository implements ports.CaseRepository on PostgreSQL. Foreign key
// violations on agent_id are returned as DanglingReference domain errors.
type CaseRepository struct {
	db *sql.DB
}

func NewCaseRepository(db *sql.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	created := &domain.Case{}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO cases (title, description, status, agent_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, description, status, agent_id`,
		c.Title, c.Description, string(c.Status), c.AgentID,
	).Scan(&created.ID, &created.Title, &created.Description, &created.Status, &created.AgentID)
	if err != nil {
		if mapped := constraintError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("insert case: %w", err)
	}
	return created, nil
}

func (r *CaseRepository) Find(ctx context.Context, id int64) (*domain.Case, error) {
	c := &domain.Case{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, status, agent_id FROM cases WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Title, &c.Description, &c.Status, &c.AgentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find case: %w", err)
	}
	return c, nil
}

func (r *CaseRepository) FindAll(ctx context.Context) ([]domain.Case, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, status, agent_id FROM cases ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	cases := []domain.Case{}
	for rows.Next() {
		var c domain.Case
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Status, &c.AgentID); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return cases, nil
}

func (r *CaseRepository) Update(ctx context.Context, id int64, upd ports.CaseUpdate) (*domain.Case, error) {
	if upd.Empty() {
		return r.Find(ctx, id)
	}

	set := make([]string, 0, 4)
	args := make([]any, 0, 5)
	addSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		addSet("title", *upd.Title)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}
	if upd.Status != nil {
		addSet("status", string(*upd.Status))
	}
	if upd.AgentID != nil {
		addSet("agent_id", *upd.AgentID)
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE cases SET %s WHERE id = $%d RETURNING id, title, description, status, agent_id`,
		strings.Join(set, ", "), len(args))

	c := &domain.Case{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.Title, &c.Description, &c.Status, &c.AgentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if mapped := constraintError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("update case: %w", err)
	}
	return c, nil
}

func (r *CaseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete case: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete case: %w", err)
	}
	return affected > 0, nil
}
