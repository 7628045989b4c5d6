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

// AgentRepository implements ports.AgentRepository on PostgreSQL.
type AgentRepository struct {
	db *sql.DB
}

func NewAgentRepository(db *sql.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

func (r *AgentRepository) Create(ctx context.Context, a *domain.Agent) (*domain.Agent, error) {
	created := &domain.Agent{}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO agents (name, role, incorporation_date)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, role, incorporation_date`,
		a.Name, a.Role, a.IncorporationDate,
	).Scan(&created.ID, &created.Name, &created.Role, &created.IncorporationDate)
	if err != nil {
		return nil, fmt.Errorf("insert agent: %w", err)
	}
	return created, nil
}

func (r *AgentRepository) Find(ctx context.Context, id int64) (*domain.Agent, error) {
	a := &domain.Agent{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, role, incorporation_date FROM agents WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.Role, &a.IncorporationDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find agent: %w", err)
	}
	return a, nil
}

func (r *AgentRepository) FindAll(ctx context.Context) ([]domain.Agent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, role, incorporation_date FROM agents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()

	agents := []domain.Agent{}
	for rows.Next() {
		var a domain.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Role, &a.IncorporationDate); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

func (r *AgentRepository) Update(ctx context.Context, id int64, upd ports.AgentUpdate) (*domain.Agent, error) {
	if upd.Empty() {
		// Empty patch: no-op, just confirm the row exists.
		return r.Find(ctx, id)
	}

	set := make([]string, 0, 3)
	args := make([]any, 0, 4)
	addSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		addSet("name", *upd.Name)
	}
	if upd.Role != nil {
		addSet("role", *upd.Role)
	}
	if upd.IncorporationDate != nil {
		addSet("incorporation_date", *upd.IncorporationDate)
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE agents SET %s WHERE id = $%d RETURNING id, name, role, incorporation_date`,
		strings.Join(set, ", "), len(args))

	a := &domain.Agent{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&a.ID, &a.Name, &a.Role, &a.IncorporationDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update agent: %w", err)
	}
	return a, nil
}

func (r *AgentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	// Referencing cases are removed by the ON DELETE CASCADE constraint.
	result, err := r.db.ExecContext(ctx, `DELETE FROM agents WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete agent: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete agent: %w", err)
	}
	return affected > 0, nil
}
