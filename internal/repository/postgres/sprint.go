package postgres

import (
	"context"
	"errors"
	"fmt"

	"sprint-accomplishments/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectSprintsQuery       = `SELECT id, sprint_code, sprint_name FROM sprints ORDER BY id`
	selectSprintByIDQuery    = `SELECT id, sprint_code, sprint_name FROM sprints WHERE id = $1`
	selectSprintsByCodeQuery = `SELECT id, sprint_code, sprint_name FROM sprints WHERE sprint_code = $1 ORDER BY id`
	insertSprintQuery        = `INSERT INTO sprints (sprint_code, sprint_name) VALUES ($1, $2) RETURNING id, sprint_code, sprint_name`
	updateSprintQuery        = `
UPDATE sprints
SET sprint_code = COALESCE($2, sprint_code), sprint_name = COALESCE($3, sprint_name)
WHERE id = $1
RETURNING id, sprint_code, sprint_name`
	replaceSprintQuery = `
INSERT INTO sprints (id, sprint_code, sprint_name) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET sprint_code = EXCLUDED.sprint_code, sprint_name = EXCLUDED.sprint_name
RETURNING id, sprint_code, sprint_name`
	deleteSprintQuery = `DELETE FROM sprints WHERE id = $1 RETURNING id, sprint_code, sprint_name`
)

// Sprints returns all sprints in natural order.
func (p *Postgres) Sprints(ctx context.Context) ([]entities.Sprint, error) {
	return p.querySprints(ctx, selectSprintsQuery)
}

// SprintByID returns the sprint or nil when no row matches.
func (p *Postgres) SprintByID(ctx context.Context, id int64) (*entities.Sprint, error) {
	var s entities.Sprint
	err := p.db.QueryRow(ctx, selectSprintByIDQuery, id).Scan(&s.ID, &s.SprintCode, &s.SprintName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sprint: %w", err)
	}
	return &s, nil
}

// FindSprints returns sprints matching the equality filter.
func (p *Postgres) FindSprints(ctx context.Context, filter entities.SprintFilter) ([]entities.Sprint, error) {
	if filter.SprintCode != nil {
		return p.querySprints(ctx, selectSprintsByCodeQuery, *filter.SprintCode)
	}
	return p.querySprints(ctx, selectSprintsQuery)
}

// CreateSprint inserts a sprint and returns the stored row.
func (p *Postgres) CreateSprint(ctx context.Context, in entities.SprintInsert) (*entities.Sprint, error) {
	var s entities.Sprint
	err := p.db.QueryRow(ctx, insertSprintQuery, in.SprintCode, in.SprintName).Scan(&s.ID, &s.SprintCode, &s.SprintName)
	if err != nil {
		if cerr := constraintError(err, entities.ErrSprintExists, entities.ErrReferenced); cerr != nil {
			return nil, cerr
		}
		p.log.Errorw("failed to insert sprint", "error", err, "sprint_code", in.SprintCode)
		return nil, fmt.Errorf("insert sprint: %w", err)
	}

	p.log.Infow("sprint created", "sprint_id", s.ID, "sprint_code", s.SprintCode)
	return &s, nil
}

// UpdateSprint applies a partial patch; an empty patch leaves the row
// unchanged. Returns nil when no row matches.
func (p *Postgres) UpdateSprint(ctx context.Context, id int64, patch entities.SprintUpdate) (*entities.Sprint, error) {
	var s entities.Sprint
	err := p.db.QueryRow(ctx, updateSprintQuery, id, patch.SprintCode, patch.SprintName).
		Scan(&s.ID, &s.SprintCode, &s.SprintName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if cerr := constraintError(err, entities.ErrSprintExists, entities.ErrReferenced); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("update sprint: %w", err)
	}
	return &s, nil
}

// ReplaceSprint upserts the full record under the given id.
func (p *Postgres) ReplaceSprint(ctx context.Context, id int64, in entities.SprintInsert) (*entities.Sprint, error) {
	var s entities.Sprint
	err := p.db.QueryRow(ctx, replaceSprintQuery, id, in.SprintCode, in.SprintName).
		Scan(&s.ID, &s.SprintCode, &s.SprintName)
	if err != nil {
		if cerr := constraintError(err, entities.ErrSprintExists, entities.ErrReferenced); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("replace sprint: %w", err)
	}
	return &s, nil
}

// RemoveSprint deletes the row and returns its prior state, or nil when absent.
func (p *Postgres) RemoveSprint(ctx context.Context, id int64) (*entities.Sprint, error) {
	var s entities.Sprint
	err := p.db.QueryRow(ctx, deleteSprintQuery, id).Scan(&s.ID, &s.SprintCode, &s.SprintName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if cerr := constraintError(err, nil, entities.ErrReferenced); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("delete sprint: %w", err)
	}
	return &s, nil
}

func (p *Postgres) querySprints(ctx context.Context, query string, args ...any) ([]entities.Sprint, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sprints: %w", err)
	}
	defer rows.Close()

	sprints := make([]entities.Sprint, 0)
	for rows.Next() {
		var s entities.Sprint
		if err := rows.Scan(&s.ID, &s.SprintCode, &s.SprintName); err != nil {
			return nil, fmt.Errorf("scan sprint: %w", err)
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sprints: %w", err)
	}
	return sprints, nil
}
