package postgres

import (
	"context"
	"errors"
	"fmt"

	"sprint-accomplishments/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectTemplatesQuery    = `SELECT id, message_template FROM templates ORDER BY id`
	selectTemplateByIDQuery = `SELECT id, message_template FROM templates WHERE id = $1`
	insertTemplateQuery     = `INSERT INTO templates (message_template) VALUES ($1) RETURNING id, message_template`
	updateTemplateQuery     = `UPDATE templates SET message_template = COALESCE($2, message_template) WHERE id = $1 RETURNING id, message_template`
	replaceTemplateQuery    = `
INSERT INTO templates (id, message_template) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET message_template = EXCLUDED.message_template
RETURNING id, message_template`
	deleteTemplateQuery = `DELETE FROM templates WHERE id = $1 RETURNING id, message_template`
)

// Templates returns all templates in natural order.
func (p *Postgres) Templates(ctx context.Context) ([]entities.Template, error) {
	rows, err := p.db.Query(ctx, selectTemplatesQuery)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	templates := make([]entities.Template, 0)
	for rows.Next() {
		var t entities.Template
		if err := rows.Scan(&t.ID, &t.MessageTemplate); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return templates, nil
}

// TemplateByID returns the template or nil when no row matches.
func (p *Postgres) TemplateByID(ctx context.Context, id int64) (*entities.Template, error) {
	var t entities.Template
	err := p.db.QueryRow(ctx, selectTemplateByIDQuery, id).Scan(&t.ID, &t.MessageTemplate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

// CreateTemplate inserts a template and returns the stored row.
func (p *Postgres) CreateTemplate(ctx context.Context, in entities.TemplateInsert) (*entities.Template, error) {
	var t entities.Template
	err := p.db.QueryRow(ctx, insertTemplateQuery, in.MessageTemplate).Scan(&t.ID, &t.MessageTemplate)
	if err != nil {
		return nil, fmt.Errorf("insert template: %w", err)
	}

	p.log.Infow("template created", "template_id", t.ID)
	return &t, nil
}

// UpdateTemplate applies a partial patch; an empty patch leaves the row
// unchanged. Returns nil when no row matches.
func (p *Postgres) UpdateTemplate(ctx context.Context, id int64, patch entities.TemplateUpdate) (*entities.Template, error) {
	var t entities.Template
	err := p.db.QueryRow(ctx, updateTemplateQuery, id, patch.MessageTemplate).Scan(&t.ID, &t.MessageTemplate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update template: %w", err)
	}
	return &t, nil
}

// ReplaceTemplate upserts the full record under the given id.
func (p *Postgres) ReplaceTemplate(ctx context.Context, id int64, in entities.TemplateInsert) (*entities.Template, error) {
	var t entities.Template
	err := p.db.QueryRow(ctx, replaceTemplateQuery, id, in.MessageTemplate).Scan(&t.ID, &t.MessageTemplate)
	if err != nil {
		return nil, fmt.Errorf("replace template: %w", err)
	}
	return &t, nil
}

// RemoveTemplate deletes the row and returns its prior state, or nil when absent.
func (p *Postgres) RemoveTemplate(ctx context.Context, id int64) (*entities.Template, error) {
	var t entities.Template
	err := p.db.QueryRow(ctx, deleteTemplateQuery, id).Scan(&t.ID, &t.MessageTemplate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if cerr := constraintError(err, nil, entities.ErrReferenced); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("delete template: %w", err)
	}
	return &t, nil
}
