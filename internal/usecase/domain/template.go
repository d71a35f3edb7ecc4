package domain

import (
	"context"

	"sprint-accomplishments/internal/entities"
)

// Templates returns every template.
func (u *Usecase) Templates(ctx context.Context) ([]entities.Template, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.Templates(ctx)
}

// TemplateByID returns a template or ErrTemplateNotFound.
func (u *Usecase) TemplateByID(ctx context.Context, id int64) (*entities.Template, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tmpl, err := u.repo.TemplateByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, entities.ErrTemplateNotFound
	}
	return tmpl, nil
}

// CreateTemplate inserts a new template.
func (u *Usecase) CreateTemplate(ctx context.Context, in entities.TemplateInsert) (*entities.Template, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.CreateTemplate(ctx, in)
}

// UpdateTemplate applies a partial patch; ErrTemplateNotFound when unmatched.
func (u *Usecase) UpdateTemplate(ctx context.Context, id int64, patch entities.TemplateUpdate) (*entities.Template, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tmpl, err := u.repo.UpdateTemplate(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, entities.ErrTemplateNotFound
	}
	return tmpl, nil
}

// ReplaceTemplate upserts the full record under the path id.
func (u *Usecase) ReplaceTemplate(ctx context.Context, id int64, in entities.TemplateInsert) (*entities.Template, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ReplaceTemplate(ctx, id, in)
}

// RemoveTemplate deletes a template; ErrTemplateNotFound when unmatched.
func (u *Usecase) RemoveTemplate(ctx context.Context, id int64) (*entities.Template, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tmpl, err := u.repo.RemoveTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, entities.ErrTemplateNotFound
	}
	return tmpl, nil
}
