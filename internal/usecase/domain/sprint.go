package domain

import (
	"context"

	"sprint-accomplishments/internal/entities"
)

// Sprints returns every sprint.
func (u *Usecase) Sprints(ctx context.Context) ([]entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.Sprints(ctx)
}

// SprintByID returns a sprint or ErrSprintNotFound.
func (u *Usecase) SprintByID(ctx context.Context, id int64) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sprint, err := u.repo.SprintByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sprint == nil {
		return nil, entities.ErrSprintNotFound
	}
	return sprint, nil
}

// CreateSprint inserts a new sprint.
func (u *Usecase) CreateSprint(ctx context.Context, in entities.SprintInsert) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.CreateSprint(ctx, in)
}

// UpdateSprint applies a partial patch; ErrSprintNotFound when unmatched.
func (u *Usecase) UpdateSprint(ctx context.Context, id int64, patch entities.SprintUpdate) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sprint, err := u.repo.UpdateSprint(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if sprint == nil {
		return nil, entities.ErrSprintNotFound
	}
	return sprint, nil
}

// ReplaceSprint upserts the full record under the path id.
func (u *Usecase) ReplaceSprint(ctx context.Context, id int64, in entities.SprintInsert) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ReplaceSprint(ctx, id, in)
}

// RemoveSprint deletes a sprint; ErrSprintNotFound when unmatched.
func (u *Usecase) RemoveSprint(ctx context.Context, id int64) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sprint, err := u.repo.RemoveSprint(ctx, id)
	if err != nil {
		return nil, err
	}
	if sprint == nil {
		return nil, entities.ErrSprintNotFound
	}
	return sprint, nil
}
