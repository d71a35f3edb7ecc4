package domain

import (
	"context"

	"sprint-accomplishments/internal/entities"
)

// Users returns every user.
func (u *Usecase) Users(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.Users(ctx)
}

// UserByID returns a user or ErrUserNotFound.
func (u *Usecase) UserByID(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}
	return user, nil
}

// CreateUser inserts a new user.
func (u *Usecase) CreateUser(ctx context.Context, in entities.UserInsert) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.CreateUser(ctx, in)
}

// UpdateUser applies a partial patch; ErrUserNotFound when the id is unmatched.
func (u *Usecase) UpdateUser(ctx context.Context, id int64, patch entities.UserUpdate) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}
	return user, nil
}

// ReplaceUser upserts the full record under the path id.
func (u *Usecase) ReplaceUser(ctx context.Context, id int64, in entities.UserInsert) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ReplaceUser(ctx, id, in)
}

// RemoveUser deletes a user; ErrUserNotFound when the id is unmatched.
func (u *Usecase) RemoveUser(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.RemoveUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}
	return user, nil
}
