package postgres

import (
	"context"
	"errors"
	"fmt"

	"sprint-accomplishments/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectUsersQuery       = `SELECT id, user_name FROM users ORDER BY id`
	selectUserByIDQuery    = `SELECT id, user_name FROM users WHERE id = $1`
	selectUsersByNameQuery = `SELECT id, user_name FROM users WHERE user_name = $1 ORDER BY id`
	insertUserQuery        = `INSERT INTO users (user_name) VALUES ($1) RETURNING id, user_name`
	updateUserQuery        = `UPDATE users SET user_name = COALESCE($2, user_name) WHERE id = $1 RETURNING id, user_name`
	replaceUserQuery       = `
INSERT INTO users (id, user_name) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET user_name = EXCLUDED.user_name
RETURNING id, user_name`
	deleteUserQuery = `DELETE FROM users WHERE id = $1 RETURNING id, user_name`
)

// Users returns all users in natural order.
func (p *Postgres) Users(ctx context.Context) ([]entities.User, error) {
	return p.queryUsers(ctx, selectUsersQuery)
}

// UserByID returns the user or nil when no row matches.
func (p *Postgres) UserByID(ctx context.Context, id int64) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByIDQuery, id).Scan(&u.ID, &u.UserName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// FindUsers returns users matching the equality filter.
func (p *Postgres) FindUsers(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	if filter.UserName != nil {
		return p.queryUsers(ctx, selectUsersByNameQuery, *filter.UserName)
	}
	return p.queryUsers(ctx, selectUsersQuery)
}

// CreateUser inserts a user and returns the stored row.
func (p *Postgres) CreateUser(ctx context.Context, in entities.UserInsert) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, insertUserQuery, in.UserName).Scan(&u.ID, &u.UserName)
	if err != nil {
		if cerr := constraintError(err, entities.ErrUserExists, entities.ErrReferenced); cerr != nil {
			return nil, cerr
		}
		p.log.Errorw("failed to insert user", "error", err, "user_name", in.UserName)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID, "user_name", u.UserName)
	return &u, nil
}

// UpdateUser applies a partial patch in one statement; an empty patch leaves
// the row unchanged. Returns nil when no row matches.
func (p *Postgres) UpdateUser(ctx context.Context, id int64, patch entities.UserUpdate) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, updateUserQuery, id, patch.UserName).Scan(&u.ID, &u.UserName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if cerr := constraintError(err, entities.ErrUserExists, entities.ErrReferenced); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

// ReplaceUser upserts the full record under the given id.
func (p *Postgres) ReplaceUser(ctx context.Context, id int64, in entities.UserInsert) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, replaceUserQuery, id, in.UserName).Scan(&u.ID, &u.UserName)
	if err != nil {
		if cerr := constraintError(err, entities.ErrUserExists, entities.ErrReferenced); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("replace user: %w", err)
	}
	return &u, nil
}

// RemoveUser deletes the row and returns its prior state, or nil when absent.
func (p *Postgres) RemoveUser(ctx context.Context, id int64) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, deleteUserQuery, id).Scan(&u.ID, &u.UserName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if cerr := constraintError(err, entities.ErrUserExists, entities.ErrReferenced); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return &u, nil
}

func (p *Postgres) queryUsers(ctx context.Context, query string, args ...any) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.UserName); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
