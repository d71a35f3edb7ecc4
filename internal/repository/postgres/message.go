package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sprint-accomplishments/internal/entities"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectMessagesQuery = `SELECT id, user_id, template_id, sprint_id, "timestamp" FROM messages ORDER BY id`

	selectMessageByIDQuery = `SELECT id, user_id, template_id, sprint_id, "timestamp" FROM messages WHERE id = $1`

	selectMessagesByUserQuery = `SELECT id, user_id, template_id, sprint_id, "timestamp" FROM messages WHERE user_id = $1 ORDER BY id`

	selectMessagesBySprintQuery = `SELECT id, user_id, template_id, sprint_id, "timestamp" FROM messages WHERE sprint_id = $1 ORDER BY id`

	insertMessageQuery = `
INSERT INTO messages (user_id, template_id, sprint_id)
VALUES ($1, $2, $3)
RETURNING id, user_id, template_id, sprint_id, "timestamp"`
)

// Messages returns all messages in natural order.
func (p *Postgres) Messages(ctx context.Context) ([]entities.Message, error) {
	return p.queryMessages(ctx, selectMessagesQuery)
}

// MessageByID returns the message or nil when no row matches.
func (p *Postgres) MessageByID(ctx context.Context, id int64) (*entities.Message, error) {
	var m entities.Message
	err := p.db.QueryRow(ctx, selectMessageByIDQuery, id).
		Scan(&m.ID, &m.UserID, &m.TemplateID, &m.SprintID, &m.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get message: %w", err)
	}
	return &m, nil
}

// FindMessages returns messages matching the equality filter.
func (p *Postgres) FindMessages(ctx context.Context, filter entities.MessageFilter) ([]entities.Message, error) {
	switch {
	case filter.UserID != nil:
		return p.queryMessages(ctx, selectMessagesByUserQuery, *filter.UserID)
	case filter.SprintID != nil:
		return p.queryMessages(ctx, selectMessagesBySprintQuery, *filter.SprintID)
	default:
		return p.queryMessages(ctx, selectMessagesQuery)
	}
}

// CreateMessage inserts a message row with resolved foreign keys. A missing
// referenced row surfaces as the matching not-found sentinel.
func (p *Postgres) CreateMessage(ctx context.Context, in entities.MessageInsert) (*entities.Message, error) {
	var m entities.Message
	err := p.db.QueryRow(ctx, insertMessageQuery, in.UserID, in.TemplateID, in.SprintID).
		Scan(&m.ID, &m.UserID, &m.TemplateID, &m.SprintID, &m.Timestamp)
	if err != nil {
		if cerr := messageConstraintError(err); cerr != nil {
			return nil, cerr
		}
		p.log.Errorw("failed to insert message", "error", err, "user_id", in.UserID, "sprint_id", in.SprintID)
		return nil, fmt.Errorf("insert message: %w", err)
	}

	p.log.Infow("message created", "message_id", m.ID, "user_id", m.UserID, "sprint_id", m.SprintID)
	return &m, nil
}

func messageConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.ForeignKeyViolation {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "user"):
		return entities.ErrUserNotFound
	case strings.Contains(pgErr.ConstraintName, "template"):
		return entities.ErrTemplateNotFound
	case strings.Contains(pgErr.ConstraintName, "sprint"):
		return entities.ErrSprintNotFound
	}
	return entities.ErrReferenced
}

func (p *Postgres) queryMessages(ctx context.Context, query string, args ...any) ([]entities.Message, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.Message, 0)
	for rows.Next() {
		var m entities.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.TemplateID, &m.SprintID, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return messages, nil
}
