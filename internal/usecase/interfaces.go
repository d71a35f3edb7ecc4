package usecase

import (
	"context"

	"sprint-accomplishments/internal/entities"
)

// UserUsecaseInterface abstracts user operations for the delivery layer.
// Lookups on a missing id return entities.ErrUserNotFound.
type UserUsecaseInterface interface {
	Users(ctx context.Context) ([]entities.User, error)
	UserByID(ctx context.Context, id int64) (*entities.User, error)
	CreateUser(ctx context.Context, in entities.UserInsert) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserUpdate) (*entities.User, error)
	ReplaceUser(ctx context.Context, id int64, in entities.UserInsert) (*entities.User, error)
	RemoveUser(ctx context.Context, id int64) (*entities.User, error)
}

// TemplateUsecaseInterface abstracts template operations.
type TemplateUsecaseInterface interface {
	Templates(ctx context.Context) ([]entities.Template, error)
	TemplateByID(ctx context.Context, id int64) (*entities.Template, error)
	CreateTemplate(ctx context.Context, in entities.TemplateInsert) (*entities.Template, error)
	UpdateTemplate(ctx context.Context, id int64, patch entities.TemplateUpdate) (*entities.Template, error)
	ReplaceTemplate(ctx context.Context, id int64, in entities.TemplateInsert) (*entities.Template, error)
	RemoveTemplate(ctx context.Context, id int64) (*entities.Template, error)
}

// SprintUsecaseInterface abstracts sprint operations.
type SprintUsecaseInterface interface {
	Sprints(ctx context.Context) ([]entities.Sprint, error)
	SprintByID(ctx context.Context, id int64) (*entities.Sprint, error)
	CreateSprint(ctx context.Context, in entities.SprintInsert) (*entities.Sprint, error)
	UpdateSprint(ctx context.Context, id int64, patch entities.SprintUpdate) (*entities.Sprint, error)
	ReplaceSprint(ctx context.Context, id int64, in entities.SprintInsert) (*entities.Sprint, error)
	RemoveSprint(ctx context.Context, id int64) (*entities.Sprint, error)
}

// MessageUsecaseInterface abstracts announcement operations, including the
// message-creation workflow.
type MessageUsecaseInterface interface {
	Messages(ctx context.Context) ([]entities.Message, error)
	MessagesByUserName(ctx context.Context, userName string) ([]entities.Message, error)
	MessagesBySprintCode(ctx context.Context, sprintCode string) ([]entities.Message, error)
	MessagesByUserID(ctx context.Context, userID int64) ([]entities.Message, error)
	MessagesBySprintID(ctx context.Context, sprintID int64) ([]entities.Message, error)
	CreateMessage(ctx context.Context, userName, sprintCode string) (*entities.Message, error)
}

// Announcer posts a sprint-completion announcement to the chat platform.
type Announcer interface {
	Announce(ctx context.Context, userName, sprintName, template, gifURL string) error
}

// GifProvider fetches one random celebratory image URL; "" means unavailable.
type GifProvider interface {
	RandomCongratulatoryGif(ctx context.Context) (string, error)
}
