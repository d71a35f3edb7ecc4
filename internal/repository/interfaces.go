// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"sprint-accomplishments/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user persistence operations. Lookup methods return
// (nil, nil) when no row matches.
type UserInterface interface {
	Users(ctx context.Context) ([]entities.User, error)
	UserByID(ctx context.Context, id int64) (*entities.User, error)
	FindUsers(ctx context.Context, filter entities.UserFilter) ([]entities.User, error)
	CreateUser(ctx context.Context, in entities.UserInsert) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserUpdate) (*entities.User, error)
	ReplaceUser(ctx context.Context, id int64, in entities.UserInsert) (*entities.User, error)
	RemoveUser(ctx context.Context, id int64) (*entities.User, error)
}

// TemplateInterface exposes template persistence operations.
type TemplateInterface interface {
	Templates(ctx context.Context) ([]entities.Template, error)
	TemplateByID(ctx context.Context, id int64) (*entities.Template, error)
	CreateTemplate(ctx context.Context, in entities.TemplateInsert) (*entities.Template, error)
	UpdateTemplate(ctx context.Context, id int64, patch entities.TemplateUpdate) (*entities.Template, error)
	ReplaceTemplate(ctx context.Context, id int64, in entities.TemplateInsert) (*entities.Template, error)
	RemoveTemplate(ctx context.Context, id int64) (*entities.Template, error)
}

// SprintInterface exposes sprint persistence operations.
type SprintInterface interface {
	Sprints(ctx context.Context) ([]entities.Sprint, error)
	SprintByID(ctx context.Context, id int64) (*entities.Sprint, error)
	FindSprints(ctx context.Context, filter entities.SprintFilter) ([]entities.Sprint, error)
	CreateSprint(ctx context.Context, in entities.SprintInsert) (*entities.Sprint, error)
	UpdateSprint(ctx context.Context, id int64, patch entities.SprintUpdate) (*entities.Sprint, error)
	ReplaceSprint(ctx context.Context, id int64, in entities.SprintInsert) (*entities.Sprint, error)
	RemoveSprint(ctx context.Context, id int64) (*entities.Sprint, error)
}

// MessageInterface exposes message persistence operations. Messages are
// create-and-read only.
type MessageInterface interface {
	Messages(ctx context.Context) ([]entities.Message, error)
	MessageByID(ctx context.Context, id int64) (*entities.Message, error)
	FindMessages(ctx context.Context, filter entities.MessageFilter) ([]entities.Message, error)
	CreateMessage(ctx context.Context, in entities.MessageInsert) (*entities.Message, error)
}
