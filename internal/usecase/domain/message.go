package domain

import (
	"context"
	"fmt"

	"sprint-accomplishments/internal/entities"
)

// Messages returns every announcement record.
func (u *Usecase) Messages(ctx context.Context) ([]entities.Message, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.Messages(ctx)
}

// MessagesByUserName resolves the user by name and lists their messages.
func (u *Usecase) MessagesByUserName(ctx context.Context, userName string) ([]entities.Message, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.userByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	return u.repo.FindMessages(ctx, entities.MessageFilter{UserID: &user.ID})
}

// MessagesBySprintCode resolves the sprint by code and lists its messages.
func (u *Usecase) MessagesBySprintCode(ctx context.Context, sprintCode string) ([]entities.Message, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sprint, err := u.sprintByCode(ctx, sprintCode)
	if err != nil {
		return nil, err
	}
	return u.repo.FindMessages(ctx, entities.MessageFilter{SprintID: &sprint.ID})
}

// MessagesByUserID lists messages referencing the given user id.
func (u *Usecase) MessagesByUserID(ctx context.Context, userID int64) ([]entities.Message, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.FindMessages(ctx, entities.MessageFilter{UserID: &userID})
}

// MessagesBySprintID lists messages referencing the given sprint id.
func (u *Usecase) MessagesBySprintID(ctx context.Context, sprintID int64) ([]entities.Message, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.FindMessages(ctx, entities.MessageFilter{SprintID: &sprintID})
}

// CreateMessage runs the announcement workflow: resolve user and sprint,
// pick a random template, fetch a GIF, notify the chat platform and persist
// the row. Persist is last, so any upstream failure leaves no record; there
// is no compensation if persisting fails after a successful notification.
func (u *Usecase) CreateMessage(ctx context.Context, userName, sprintCode string) (*entities.Message, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userName == "" || sprintCode == "" {
		return nil, fmt.Errorf("%w: missing required fields", entities.ErrInvalidArgument)
	}

	user, err := u.userByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	sprint, err := u.sprintByCode(ctx, sprintCode)
	if err != nil {
		return nil, err
	}

	templates, err := u.repo.Templates(ctx)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, entities.ErrTemplateNotFound
	}
	template := templates[u.randIntn(len(templates))]

	gifURL, err := u.gifs.RandomCongratulatoryGif(ctx)
	if err != nil || gifURL == "" {
		u.log.Errorw("gif provider unavailable", "error", err)
		return nil, fmt.Errorf("%w: gif provider", entities.ErrDependencyUnavailable)
	}

	if err := u.chat.Announce(ctx, user.UserName, sprint.SprintName, template.MessageTemplate, gifURL); err != nil {
		u.log.Errorw("chat announcement failed", "error", err, "user_name", user.UserName)
		return nil, fmt.Errorf("%w: chat platform", entities.ErrDependencyUnavailable)
	}

	msg, err := u.repo.CreateMessage(ctx, entities.MessageInsert{
		UserID:     user.ID,
		TemplateID: template.ID,
		SprintID:   sprint.ID,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("accomplishment recorded", "message_id", msg.ID, "user_name", user.UserName, "sprint_code", sprint.SprintCode)
	return msg, nil
}

func (u *Usecase) userByName(ctx context.Context, userName string) (*entities.User, error) {
	users, err := u.repo.FindUsers(ctx, entities.UserFilter{UserName: &userName})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, entities.ErrUserNotFound
	}
	return &users[0], nil
}

func (u *Usecase) sprintByCode(ctx context.Context, sprintCode string) (*entities.Sprint, error) {
	sprints, err := u.repo.FindSprints(ctx, entities.SprintFilter{SprintCode: &sprintCode})
	if err != nil {
		return nil, err
	}
	if len(sprints) == 0 {
		return nil, entities.ErrSprintNotFound
	}
	return &sprints[0], nil
}
