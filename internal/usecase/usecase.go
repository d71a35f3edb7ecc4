package usecase

import (
	"context"
	"time"

	"sprint-accomplishments/internal/repository"
	"sprint-accomplishments/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	TemplateUsecaseInterface
	SprintUsecaseInterface
	MessageUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	chat Announcer,
	gifs GifProvider,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, chat, gifs, timeout)
}
