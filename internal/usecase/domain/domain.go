// Package domain contains application Usecases orchestrating domain logic.
package domain

import (
	"context"
	"math/rand"
	"time"

	"sprint-accomplishments/internal/repository"

	"go.uber.org/zap"
)

// Announcer posts a sprint-completion announcement to the chat platform.
type Announcer interface {
	Announce(ctx context.Context, userName, sprintName, template, gifURL string) error
}

// GifProvider fetches one random celebratory image URL; "" means unavailable.
type GifProvider interface {
	RandomCongratulatoryGif(ctx context.Context) (string, error)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	chat     Announcer
	gifs     GifProvider
	timeout  time.Duration
	randIntn func(int) int
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	chat Announcer,
	gifs GifProvider,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log,
		repo:     repo,
		chat:     chat,
		gifs:     gifs,
		timeout:  timeout,
		randIntn: rand.Intn,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
