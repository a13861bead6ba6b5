package service

import (
	"context"

	"github.com/fsdevblog/salesboard/internal/badges"
	"github.com/fsdevblog/salesboard/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// Broadcaster рассылает событие всем подключенным зрителям и возвращает число получателей.
type Broadcaster interface {
	Broadcast(event domain.Event) int
}

type StatsProvider interface {
	GetStats(ctx context.Context, userID int64) (*domain.AggregateStats, error)
}

type AchievementEvaluator interface {
	Evaluate(ctx context.Context, userID int64) ([]badges.Badge, error)
}
