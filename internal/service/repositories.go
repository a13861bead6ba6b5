package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	TouchLastActive(ctx context.Context, id int64, at time.Time) error
}

type SaleRepository interface {
	Create(ctx context.Context, args repoargs.CreateSale) (*domain.Sale, error)
	FindByIDAndUserID(ctx context.Context, saleID, userID int64) (*domain.Sale, error)
	Delete(ctx context.Context, saleID int64) error
	GetByUserID(ctx context.Context, userID int64, limit uint) ([]domain.Sale, error)
	GetAggregate(ctx context.Context, userID int64) (*repoargs.SalesAggregate, error)
}

type DailyActivityRepository interface {
	Apply(ctx context.Context, delta repoargs.DailyActivityDelta) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.DailyActivity, error)
}

type AchievementRepository interface {
	InsertIfAbsent(ctx context.Context, userID int64, badgeID string, at time.Time) (bool, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Achievement, error)
}

type FeedRepository interface {
	Append(ctx context.Context, args repoargs.CreateFeedEntry) (*domain.FeedEntry, error)
	GetRecent(ctx context.Context, limit uint) ([]domain.FeedEntry, error)
}

type MessageRepository interface {
	Create(ctx context.Context, args repoargs.CreateMessage) (*domain.Message, error)
	GetRecent(ctx context.Context, limit uint) ([]domain.Message, error)
}

type LeaderboardRepository interface {
	GetStandings(ctx context.Context) ([]repoargs.Standing, error)
	CountUsersAbove(ctx context.Context, total decimal.Decimal) (int64, error)
}

type AdminRepository interface {
	ResetAll(ctx context.Context) error
}

// repoOf достает репозиторий вне транзакции.
func repoOf[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	r, err := uow.GetRepositoryAs[T](u, uow.RepositoryName(name))
	if err != nil {
		return r, fmt.Errorf("resolving %s repository: %w", name, err)
	}
	return r, nil
}

// txRepoOf достает репозиторий, привязанный к транзакции tx.
func txRepoOf[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	r, err := uow.GetAs[T](tx, uow.RepositoryName(name))
	if err != nil {
		return r, fmt.Errorf("resolving %s repository in tx: %w", name, err)
	}
	return r, nil
}
