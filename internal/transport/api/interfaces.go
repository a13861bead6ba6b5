package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"net/http"

	"github.com/fsdevblog/salesboard/internal/badges"
	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type SaleServicer interface {
	Record(ctx context.Context, args service.RecordSaleArgs) (*service.RecordSaleResult, error)
	Delete(ctx context.Context, userID, saleID int64) error
	ListByUser(ctx context.Context, userID int64, limit uint) ([]domain.Sale, error)
}

type LeaderboardServicer interface {
	Get(ctx context.Context) (*service.Leaderboard, error)
	UserProfile(ctx context.Context, userID int64) (*service.UserProfile, error)
}

type FeedServicer interface {
	Recent(ctx context.Context, limit uint) ([]domain.FeedEntry, error)
	RecentMessages(ctx context.Context, limit uint) ([]domain.Message, error)
	PostMessage(ctx context.Context, args service.PostMessageArgs) (*domain.Message, error)
	Quote() string
}

type BadgeServicer interface {
	Catalog() []badges.Badge
	UserAchievements(ctx context.Context, userID int64) ([]service.UnlockedBadge, error)
}

type AdminServicer interface {
	Reset(ctx context.Context, secret string) error
}

// WSServer переводит HTTP запрос в websocket подписку на события.
type WSServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}
