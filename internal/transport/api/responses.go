package api

import (
	"time"

	"github.com/fsdevblog/salesboard/internal/badges"
	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/service"
)

// Денежные значения отдаются числами JSON, как их ждет фронтенд.

type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	AvatarColor string    `json:"avatar_color"`
	CreatedAt   time.Time `json:"created_at"`
	LastActive  time.Time `json:"last_active"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		AvatarColor: u.AvatarColor,
		CreatedAt:   u.CreatedAt,
		LastActive:  u.LastActive,
	}
}

type SaleResponse struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func newSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		Amount:      s.Amount.InexactFloat64(),
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

type UserStatsResponse struct {
	TotalEarnings float64 `json:"total_earnings"`
	TotalDeals    int64   `json:"total_deals"`
}

type RecordSaleResponse struct {
	Sale            SaleResponse          `json:"sale"`
	UserStats       UserStatsResponse     `json:"userStats"`
	NewAchievements []domain.BadgePayload `json:"newAchievements"`
}

func badgePayloads(list []badges.Badge) []domain.BadgePayload {
	res := make([]domain.BadgePayload, 0, len(list))
	for _, b := range list {
		res = append(res, b.Payload())
	}
	return res
}

type UnlockedBadgeResponse struct {
	domain.BadgePayload
	UnlockedAt time.Time `json:"unlocked_at"`
}

func newUnlockedBadgesResponse(list []service.UnlockedBadge) []UnlockedBadgeResponse {
	res := make([]UnlockedBadgeResponse, 0, len(list))
	for _, b := range list {
		res = append(res, UnlockedBadgeResponse{BadgePayload: b.Payload(), UnlockedAt: b.UnlockedAt})
	}
	return res
}

type LeaderboardEntryResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	AvatarColor     string    `json:"avatar_color"`
	CreatedAt       time.Time `json:"created_at"`
	LastActive      time.Time `json:"last_active"`
	TotalEarnings   float64   `json:"total_earnings"`
	TotalDeals      int64     `json:"total_deals"`
	DaysActive      int64     `json:"days_active"`
	Rank            int       `json:"rank"`
	ProgressPercent float64   `json:"progress_percent"`
	Goal            int64     `json:"goal"`
}

type ChallengeResponse struct {
	Goal      int64  `json:"goal"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntryResponse `json:"leaderboard"`
	Challenge   ChallengeResponse          `json:"challenge"`
}

func newLeaderboardResponse(lb *service.Leaderboard) LeaderboardResponse {
	entries := make([]LeaderboardEntryResponse, 0, len(lb.Entries))
	for _, e := range lb.Entries {
		entries = append(entries, LeaderboardEntryResponse{
			ID:              e.UserID,
			Name:            e.Name,
			AvatarColor:     e.AvatarColor,
			CreatedAt:       e.CreatedAt,
			LastActive:      e.LastActive,
			TotalEarnings:   e.TotalEarnings.InexactFloat64(),
			TotalDeals:      e.TotalDeals,
			DaysActive:      e.DaysActive,
			Rank:            e.Rank,
			ProgressPercent: e.ProgressPercent,
			Goal:            e.Goal,
		})
	}
	return LeaderboardResponse{
		Leaderboard: entries,
		Challenge: ChallengeResponse{
			Goal:      lb.Challenge.Goal,
			StartDate: lb.Challenge.StartDate,
			EndDate:   lb.Challenge.EndDate,
		},
	}
}

type ProfileUserResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	AvatarColor     string    `json:"avatar_color"`
	CreatedAt       time.Time `json:"created_at"`
	TotalEarnings   float64   `json:"total_earnings"`
	TotalDeals      int64     `json:"total_deals"`
	Rank            int64     `json:"rank"`
	ProgressPercent float64   `json:"progress_percent"`
	Goal            int64     `json:"goal"`
	Streak          int       `json:"streak"`
}

type DailyEarningsResponse struct {
	Date     string  `json:"date"`
	Earnings float64 `json:"earnings"`
	Deals    int64   `json:"deals"`
}

type ProfileResponse struct {
	User          ProfileUserResponse     `json:"user"`
	DailyEarnings []DailyEarningsResponse `json:"dailyEarnings"`
	Achievements  []UnlockedBadgeResponse `json:"achievements"`
}

func newProfileResponse(p *service.UserProfile) ProfileResponse {
	daily := make([]DailyEarningsResponse, 0, len(p.DailyEarnings))
	for _, d := range p.DailyEarnings {
		daily = append(daily, DailyEarningsResponse{
			Date:     d.Date.Format(time.DateOnly),
			Earnings: d.Earnings.InexactFloat64(),
			Deals:    d.DealsCount,
		})
	}
	return ProfileResponse{
		User: ProfileUserResponse{
			ID:              p.User.ID,
			Name:            p.User.Name,
			AvatarColor:     p.User.AvatarColor,
			CreatedAt:       p.User.CreatedAt,
			TotalEarnings:   p.TotalEarnings.InexactFloat64(),
			TotalDeals:      p.TotalDeals,
			Rank:            p.Rank,
			ProgressPercent: p.ProgressPercent,
			Goal:            p.Goal,
			Streak:          p.Streak,
		},
		DailyEarnings: daily,
		Achievements:  newUnlockedBadgesResponse(p.Achievements),
	}
}

type FeedEntryResponse struct {
	ID          int64                `json:"id"`
	Type        domain.FeedEntryType `json:"type"`
	Message     string               `json:"message"`
	Amount      *float64             `json:"amount"`
	CreatedAt   time.Time            `json:"created_at"`
	UserID      int64                `json:"user_id"`
	UserName    string               `json:"user_name"`
	AvatarColor string               `json:"avatar_color"`
}

func newFeedResponse(entries []domain.FeedEntry) []FeedEntryResponse {
	res := make([]FeedEntryResponse, 0, len(entries))
	for _, e := range entries {
		item := FeedEntryResponse{
			ID:          e.ID,
			Type:        e.Type,
			Message:     e.Message,
			CreatedAt:   e.CreatedAt,
			UserID:      e.UserID,
			UserName:    e.UserName,
			AvatarColor: e.AvatarColor,
		}
		if e.Amount.Valid {
			amount := e.Amount.Decimal.InexactFloat64()
			item.Amount = &amount
		}
		res = append(res, item)
	}
	return res
}

func newMessagesResponse(messages []domain.Message) []domain.MessagePayload {
	res := make([]domain.MessagePayload, 0, len(messages))
	for _, m := range messages {
		res = append(res, domain.NewMessagePayload(m))
	}
	return res
}
