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

// Challenge параметры соревнования, общие для всех участников.
type Challenge struct {
	Goal      int64
	StartDate string
	EndDate   string
}

type LeaderboardEntry struct {
	UserID          int64
	Name            string
	AvatarColor     string
	CreatedAt       time.Time
	LastActive      time.Time
	TotalEarnings   decimal.Decimal
	TotalDeals      int64
	DaysActive      int64
	Rank            int
	ProgressPercent float64
	Goal            int64
}

type Leaderboard struct {
	Entries   []LeaderboardEntry
	Challenge Challenge
}

type UserProfile struct {
	User            *domain.User
	TotalEarnings   decimal.Decimal
	TotalDeals      int64
	Rank            int64
	ProgressPercent float64
	Goal            int64
	Streak          int
	DailyEarnings   []domain.DailyActivity
	Achievements    []UnlockedBadge
}

type LeaderboardService struct {
	lbRepo    LeaderboardRepository
	userRepo  UserRepository
	dailyRepo DailyActivityRepository
	achRepo   AchievementRepository
	stats     StatsProvider
	challenge Challenge
}

func NewLeaderboardService(u uow.UOW, stats StatsProvider, challenge Challenge) (*LeaderboardService, error) {
	lbRepo, lbRepoErr := repoOf[LeaderboardRepository](u, repoargs.LeaderboardRepoName)
	if lbRepoErr != nil {
		return nil, lbRepoErr
	}
	userRepo, userRepoErr := repoOf[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	dailyRepo, dailyRepoErr := repoOf[DailyActivityRepository](u, repoargs.DailyActivityRepoName)
	if dailyRepoErr != nil {
		return nil, dailyRepoErr
	}
	achRepo, achRepoErr := repoOf[AchievementRepository](u, repoargs.AchievementRepoName)
	if achRepoErr != nil {
		return nil, achRepoErr
	}
	return &LeaderboardService{
		lbRepo:    lbRepo,
		userRepo:  userRepo,
		dailyRepo: dailyRepo,
		achRepo:   achRepo,
		stats:     stats,
		challenge: challenge,
	}, nil
}

// Get возвращает всех пользователей по убыванию суммы продаж. Ранг равен позиции в списке начиная с 1,
// при равенстве сумм раньше идет пользователь с меньшим id.
func (l *LeaderboardService) Get(ctx context.Context) (*Leaderboard, error) {
	standings, err := l.lbRepo.GetStandings(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(standings))
	for i, st := range standings {
		entries = append(entries, LeaderboardEntry{
			UserID:          st.UserID,
			Name:            st.Name,
			AvatarColor:     st.AvatarColor,
			CreatedAt:       st.CreatedAt,
			LastActive:      st.LastActive,
			TotalEarnings:   st.TotalEarnings,
			TotalDeals:      st.TotalDeals,
			DaysActive:      st.DaysActive,
			Rank:            i + 1,
			ProgressPercent: progressPercent(st.TotalEarnings, l.challenge.Goal),
			Goal:            l.challenge.Goal,
		})
	}
	return &Leaderboard{Entries: entries, Challenge: l.challenge}, nil
}

// UserProfile собирает профиль пользователя: ранг, прогресс, серию, дневную разбивку и значки.
func (l *LeaderboardService) UserProfile(ctx context.Context, userID int64) (*UserProfile, error) {
	user, userErr := l.userRepo.FindUserByID(ctx, userID)
	if userErr != nil {
		return nil, fmt.Errorf("getting profile of user %d: %w", userID, userErr)
	}

	stats, statsErr := l.stats.GetStats(ctx, userID)
	if statsErr != nil {
		return nil, fmt.Errorf("getting profile of user %d: %w", userID, statsErr)
	}

	above, rankErr := l.lbRepo.CountUsersAbove(ctx, stats.TotalEarnings)
	if rankErr != nil {
		return nil, fmt.Errorf("getting profile of user %d: %w", userID, rankErr)
	}

	days, daysErr := l.dailyRepo.GetByUserID(ctx, userID)
	if daysErr != nil {
		return nil, fmt.Errorf("getting profile of user %d: %w", userID, daysErr)
	}
	// репозиторий отдает дни по убыванию, в профиле нужен хронологический порядок
	daily := make([]domain.DailyActivity, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		daily = append(daily, days[i])
	}

	achievements, achErr := l.achRepo.GetByUserID(ctx, userID)
	if achErr != nil {
		return nil, fmt.Errorf("getting profile of user %d: %w", userID, achErr)
	}

	return &UserProfile{
		User:            user,
		TotalEarnings:   stats.TotalEarnings,
		TotalDeals:      stats.TotalDeals,
		Rank:            above + 1,
		ProgressPercent: progressPercent(stats.TotalEarnings, l.challenge.Goal),
		Goal:            l.challenge.Goal,
		Streak:          stats.StreakDays,
		DailyEarnings:   daily,
		Achievements:    toUnlockedBadges(achievements),
	}, nil
}

func (l *LeaderboardService) Challenge() Challenge {
	return l.challenge
}
