package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

type StatsService struct {
	saleRepo  SaleRepository
	dailyRepo DailyActivityRepository
	userRepo  UserRepository
	clock     Clock
}

func NewStatsService(u uow.UOW, clock Clock) (*StatsService, error) {
	saleRepo, saleRepoErr := repoOf[SaleRepository](u, repoargs.SaleRepoName)
	if saleRepoErr != nil {
		return nil, saleRepoErr
	}
	dailyRepo, dailyRepoErr := repoOf[DailyActivityRepository](u, repoargs.DailyActivityRepoName)
	if dailyRepoErr != nil {
		return nil, dailyRepoErr
	}
	userRepo, userRepoErr := repoOf[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &StatsService{
		saleRepo:  saleRepo,
		dailyRepo: dailyRepo,
		userRepo:  userRepo,
		clock:     clock,
	}, nil
}

// GetStats собирает сводку пользователя по текущему состоянию журнала продаж.
// Для пользователя без продаж возвращает нулевую сводку, для неизвестного пользователя ErrRecordNotFound.
func (s *StatsService) GetStats(ctx context.Context, userID int64) (*domain.AggregateStats, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("getting stats of user %d: %w", userID, err)
	}

	aggregate, aggErr := s.saleRepo.GetAggregate(ctx, userID)
	if aggErr != nil {
		return nil, fmt.Errorf("getting stats of user %d: %w", userID, aggErr)
	}
	days, daysErr := s.dailyRepo.GetByUserID(ctx, userID)
	if daysErr != nil {
		return nil, fmt.Errorf("getting stats of user %d: %w", userID, daysErr)
	}

	stats := buildStats(userID, aggregate, days, s.clock.Now())
	return &stats, nil
}

// DailyBreakdown возвращает дневные агрегаты пользователя по возрастанию даты.
func (s *StatsService) DailyBreakdown(ctx context.Context, userID int64) ([]domain.DailyActivity, error) {
	days, err := s.dailyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting daily breakdown of user %d: %w", userID, err)
	}
	slices.SortFunc(days, func(a, b domain.DailyActivity) int {
		return a.Date.Compare(b.Date)
	})
	return days, nil
}

// buildStats чистая функция сборки сводки. now задает опорную таймзону для "сегодня" и часа последней продажи.
func buildStats(
	userID int64,
	aggregate *repoargs.SalesAggregate,
	days []domain.DailyActivity,
	now time.Time,
) domain.AggregateStats {
	stats := domain.AggregateStats{
		UserID:        userID,
		TotalEarnings: decimal.Zero,
		TodayEarnings: decimal.Zero,
	}
	if aggregate != nil {
		stats.TotalDeals = aggregate.TotalDeals
		stats.TotalEarnings = aggregate.TotalEarnings
		stats.LargestDeal = aggregate.LargestDeal
		if aggregate.LastSaleAt != nil {
			hour := aggregate.LastSaleAt.In(now.Location()).Hour()
			stats.LastSaleHour = &hour
		}
	}

	today := civilDay(now)
	dates := make([]time.Time, 0, len(days))
	for _, day := range days {
		if day.DealsCount <= 0 {
			continue
		}
		dates = append(dates, day.Date)
		if civilDay(day.Date) == today {
			stats.TodayEarnings = stats.TodayEarnings.Add(day.Earnings)
		}
	}
	stats.StreakDays = CalculateStreak(dates, now)
	return stats
}
