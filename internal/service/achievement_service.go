package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/salesboard/internal/badges"
	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

// UnlockedBadge значок каталога вместе с моментом разблокировки.
type UnlockedBadge struct {
	badges.Badge
	UnlockedAt time.Time
}

type AchievementService struct {
	uow      uow.UOW
	stats    StatsProvider
	achRepo  AchievementRepository
	userRepo UserRepository
	clock    Clock
}

func NewAchievementService(u uow.UOW, stats StatsProvider, clock Clock) (*AchievementService, error) {
	achRepo, achRepoErr := repoOf[AchievementRepository](u, repoargs.AchievementRepoName)
	if achRepoErr != nil {
		return nil, achRepoErr
	}
	userRepo, userRepoErr := repoOf[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &AchievementService{
		uow:      u,
		stats:    stats,
		achRepo:  achRepo,
		userRepo: userRepo,
		clock:    clock,
	}, nil
}

// Evaluate проверяет условия каталога по свежей статистике пользователя и разблокирует подходящие значки.
// Возвращает только значки, разблокированные именно этим вызовом, в порядке каталога. Повторный вызов без
// новых продаж вернет пустой список. При гонке двух вызовов каждый значок достанется ровно одному из них,
// это гарантирует уникальный индекс (user_id, badge_id).
func (a *AchievementService) Evaluate(ctx context.Context, userID int64) ([]badges.Badge, error) {
	user, userErr := a.userRepo.FindUserByID(ctx, userID)
	if userErr != nil {
		return nil, fmt.Errorf("evaluating achievements of user %d: %w", userID, userErr)
	}

	stats, statsErr := a.stats.GetStats(ctx, userID)
	if statsErr != nil {
		return nil, fmt.Errorf("evaluating achievements of user %d: %w", userID, statsErr)
	}

	candidates, candidatesErr := a.candidates(ctx, userID, badges.Evaluate(*stats))
	if candidatesErr != nil {
		return nil, fmt.Errorf("evaluating achievements of user %d: %w", userID, candidatesErr)
	}
	if len(candidates) == 0 {
		return []badges.Badge{}, nil
	}

	now := a.clock.Now()
	var unlocked []badges.Badge
	txErr := a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		unlocked = make([]badges.Badge, 0, len(candidates))

		achRepo, achRepoErr := txRepoOf[AchievementRepository](tx, repoargs.AchievementRepoName)
		if achRepoErr != nil {
			return achRepoErr
		}
		feedRepo, feedRepoErr := txRepoOf[FeedRepository](tx, repoargs.FeedRepoName)
		if feedRepoErr != nil {
			return feedRepoErr
		}

		for _, badge := range candidates {
			inserted, insertErr := achRepo.InsertIfAbsent(c, userID, badge.ID, now)
			if insertErr != nil {
				return insertErr //nolint:wrapcheck
			}
			if !inserted {
				continue
			}
			if _, feedErr := feedRepo.Append(c, repoargs.CreateFeedEntry{
				UserID:  userID,
				Type:    domain.FeedEntryAchievement,
				Message: fmt.Sprintf("%s unlocked \"%s\" %s", user.Name, badge.Name, badge.Emoji),
			}); feedErr != nil {
				return feedErr //nolint:wrapcheck
			}
			unlocked = append(unlocked, badge)
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("evaluating achievements of user %d: %w", userID, txErr)
	}
	return unlocked, nil
}

// UserAchievements возвращает разблокированные значки пользователя в порядке получения.
func (a *AchievementService) UserAchievements(ctx context.Context, userID int64) ([]UnlockedBadge, error) {
	achievements, err := a.achRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting achievements of user %d: %w", userID, err)
	}
	return toUnlockedBadges(achievements), nil
}

// Catalog возвращает весь каталог значков.
func (a *AchievementService) Catalog() []badges.Badge {
	return badges.All()
}

// candidates отсеивает уже полученные значки. Это лишь оптимизация: окончательное решение принимает вставка.
func (a *AchievementService) candidates(
	ctx context.Context,
	userID int64,
	eligible []badges.Badge,
) ([]badges.Badge, error) {
	if len(eligible) == 0 {
		return nil, nil
	}
	existing, err := a.achRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	owned := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		owned[e.BadgeID] = struct{}{}
	}

	res := make([]badges.Badge, 0, len(eligible))
	for _, b := range eligible {
		if _, ok := owned[b.ID]; !ok {
			res = append(res, b)
		}
	}
	return res, nil
}

// toUnlockedBadges сопоставляет записи с каталогом. Записи с неизвестным каталогу id пропускаются.
func toUnlockedBadges(achievements []domain.Achievement) []UnlockedBadge {
	res := make([]UnlockedBadge, 0, len(achievements))
	for _, a := range achievements {
		badge, ok := badges.Lookup(a.BadgeID)
		if !ok {
			continue
		}
		res = append(res, UnlockedBadge{Badge: badge, UnlockedAt: a.UnlockedAt})
	}
	return res
}
