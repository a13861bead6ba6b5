package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/salesboard/internal/badges"
	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

const (
	DefaultSaleDescription = "Sale"
	DefaultSalesLimit      = 10
	MaxAmountScale         = 2
)

// MaxSaleAmount наибольшая сумма, которую вмещает колонка sales.amount NUMERIC(14, 2).
var MaxSaleAmount = decimal.RequireFromString("999999999999.99")

type SaleService struct {
	uow         uow.UOW
	saleRepo    SaleRepository
	evaluator   AchievementEvaluator
	broadcaster Broadcaster
	clock       Clock
	l           *logrus.Entry
}

func NewSaleService(
	u uow.UOW,
	evaluator AchievementEvaluator,
	broadcaster Broadcaster,
	clock Clock,
	l *logrus.Logger,
) (*SaleService, error) {
	saleRepo, saleRepoErr := repoOf[SaleRepository](u, repoargs.SaleRepoName)
	if saleRepoErr != nil {
		return nil, saleRepoErr
	}
	return &SaleService{
		uow:         u,
		saleRepo:    saleRepo,
		evaluator:   evaluator,
		broadcaster: broadcaster,
		clock:       clock,
		l:           l.WithField("service", "sales"),
	}, nil
}

type RecordSaleArgs struct {
	UserID      int64
	Amount      decimal.Decimal
	Description string
}

type RecordSaleResult struct {
	Sale            *domain.Sale
	UserName        string
	TotalEarnings   decimal.Decimal
	TotalDeals      int64
	NewAchievements []badges.Badge
}

// Record записывает продажу. Продажа, дневной агрегат, запись ленты и last_active фиксируются одной
// транзакцией. Оценка достижений выполняется после коммита, ее ошибка не отменяет продажу.
func (s *SaleService) Record(ctx context.Context, args RecordSaleArgs) (*RecordSaleResult, error) {
	amount, amountErr := validateAmount(args.Amount)
	if amountErr != nil {
		return nil, amountErr
	}
	description := strings.TrimSpace(args.Description)
	if description == "" {
		description = DefaultSaleDescription
	}

	now := s.clock.Now()
	var result RecordSaleResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := txRepoOf[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr
		}
		saleRepo, saleRepoErr := txRepoOf[SaleRepository](tx, repoargs.SaleRepoName)
		if saleRepoErr != nil {
			return saleRepoErr
		}
		dailyRepo, dailyRepoErr := txRepoOf[DailyActivityRepository](tx, repoargs.DailyActivityRepoName)
		if dailyRepoErr != nil {
			return dailyRepoErr
		}
		feedRepo, feedRepoErr := txRepoOf[FeedRepository](tx, repoargs.FeedRepoName)
		if feedRepoErr != nil {
			return feedRepoErr
		}

		user, userErr := userRepo.FindUserByID(c, args.UserID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		sale, saleErr := saleRepo.Create(c, repoargs.CreateSale{
			UserID:      user.ID,
			Amount:      amount,
			Description: description,
			CreatedAt:   now,
		})
		if saleErr != nil {
			return saleErr //nolint:wrapcheck
		}

		if err := dailyRepo.Apply(c, repoargs.DailyActivityDelta{
			UserID:   user.ID,
			Date:     now,
			Earnings: amount,
			Deals:    1,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := feedRepo.Append(c, repoargs.CreateFeedEntry{
			UserID:  user.ID,
			Type:    domain.FeedEntrySale,
			Message: fmt.Sprintf("%s closed a $%s deal! 💰", user.Name, formatAmount(amount)),
			Amount:  decimal.NewNullDecimal(amount),
		}); err != nil {
			return err //nolint:wrapcheck
		}

		if err := userRepo.TouchLastActive(c, user.ID, now); err != nil {
			return err //nolint:wrapcheck
		}

		aggregate, aggErr := saleRepo.GetAggregate(c, user.ID)
		if aggErr != nil {
			return aggErr //nolint:wrapcheck
		}

		result = RecordSaleResult{
			Sale:          sale,
			UserName:      user.Name,
			TotalEarnings: aggregate.TotalEarnings,
			TotalDeals:    aggregate.TotalDeals,
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("recording sale of user %d: %w", args.UserID, txErr)
	}

	unlocked, evalErr := s.evaluator.Evaluate(ctx, args.UserID)
	if evalErr != nil {
		s.l.WithError(evalErr).WithField("user_id", args.UserID).Error("achievement evaluation failed")
		unlocked = []badges.Badge{}
	}
	result.NewAchievements = unlocked

	s.broadcastRecorded(&result)
	return &result, nil
}

// Delete удаляет продажу владельца и откатывает ее вклад в дневной агрегат. Уже полученные значки
// не отзываются. Чужая или несуществующая продажа дает ErrRecordNotFound.
func (s *SaleService) Delete(ctx context.Context, userID, saleID int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		saleRepo, saleRepoErr := txRepoOf[SaleRepository](tx, repoargs.SaleRepoName)
		if saleRepoErr != nil {
			return saleRepoErr
		}
		dailyRepo, dailyRepoErr := txRepoOf[DailyActivityRepository](tx, repoargs.DailyActivityRepoName)
		if dailyRepoErr != nil {
			return dailyRepoErr
		}

		sale, findErr := saleRepo.FindByIDAndUserID(c, saleID, userID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if err := saleRepo.Delete(c, sale.ID); err != nil {
			return err //nolint:wrapcheck
		}
		return dailyRepo.Apply(c, repoargs.DailyActivityDelta{ //nolint:wrapcheck
			UserID:   userID,
			Date:     sale.CreatedAt.In(s.clock.Location()),
			Earnings: sale.Amount.Neg(),
			Deals:    -1,
		})
	})
	if txErr != nil {
		return fmt.Errorf("deleting sale %d of user %d: %w", saleID, userID, txErr)
	}

	s.broadcaster.Broadcast(domain.Event{
		Type:    domain.EventSaleDeleted,
		Payload: domain.SaleDeletedPayload{UserID: userID, SaleID: saleID},
	})
	return nil
}

// ListByUser возвращает последние продажи пользователя, новые первыми.
func (s *SaleService) ListByUser(ctx context.Context, userID int64, limit uint) ([]domain.Sale, error) {
	if limit == 0 {
		limit = DefaultSalesLimit
	}
	sales, err := s.saleRepo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sales of user %d: %w", userID, err)
	}
	return sales, nil
}

func (s *SaleService) broadcastRecorded(result *RecordSaleResult) {
	delivered := s.broadcaster.Broadcast(domain.Event{
		Type: domain.EventSaleAdded,
		Payload: domain.SaleAddedPayload{
			UserID:        result.Sale.UserID,
			UserName:      result.UserName,
			Amount:        result.Sale.Amount.InexactFloat64(),
			Description:   result.Sale.Description,
			TotalEarnings: result.TotalEarnings.InexactFloat64(),
			TotalDeals:    result.TotalDeals,
			Timestamp:     result.Sale.CreatedAt,
		},
	})
	s.l.WithFields(logrus.Fields{
		"user_id":   result.Sale.UserID,
		"sale_id":   result.Sale.ID,
		"delivered": delivered,
	}).Debug("sale broadcast")

	if len(result.NewAchievements) == 0 {
		return
	}
	payload := make([]domain.BadgePayload, 0, len(result.NewAchievements))
	for _, b := range result.NewAchievements {
		payload = append(payload, b.Payload())
	}
	s.broadcaster.Broadcast(domain.Event{
		Type: domain.EventAchievementUnlocked,
		Payload: domain.AchievementUnlockedPayload{
			UserID:       result.Sale.UserID,
			UserName:     result.UserName,
			Achievements: payload,
		},
	})
}

// validateAmount принимает положительную сумму не более чем с двумя знаками после запятой, которая
// помещается в NUMERIC(14, 2). Сумма не округляется: пороги значков сравниваются с тем, что ввел пользователь.
func validateAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return decimal.Decimal{}, fmt.Errorf("%w: at most %d decimal places", domain.ErrInvalidAmount, MaxAmountScale)
	}
	if amount.GreaterThan(MaxSaleAmount) {
		return decimal.Decimal{}, fmt.Errorf("%w: amount exceeds %s", domain.ErrInvalidAmount, MaxSaleAmount.StringFixed(MaxAmountScale))
	}
	return amount, nil
}
