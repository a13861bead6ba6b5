package pgrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

type AchievementRepository struct {
	conn uow.DBTX
}

func NewAchievementRepository(conn uow.DBTX) *AchievementRepository {
	return &AchievementRepository{conn: conn}
}

// InsertIfAbsent вставляет запись о разблокировке, если пары (user, badge) еще нет. Уникальный индекс
// является окончательным арбитром: проигравшая гонку вставка возвращает false без ошибки.
func (a *AchievementRepository) InsertIfAbsent(
	ctx context.Context,
	userID int64,
	badgeID string,
	at time.Time,
) (bool, error) {
	var inserted string
	err := a.conn.QueryRow(ctx,
		`INSERT INTO achievements (user_id, badge_id, unlocked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, badge_id) DO NOTHING
		RETURNING badge_id`,
		userID, badgeID, at,
	).Scan(&inserted)

	if err != nil {
		// ON CONFLICT DO NOTHING не возвращает строку.
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		converted := convertErr(err, "inserting achievement %s for user %d", badgeID, userID)
		if errors.Is(converted, domain.ErrDuplicateKey) {
			return false, nil
		}
		return false, converted
	}
	return true, nil
}

// GetByUserID возвращает разблокировки пользователя в порядке получения.
func (a *AchievementRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Achievement, error) {
	rows, err := a.conn.Query(ctx,
		`SELECT user_id, badge_id, unlocked_at
		FROM achievements
		WHERE user_id = $1
		ORDER BY unlocked_at, badge_id`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting achievements of user %d", userID)
	}
	achievements, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Achievement, error) {
		var a domain.Achievement
		scanErr := row.Scan(&a.UserID, &a.BadgeID, &a.UnlockedAt)
		return a, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning achievements of user %d", userID)
	}
	return achievements, nil
}
