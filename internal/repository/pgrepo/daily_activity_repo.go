package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

type DailyActivityRepository struct {
	conn uow.DBTX
}

func NewDailyActivityRepository(conn uow.DBTX) *DailyActivityRepository {
	return &DailyActivityRepository{conn: conn}
}

// Apply атомарно прибавляет delta к строке (user, date), создавая ее при отсутствии. Конкурентные вставки
// за один день сериализуются блокировкой строки в ON CONFLICT DO UPDATE, поэтому обновления не теряются.
// Опустевшие строки (deals_count <= 0) удаляются.
func (d *DailyActivityRepository) Apply(ctx context.Context, delta repoargs.DailyActivityDelta) error {
	date := calendarDate(delta.Date)
	_, err := d.conn.Exec(ctx,
		`INSERT INTO daily_activity (user_id, date, earnings, deals_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE SET
			earnings = daily_activity.earnings + EXCLUDED.earnings,
			deals_count = daily_activity.deals_count + EXCLUDED.deals_count`,
		delta.UserID, date, delta.Earnings, delta.Deals,
	)
	if err != nil {
		return convertErr(err, "applying daily activity delta for user %d", delta.UserID)
	}

	if delta.Deals < 0 {
		if _, delErr := d.conn.Exec(ctx,
			`DELETE FROM daily_activity WHERE user_id = $1 AND date = $2 AND deals_count <= 0`,
			delta.UserID, date,
		); delErr != nil {
			return convertErr(delErr, "cleaning daily activity for user %d", delta.UserID)
		}
	}
	return nil
}

// GetByUserID возвращает дни с продажами, отсортированные по дате по убыванию.
func (d *DailyActivityRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.DailyActivity, error) {
	rows, err := d.conn.Query(ctx,
		`SELECT user_id, date, earnings, deals_count
		FROM daily_activity
		WHERE user_id = $1 AND deals_count > 0
		ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting daily activity of user %d", userID)
	}
	days, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyActivity, error) {
		var day domain.DailyActivity
		scanErr := row.Scan(&day.UserID, &day.Date, &day.Earnings, &day.DealsCount)
		return day, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning daily activity of user %d", userID)
	}
	return days, nil
}

// calendarDate отбрасывает время, сохраняя год, месяц и день в таймзоне t.
func calendarDate(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
