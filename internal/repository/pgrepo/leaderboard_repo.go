package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

type LeaderboardRepository struct {
	conn uow.DBTX
}

func NewLeaderboardRepository(conn uow.DBTX) *LeaderboardRepository {
	return &LeaderboardRepository{conn: conn}
}

// GetStandings возвращает всех пользователей, отсортированных по сумме продаж по убыванию.
// Равные суммы упорядочены по id пользователя.
func (l *LeaderboardRepository) GetStandings(ctx context.Context) ([]repoargs.Standing, error) {
	rows, err := l.conn.Query(ctx,
		`SELECT u.id, u.name, u.avatar_color, u.created_at, u.last_active,
			COALESCE(SUM(s.amount), 0) AS total_earnings,
			COUNT(s.id) AS total_deals,
			(SELECT COUNT(*) FROM daily_activity d WHERE d.user_id = u.id AND d.deals_count > 0) AS days_active
		FROM users u
		LEFT JOIN sales s ON u.id = s.user_id
		GROUP BY u.id
		ORDER BY total_earnings DESC, u.id ASC`,
	)
	if err != nil {
		return nil, convertErr(err, "getting leaderboard standings")
	}
	standings, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repoargs.Standing, error) {
		var st repoargs.Standing
		scanErr := row.Scan(
			&st.UserID, &st.Name, &st.AvatarColor, &st.CreatedAt, &st.LastActive,
			&st.TotalEarnings, &st.TotalDeals, &st.DaysActive,
		)
		return st, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning leaderboard standings")
	}
	return standings, nil
}

// CountUsersAbove считает пользователей, у которых сумма продаж строго больше total.
func (l *LeaderboardRepository) CountUsersAbove(ctx context.Context, total decimal.Decimal) (int64, error) {
	var count int64
	err := l.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM (
			SELECT user_id, SUM(amount) AS total FROM sales GROUP BY user_id
		) t
		WHERE t.total > $1`,
		total,
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting users above %s", total.String())
	}
	return count, nil
}
