package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

const saleColumns = `id, created_at, user_id, amount, description`

type SaleRepository struct {
	conn uow.DBTX
}

func NewSaleRepository(conn uow.DBTX) *SaleRepository {
	return &SaleRepository{conn: conn}
}

func (s *SaleRepository) Create(ctx context.Context, args repoargs.CreateSale) (*domain.Sale, error) {
	row := s.conn.QueryRow(ctx,
		`INSERT INTO sales (user_id, amount, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING `+saleColumns,
		args.UserID, args.Amount, args.Description, args.CreatedAt,
	)
	sale, err := scanSale(row)
	if err != nil {
		return nil, convertErr(err, "creating sale for user %d", args.UserID)
	}
	return sale, nil
}

// FindByIDAndUserID ищет продажу среди продаж пользователя. Чужая продажа неотличима от отсутствующей.
func (s *SaleRepository) FindByIDAndUserID(ctx context.Context, saleID, userID int64) (*domain.Sale, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = $1 AND user_id = $2`,
		saleID, userID,
	)
	sale, err := scanSale(row)
	if err != nil {
		return nil, convertErr(err, "finding sale %d of user %d", saleID, userID)
	}
	return sale, nil
}

func (s *SaleRepository) Delete(ctx context.Context, saleID int64) error {
	tag, err := s.conn.Exec(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
	if err != nil {
		return convertErr(err, "deleting sale %d", saleID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting sale %d", saleID)
	}
	return nil
}

// GetByUserID возвращает последние продажи пользователя, отсортированные по дате создания по убыванию.
func (s *SaleRepository) GetByUserID(ctx context.Context, userID int64, limit uint) ([]domain.Sale, error) {
	rows, err := s.conn.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		userID, int64(limit), //nolint:gosec
	)
	if err != nil {
		return nil, convertErr(err, "getting sales of user %d", userID)
	}
	sales, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Sale, error) {
		sale, scanErr := scanSale(row)
		if scanErr != nil {
			return domain.Sale{}, scanErr
		}
		return *sale, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning sales of user %d", userID)
	}
	return sales, nil
}

// GetAggregate считает агрегаты по всем продажам пользователя. Для пользователя без продаж
// возвращает нулевые значения, а не ошибку.
func (s *SaleRepository) GetAggregate(ctx context.Context, userID int64) (*repoargs.SalesAggregate, error) {
	var agg repoargs.SalesAggregate
	err := s.conn.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount), 0), MAX(amount), MAX(created_at)
		FROM sales
		WHERE user_id = $1`,
		userID,
	).Scan(&agg.TotalDeals, &agg.TotalEarnings, &agg.LargestDeal, &agg.LastSaleAt)
	if err != nil {
		return nil, convertErr(err, "aggregating sales of user %d", userID)
	}
	return &agg, nil
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var sale domain.Sale
	if err := row.Scan(&sale.ID, &sale.CreatedAt, &sale.UserID, &sale.Amount, &sale.Description); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &sale, nil
}
