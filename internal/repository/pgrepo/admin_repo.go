package pgrepo

import (
	"context"

	"github.com/fsdevblog/salesboard/pkg/uow"
)

type AdminRepository struct {
	conn uow.DBTX
}

func NewAdminRepository(conn uow.DBTX) *AdminRepository {
	return &AdminRepository{conn: conn}
}

// ResetAll очищает все таблицы и сбрасывает последовательности идентификаторов.
func (a *AdminRepository) ResetAll(ctx context.Context) error {
	_, err := a.conn.Exec(ctx,
		`TRUNCATE TABLE messages, activity_feed, achievements, daily_activity, sales, users RESTART IDENTITY CASCADE`,
	)
	if err != nil {
		return convertErr(err, "resetting all tables")
	}
	return nil
}
