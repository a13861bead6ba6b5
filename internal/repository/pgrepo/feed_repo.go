package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

type FeedRepository struct {
	conn uow.DBTX
}

func NewFeedRepository(conn uow.DBTX) *FeedRepository {
	return &FeedRepository{conn: conn}
}

// Append дописывает запись в ленту активности. Записи ленты не изменяются.
func (f *FeedRepository) Append(ctx context.Context, args repoargs.CreateFeedEntry) (*domain.FeedEntry, error) {
	entry := domain.FeedEntry{
		UserID:  args.UserID,
		Type:    args.Type,
		Message: args.Message,
		Amount:  args.Amount,
	}
	err := f.conn.QueryRow(ctx,
		`INSERT INTO activity_feed (user_id, type, message, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		args.UserID, string(args.Type), args.Message, args.Amount,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "appending %s feed entry for user %d", args.Type, args.UserID)
	}
	return &entry, nil
}

// GetRecent возвращает последние limit записей ленты вместе с отображаемыми атрибутами автора.
func (f *FeedRepository) GetRecent(ctx context.Context, limit uint) ([]domain.FeedEntry, error) {
	rows, err := f.conn.Query(ctx,
		`SELECT af.id, af.created_at, af.type, af.message, af.amount, u.id, u.name, u.avatar_color
		FROM activity_feed af
		JOIN users u ON af.user_id = u.id
		ORDER BY af.created_at DESC, af.id DESC
		LIMIT $1`,
		int64(limit), //nolint:gosec
	)
	if err != nil {
		return nil, convertErr(err, "getting recent feed")
	}
	entries, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FeedEntry, error) {
		var e domain.FeedEntry
		var entryType string
		scanErr := row.Scan(
			&e.ID, &e.CreatedAt, &entryType, &e.Message, &e.Amount, &e.UserID, &e.UserName, &e.AvatarColor,
		)
		e.Type = domain.FeedEntryType(entryType)
		return e, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning recent feed")
	}
	return entries, nil
}
