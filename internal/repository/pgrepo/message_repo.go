package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

const messageSelect = `SELECT m.id, m.created_at, m.message, m.type,
		fu.id, fu.name, fu.avatar_color, tu.id, tu.name`

type MessageRepository struct {
	conn uow.DBTX
}

func NewMessageRepository(conn uow.DBTX) *MessageRepository {
	return &MessageRepository{conn: conn}
}

// Create сохраняет сообщение и возвращает его вместе с именами отправителя и получателя.
// Несуществующий получатель дает domain.ErrRecordNotFound.
func (r *MessageRepository) Create(ctx context.Context, args repoargs.CreateMessage) (*domain.Message, error) {
	row := r.conn.QueryRow(ctx,
		`WITH m AS (
			INSERT INTO messages (from_user_id, to_user_id, message, type)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)
		`+messageSelect+`
		FROM m
		JOIN users fu ON m.from_user_id = fu.id
		LEFT JOIN users tu ON m.to_user_id = tu.id`,
		args.FromUserID, args.ToUserID, args.Text, args.Type,
	)
	msg, err := scanMessage(row)
	if err != nil {
		return nil, convertErr(err, "creating message from user %d", args.FromUserID)
	}
	return msg, nil
}

func (r *MessageRepository) GetRecent(ctx context.Context, limit uint) ([]domain.Message, error) {
	rows, err := r.conn.Query(ctx,
		messageSelect+`
		FROM messages m
		JOIN users fu ON m.from_user_id = fu.id
		LEFT JOIN users tu ON m.to_user_id = tu.id
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1`,
		int64(limit), //nolint:gosec
	)
	if err != nil {
		return nil, convertErr(err, "getting recent messages")
	}
	messages, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Message, error) {
		msg, scanErr := scanMessage(row)
		if scanErr != nil {
			return domain.Message{}, scanErr
		}
		return *msg, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning recent messages")
	}
	return messages, nil
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var msg domain.Message
	if err := row.Scan(
		&msg.ID,
		&msg.CreatedAt,
		&msg.Text,
		&msg.Type,
		&msg.FromUserID,
		&msg.FromUserName,
		&msg.FromUserColor,
		&msg.ToUserID,
		&msg.ToUserName,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &msg, nil
}
