package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

const userColumns = `id, created_at, last_active, email, name, avatar_color, password_hash`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// CreateUser создает юзера. В случае конфликта email возвращает ошибку domain.ErrDuplicateKey.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`INSERT INTO users (email, name, avatar_color, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		args.Email, args.Name, args.AvatarColor, args.PasswordHash,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

// FindUserByEmail возвращает domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

func (u *UserRepository) TouchLastActive(ctx context.Context, id int64, at time.Time) error {
	if _, err := u.conn.Exec(ctx, `UPDATE users SET last_active = $2 WHERE id = $1`, id, at); err != nil {
		return convertErr(err, "updating last_active of user %d", id)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.LastActive,
		&user.Email,
		&user.Name,
		&user.AvatarColor,
		&user.PasswordHash,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
