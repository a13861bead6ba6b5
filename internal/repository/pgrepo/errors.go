package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fsdevblog/salesboard/internal/domain"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// convertErr приводит ошибку pgx к виду слоя репозитория:
//   - pgx.ErrNoRows превращается в domain.ErrRecordNotFound;
//   - нарушение уникальности (uniqueViolationCode) в domain.ErrDuplicateKey;
//   - нарушение внешнего ключа (foreignKeyViolationCode) в domain.ErrRecordNotFound;
//   - все остальное в domain.ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	errType := domain.ErrUnknown

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrRecordNotFound
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
