package uow

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

type UnitOfWork struct {
	conn         *pgxpool.Pool
	repositories map[RepositoryName]RepositoryFactory
	txOptions    pgx.TxOptions
}

func NewUnitOfWork(conn *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
		txOptions:    pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
	}
}

// Register регистрирует фабрику репозитория под именем name. Повторная регистрация вернет
// ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return fmt.Errorf("%w: %s", ErrRepositoryAlreadyRegistered, name)
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет fn внутри одной транзакции. Транзакция коммитится только если fn вернула nil,
// в остальных случаях откатывается.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, u.txOptions)
	if txErr != nil {
		return fmt.Errorf("[uow] begin tx: %w", txErr)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	if fnErr := fn(ctx, NewTransaction(tx, u.repositories)); fnErr != nil {
		return fnErr
	}
	if commitErr := tx.Commit(ctx); commitErr != nil {
		return fmt.Errorf("[uow] commit tx: %w", commitErr)
	}
	return nil
}

// GetRepository возвращает репозиторий, работающий вне транзакции, напрямую через пул.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if factory, ok := u.repositories[name]; ok {
		return factory(u.conn), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrRepositoryNotRegistered, name)
}

// GetRepositoryAs возвращает репозиторий name приведенный к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)
	if !ok {
		return res, fmt.Errorf("%w: %s", ErrInvalidRepositoryType, name)
	}
	return r, nil
}
