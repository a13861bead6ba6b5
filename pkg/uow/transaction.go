package uow

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Transaction struct {
	repositories map[RepositoryName]RepositoryFactory
	tx           pgx.Tx
}

func NewTransaction(tx pgx.Tx, repositories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		repositories: repositories,
		tx:           tx,
	}
}

// Get возвращает репозиторий, привязанный к текущей транзакции.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if factory, ok := t.repositories[name]; ok {
		return factory(t.tx), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrRepositoryNotRegistered, name)
}

// GetAs возвращает репозиторий транзакции с именем name приведенный к типу T.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var res T
	repo, err := t.Get(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, fmt.Errorf("%w: %s", ErrInvalidRepositoryType, name)
	}
	return res, nil
}
