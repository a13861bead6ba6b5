package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// драйвер postgres для применения миграций.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// источник миграций из файлов (*.sql).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	maxConnectAttempts = 30
	retryInterval      = 3 * time.Second
)

// Connect открывает пул соединений с postgres, повторяя попытки пока база недоступна, и применяет миграции
// из migrationsDir.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	var attempts uint
	for {
		conn, connErr := newPostgresConnection(ctx, dsn)
		if connErr == nil {
			if err := postgresMigrate(migrationsDir, dsn); err != nil {
				conn.Close()
				return nil, err
			}
			return conn, nil
		}

		attempts++
		if attempts >= maxConnectAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %w", attempts, connErr)
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempts, maxConnectAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", retryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("init postgres connection: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	defer func() {
		_, _ = m.Close()
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
