package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/salesboard/internal/config"
	"github.com/fsdevblog/salesboard/internal/hub"
	"github.com/fsdevblog/salesboard/internal/repository/pgrepo"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/internal/service"
	"github.com/fsdevblog/salesboard/internal/transport/api"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %w", uowErr)
	}

	wsHub := hub.New(a.Logger, a.Config.CORSOrigins)
	defer wsHub.Close()

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret:   []byte(a.Config.JWTUserSecret),
		AdminSecret: a.Config.AdminSecret,
		Challenge: service.Challenge{
			Goal:      a.Config.ChallengeGoal,
			StartDate: a.Config.ChallengeStartDate,
			EndDate:   a.Config.ChallengeEndDate,
		},
		Clock:       service.NewLocalClock(a.Config.Location),
		Broadcaster: wsHub,
		Logger:      a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %w", sErr)
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		UserService:        services.UserService,
		SaleService:        services.SaleService,
		LeaderboardService: services.LeaderboardService,
		FeedService:        services.FeedService,
		BadgeService:       services.AchievementService,
		AdminService:       services.AdminService,
		WS:                 wsHub,
		JWTSecretKey:       []byte(a.Config.JWTUserSecret),
		CORSOrigins:        a.Config.CORSOrigins,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %w", routerErr)
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	g, gCtx := errgroup.WithContext(notifyCtx)
	g.Go(func() error {
		a.Logger.Infof("listening on %s", a.Config.RunAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		// Websocket соединения hijacked и не закрываются через Shutdown.
		wsHub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

type repoFactory struct {
	name    repoargs.RepositoryName
	factory uow.RepositoryFactory
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := []repoFactory{
		{repoargs.UserRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) }},
		{repoargs.SaleRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewSaleRepository(dbtx) }},
		{repoargs.DailyActivityRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewDailyActivityRepository(dbtx) }},
		{repoargs.AchievementRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewAchievementRepository(dbtx) }},
		{repoargs.FeedRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewFeedRepository(dbtx) }},
		{repoargs.MessageRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewMessageRepository(dbtx) }},
		{repoargs.LeaderboardRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewLeaderboardRepository(dbtx) }},
		{repoargs.AdminRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewAdminRepository(dbtx) }},
	}

	for _, f := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(f.name), f.factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %w", regErr)
		}
	}
	return unitOfWork, nil
}
