package api

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/salesboard/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup       = "/api"
	SignupRoute      = "/auth/signup"
	LoginRoute       = "/auth/login"
	MeRoute          = "/auth/me"
	LeaderboardRoute = "/leaderboard"
	UserProfileRoute = "/leaderboard/user/:userId"
	UserSalesRoute   = "/leaderboard/user/:userId/sales"
	SalesRoute       = "/sales"
	SaleRoute        = "/sales/:saleId"
	FeedRoute        = "/feed"
	MessagesRoute    = "/feed/messages"
	QuoteRoute       = "/feed/quote"
	BadgesRoute      = "/badges"
	UserBadgesRoute  = "/badges/user/:userId"
	HealthRoute      = "/health"
	AdminResetRoute  = "/admin/reset"
	WSRoute          = "/ws"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	UserService        UserServicer
	SaleService        SaleServicer
	LeaderboardService LeaderboardServicer
	FeedService        FeedServicer
	BadgeService       BadgeServicer
	AdminService       AdminServicer
	WS                 WSServer
	JWTSecretKey       []byte
	CORSOrigins        []string
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	if len(args.CORSOrigins) > 0 {
		corsConf := cors.DefaultConfig()
		corsConf.AllowOrigins = args.CORSOrigins
		corsConf.AllowCredentials = true
		corsConf.AddAllowHeaders("Authorization")
		r.Use(cors.New(corsConf))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	salesHandler := NewSalesHandler(args.SaleService)
	lbHandler := NewLeaderboardHandler(args.LeaderboardService)
	feedHandler := NewFeedHandler(args.FeedService)
	badgesHandler := NewBadgesHandler(args.BadgeService)
	systemHandler := NewSystemHandler(args.AdminService, args.WS)
	authRequired := middlewares.AuthRequired(args.JWTSecretKey)

	r.GET(WSRoute, systemHandler.WS)

	api := r.Group(RouteGroup)

	api.POST(SignupRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.GET(MeRoute, authRequired, authHandler.Me)

	api.GET(LeaderboardRoute, lbHandler.Index)
	api.GET(UserProfileRoute, lbHandler.Profile)
	api.GET(UserSalesRoute, salesHandler.UserSales)

	api.POST(SalesRoute, authRequired, salesHandler.Create)
	api.DELETE(SaleRoute, authRequired, salesHandler.Delete)

	api.GET(FeedRoute, feedHandler.Index)
	api.GET(MessagesRoute, feedHandler.Messages)
	api.POST(MessagesRoute, authRequired, feedHandler.PostMessage)
	api.GET(QuoteRoute, feedHandler.Quote)

	api.GET(BadgesRoute, badgesHandler.Index)
	api.GET(UserBadgesRoute, badgesHandler.UserBadges)

	api.GET(HealthRoute, systemHandler.Health)
	api.POST(AdminResetRoute, systemHandler.Reset)
	return r, nil
}
