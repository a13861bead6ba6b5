package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/salesboard/internal/service/psswd"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

type AppServices struct {
	UserService        *UserService
	StatsService       *StatsService
	AchievementService *AchievementService
	SaleService        *SaleService
	LeaderboardService *LeaderboardService
	FeedService        *FeedService
	AdminService       *AdminService
}

type FactoryArgs struct {
	JWTSecret   []byte
	AdminSecret string
	Challenge   Challenge
	Clock       Clock
	Broadcaster Broadcaster
	Logger      *logrus.Logger
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, args.JWTSecret, psswd.PasswordHash(""), args.Clock)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	statsService, statsServiceErr := NewStatsService(unitOfWork, args.Clock)
	if statsServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", statsServiceErr.Error())
	}

	achService, achServiceErr := NewAchievementService(unitOfWork, statsService, args.Clock)
	if achServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", achServiceErr.Error())
	}

	saleService, saleServiceErr := NewSaleService(unitOfWork, achService, args.Broadcaster, args.Clock, args.Logger)
	if saleServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", saleServiceErr.Error())
	}

	lbService, lbServiceErr := NewLeaderboardService(unitOfWork, statsService, args.Challenge)
	if lbServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", lbServiceErr.Error())
	}

	feedService, feedServiceErr := NewFeedService(unitOfWork, args.Broadcaster)
	if feedServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", feedServiceErr.Error())
	}

	adminService, adminServiceErr := NewAdminService(unitOfWork, args.AdminSecret)
	if adminServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", adminServiceErr.Error())
	}

	return &AppServices{
		UserService:        userService,
		StatsService:       statsService,
		AchievementService: achService,
		SaleService:        saleService,
		LeaderboardService: lbService,
		FeedService:        feedService,
		AdminService:       adminService,
	}, nil
}
