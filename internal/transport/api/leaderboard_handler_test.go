package api

import (
	"net/http"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/salesboard/internal/badges"
	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/service"
	"github.com/fsdevblog/salesboard/internal/transport/api/testutils"
)

func (s *HandlersTestSuite) TestLeaderboard() {
	s.mockLB.EXPECT().Get(gomock.Any()).Return(&service.Leaderboard{
		Entries: []service.LeaderboardEntry{
			{UserID: 2, Name: "Bob", TotalEarnings: decimal.NewFromInt(1500), TotalDeals: 3, Rank: 1, ProgressPercent: 15, Goal: 10000},
			{UserID: 1, Name: "Alice", TotalEarnings: decimal.NewFromInt(750), TotalDeals: 2, Rank: 2, ProgressPercent: 7.5, Goal: 10000},
		},
		Challenge: service.Challenge{Goal: 10000, StartDate: "2024-02-01", EndDate: "2024-03-02"},
	}, nil)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + LeaderboardRoute,
	})
	s.Equal(http.StatusOK, res.StatusCode)

	var body LeaderboardResponse
	s.Require().NoError(testutils.DecodeJSON(res, &body))
	s.Require().Len(body.Leaderboard, 2)
	s.Equal(int64(2), body.Leaderboard[0].ID)
	s.Equal(1, body.Leaderboard[0].Rank)
	s.InDelta(1500.0, body.Leaderboard[0].TotalEarnings, 0.001)
	s.InDelta(7.5, body.Leaderboard[1].ProgressPercent, 0.001)
	s.Equal(ChallengeResponse{Goal: 10000, StartDate: "2024-02-01", EndDate: "2024-03-02"}, body.Challenge)
}

func (s *HandlersTestSuite) TestProfile() {
	bigFish, _ := badges.Lookup(badges.BigFish)
	s.mockLB.EXPECT().UserProfile(gomock.Any(), int64(1)).Return(&service.UserProfile{
		User:            &domain.User{ID: 1, Name: "Alice"},
		TotalEarnings:   decimal.NewFromInt(750),
		TotalDeals:      2,
		Rank:            2,
		ProgressPercent: 7.5,
		Goal:            10000,
		Streak:          2,
		DailyEarnings: []domain.DailyActivity{
			{UserID: 1, Date: time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC), Earnings: decimal.NewFromInt(150), DealsCount: 1},
			{UserID: 1, Date: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), Earnings: decimal.NewFromInt(600), DealsCount: 1},
		},
		Achievements: []service.UnlockedBadge{{Badge: bigFish, UnlockedAt: time.Now()}},
	}, nil)
	s.mockLB.EXPECT().UserProfile(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/leaderboard/user/1",
	})
	s.Equal(http.StatusOK, res.StatusCode)

	var body ProfileResponse
	s.Require().NoError(testutils.DecodeJSON(res, &body))
	s.Equal(int64(2), body.User.Rank)
	s.Equal(2, body.User.Streak)
	s.Require().Len(body.DailyEarnings, 2)
	s.Equal("2024-02-13", body.DailyEarnings[0].Date)
	s.Require().Len(body.Achievements, 1)
	s.Equal(badges.BigFish, body.Achievements[0].ID)

	missing := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/leaderboard/user/404",
	})
	defer missing.Body.Close()
	s.Equal(http.StatusNotFound, missing.StatusCode)
}
