package api

import (
	"net/http"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/fsdevblog/salesboard/internal/badges"
	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/service"
	"github.com/fsdevblog/salesboard/internal/transport/api/testutils"
)

func (s *HandlersTestSuite) TestBadges() {
	s.mockBadge.EXPECT().Catalog().Return(badges.All())
	whale, _ := badges.Lookup(badges.Whale)
	s.mockBadge.EXPECT().UserAchievements(gomock.Any(), int64(3)).
		Return([]service.UnlockedBadge{{Badge: whale, UnlockedAt: time.Now()}}, nil)

	res := testutils.MakeRequest(testutils.RequestArgs{Router: s.router, Method: http.MethodGet, URL: RouteGroup + BadgesRoute})
	var catalog struct {
		Badges []domain.BadgePayload `json:"badges"`
	}
	s.Require().NoError(testutils.DecodeJSON(res, &catalog))
	s.Len(catalog.Badges, len(badges.All()))
	s.Equal(badges.FirstSale, catalog.Badges[0].ID)

	res = testutils.MakeRequest(testutils.RequestArgs{Router: s.router, Method: http.MethodGet, URL: RouteGroup + "/badges/user/3"})
	var unlocked struct {
		Achievements []UnlockedBadgeResponse `json:"achievements"`
	}
	s.Require().NoError(testutils.DecodeJSON(res, &unlocked))
	s.Require().Len(unlocked.Achievements, 1)
	s.Equal("Whale Hunter", unlocked.Achievements[0].Name)
	s.False(unlocked.Achievements[0].UnlockedAt.IsZero())
}

func (s *HandlersTestSuite) TestHealth() {
	res := testutils.MakeRequest(testutils.RequestArgs{Router: s.router, Method: http.MethodGet, URL: RouteGroup + HealthRoute})
	s.Equal(http.StatusOK, res.StatusCode)

	var body map[string]any
	s.Require().NoError(testutils.DecodeJSON(res, &body))
	s.Equal("ok", body["status"])
}

func (s *HandlersTestSuite) TestReset() {
	s.mockAdmin.EXPECT().Reset(gomock.Any(), "right").Return(nil)
	s.mockAdmin.EXPECT().Reset(gomock.Any(), "wrong").Return(domain.ErrForbidden)

	cases := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{name: "ok", body: ResetParams{Secret: "right"}, wantStatus: http.StatusOK},
		{name: "wrong secret", body: ResetParams{Secret: "wrong"}, wantStatus: http.StatusForbidden},
		{name: "no secret", body: map[string]string{}, wantStatus: http.StatusForbidden},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + AdminResetRoute,
				Body:   testutils.JSONBody(t.body),
			}, testutils.WithJSON())
			defer res.Body.Close()
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *HandlersTestSuite) TestWS() {
	s.mockWS.EXPECT().ServeWS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(w http.ResponseWriter, _ *http.Request) error {
			w.WriteHeader(http.StatusSwitchingProtocols)
			return nil
		})

	res := testutils.MakeRequest(testutils.RequestArgs{Router: s.router, Method: http.MethodGet, URL: WSRoute})
	defer res.Body.Close()
	s.Equal(http.StatusSwitchingProtocols, res.StatusCode)
}
