package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/salesboard/internal/badges"
	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/service"
	"github.com/fsdevblog/salesboard/internal/transport/api/testutils"
)

func (s *HandlersTestSuite) TestCreateSale() {
	firstSale, _ := badges.Lookup(badges.FirstSale)
	hundredClub, _ := badges.Lookup(badges.HundredClub)

	recorded := &service.RecordSaleResult{
		Sale: &domain.Sale{
			ID:          10,
			CreatedAt:   time.Now(),
			UserID:      s.currentUser,
			Amount:      decimal.NewFromInt(150),
			Description: "Sale",
		},
		UserName:        "Alice",
		TotalEarnings:   decimal.NewFromInt(150),
		TotalDeals:      1,
		NewAchievements: []badges.Badge{firstSale, hundredClub},
	}

	// Моки
	s.mockSale.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.RecordSaleArgs) (*service.RecordSaleResult, error) {
			s.Equal(s.currentUser, args.UserID)
			if !args.Amount.IsPositive() {
				return nil, domain.ErrInvalidAmount
			}
			return recorded, nil
		}).Times(3)

	cases := []struct {
		name       string
		body       string
		token      string
		wantStatus int
		wantError  string
	}{
		{name: "ok", body: `{"amount": 150}`, token: s.userToken, wantStatus: http.StatusOK},
		{name: "string amount", body: `{"amount": "150.00", "description": "Renewal"}`, token: s.userToken, wantStatus: http.StatusOK},
		{name: "negative amount", body: `{"amount": -5}`, token: s.userToken, wantStatus: http.StatusBadRequest, wantError: "Valid amount is required"},
		{name: "not a number", body: `{"amount": "abc"}`, token: s.userToken, wantStatus: http.StatusBadRequest},
		{
			name:       "description over byte limit",
			body:       `{"amount": 10, "description": "` + testutils.GenerateOverBytesUnderRunes(126) + `"}`,
			token:      s.userToken,
			wantStatus: http.StatusBadRequest,
		},
		{name: "not authorized", body: `{"amount": 150}`, wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			opts := []func(*testutils.RequestOptions){testutils.WithJSON()}
			if t.token != "" {
				opts = append(opts, testutils.WithBearer(t.token))
			}
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + SalesRoute,
				Body:   strings.NewReader(t.body),
			}, opts...)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus != http.StatusOK {
				var body map[string]string
				s.Require().NoError(testutils.DecodeJSON(res, &body))
				if t.wantError != "" {
					s.Equal(t.wantError, body["error"])
				}
				return
			}

			var body RecordSaleResponse
			s.Require().NoError(testutils.DecodeJSON(res, &body))
			s.Equal(int64(10), body.Sale.ID)
			s.InDelta(150.0, body.Sale.Amount, 0.001)
			s.InDelta(150.0, body.UserStats.TotalEarnings, 0.001)
			s.Equal(int64(1), body.UserStats.TotalDeals)
			s.Require().Len(body.NewAchievements, 2)
			s.Equal(badges.FirstSale, body.NewAchievements[0].ID)
			s.Equal(badges.HundredClub, body.NewAchievements[1].ID)
		})
	}
}

func (s *HandlersTestSuite) TestDeleteSale() {
	s.mockSale.EXPECT().Delete(gomock.Any(), s.currentUser, int64(10)).Return(nil)
	s.mockSale.EXPECT().Delete(gomock.Any(), s.currentUser, int64(11)).Return(domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "ok", url: RouteGroup + "/sales/10", wantStatus: http.StatusOK},
		{name: "foreign or missing", url: RouteGroup + "/sales/11", wantStatus: http.StatusNotFound},
		{name: "bad id", url: RouteGroup + "/sales/abc", wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodDelete,
				URL:    t.url,
			}, testutils.WithBearer(s.userToken))
			defer res.Body.Close()
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *HandlersTestSuite) TestUserSales() {
	sales := []domain.Sale{
		{ID: 2, UserID: 5, Amount: decimal.NewFromInt(30), Description: "b"},
		{ID: 1, UserID: 5, Amount: decimal.NewFromInt(20), Description: "a"},
	}
	s.mockSale.EXPECT().ListByUser(gomock.Any(), int64(5), uint(2)).Return(sales, nil)
	s.mockSale.EXPECT().ListByUser(gomock.Any(), int64(5), uint(0)).Return(sales, nil)

	for _, url := range []string{RouteGroup + "/leaderboard/user/5/sales?limit=2", RouteGroup + "/leaderboard/user/5/sales?limit=x"} {
		res := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    url,
		})
		s.Equal(http.StatusOK, res.StatusCode)

		var body struct {
			Sales []SaleResponse `json:"sales"`
		}
		s.Require().NoError(testutils.DecodeJSON(res, &body))
		s.Require().Len(body.Sales, 2)
		s.InDelta(30.0, body.Sales[0].Amount, 0.001)
	}
}
