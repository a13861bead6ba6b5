package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/service"
	"github.com/fsdevblog/salesboard/internal/transport/api/testutils"
)

func (s *HandlersTestSuite) TestFeed() {
	s.mockFeed.EXPECT().Recent(gomock.Any(), uint(5)).Return([]domain.FeedEntry{
		{ID: 2, Type: domain.FeedEntrySale, Message: "Alice closed a $150 deal! 💰", Amount: decimal.NewNullDecimal(decimal.NewFromInt(150))},
		{ID: 1, Type: domain.FeedEntryJoined, Message: "Alice joined the challenge! 🚀"},
	}, nil)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + FeedRoute + "?limit=5",
	})
	s.Equal(http.StatusOK, res.StatusCode)

	var body struct {
		Feed []FeedEntryResponse `json:"feed"`
	}
	s.Require().NoError(testutils.DecodeJSON(res, &body))
	s.Require().Len(body.Feed, 2)
	s.Require().NotNil(body.Feed[0].Amount)
	s.InDelta(150.0, *body.Feed[0].Amount, 0.001)
	s.Nil(body.Feed[1].Amount)
}

func (s *HandlersTestSuite) TestPostMessage() {
	bob := int64(2)
	s.mockFeed.EXPECT().
		PostMessage(gomock.Any(), service.PostMessageArgs{FromUserID: s.currentUser, ToUserID: &bob, Text: "catch me"}).
		Return(&domain.Message{ID: 1, CreatedAt: time.Now(), FromUserID: s.currentUser, Text: "catch me", Type: "general"}, nil)
	s.mockFeed.EXPECT().
		PostMessage(gomock.Any(), service.PostMessageArgs{FromUserID: s.currentUser, Text: "  "}).
		Return(nil, fmt.Errorf("posting: %w", fmt.Errorf("%w: message is required", domain.ErrInvalidMessage)))

	cases := []struct {
		name       string
		body       any
		token      string
		wantStatus int
		wantError  string
	}{
		{name: "ok", body: PostMessageParams{Message: "catch me", ToUserID: &bob}, token: s.userToken, wantStatus: http.StatusOK},
		{name: "blank", body: PostMessageParams{Message: "  "}, token: s.userToken, wantStatus: http.StatusBadRequest, wantError: "message is required"},
		{name: "not authorized", body: PostMessageParams{Message: "hi"}, wantStatus: http.StatusUnauthorized},
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
				URL:    RouteGroup + MessagesRoute,
				Body:   testutils.JSONBody(t.body),
			}, opts...)
			s.Equal(t.wantStatus, res.StatusCode)

			var body map[string]any
			s.Require().NoError(testutils.DecodeJSON(res, &body))
			if t.wantError != "" {
				s.Equal(t.wantError, body["error"])
			}
			if t.wantStatus == http.StatusOK {
				msg, ok := body["message"].(map[string]any)
				s.Require().True(ok)
				s.Equal("catch me", msg["message"])
			}
		})
	}
}

func (s *HandlersTestSuite) TestMessagesAndQuote() {
	s.mockFeed.EXPECT().RecentMessages(gomock.Any(), uint(0)).Return([]domain.Message{{ID: 1, Text: "go go go"}}, nil)
	s.mockFeed.EXPECT().Quote().Return("Close deals. Build dreams. Repeat. 🔄")

	res := testutils.MakeRequest(testutils.RequestArgs{Router: s.router, Method: http.MethodGet, URL: RouteGroup + MessagesRoute})
	var messages struct {
		Messages []domain.MessagePayload `json:"messages"`
	}
	s.Require().NoError(testutils.DecodeJSON(res, &messages))
	s.Require().Len(messages.Messages, 1)
	s.Equal("go go go", messages.Messages[0].Message)

	res = testutils.MakeRequest(testutils.RequestArgs{Router: s.router, Method: http.MethodGet, URL: RouteGroup + QuoteRoute})
	var quote map[string]string
	s.Require().NoError(testutils.DecodeJSON(res, &quote))
	s.Equal("Close deals. Build dreams. Repeat. 🔄", quote["quote"])
}
