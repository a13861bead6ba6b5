package api

import (
	"net/http"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/service"
	"github.com/fsdevblog/salesboard/internal/service/tokens"
	"github.com/fsdevblog/salesboard/internal/transport/api/testutils"
)

func (s *HandlersTestSuite) TestRegister() {
	validParams := UserRegisterParams{Email: "alice@example.com", Password: "secret1", Name: "Alice"}
	duplicateParams := UserRegisterParams{Email: "taken@example.com", Password: "secret1", Name: "Bob"}

	createdUser := &domain.User{ID: 7, Email: validParams.Email, Name: validParams.Name, AvatarColor: "#22c55e"}

	// Моки
	s.mockUser.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{
			Email: validParams.Email, Password: validParams.Password, Name: validParams.Name,
		}).
		Return(createdUser, "jwt-token", nil)
	s.mockUser.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{
			Email: duplicateParams.Email, Password: duplicateParams.Password, Name: duplicateParams.Name,
		}).
		Return(nil, "", domain.ErrDuplicateKey)

	cases := []struct {
		name       string
		body       any
		token      string
		wantStatus int
		wantError  string
	}{
		{name: "ok", body: validParams, wantStatus: http.StatusOK},
		{name: "duplicate email", body: duplicateParams, wantStatus: http.StatusConflict, wantError: "Email already registered"},
		{
			name:       "short password",
			body:       UserRegisterParams{Email: "x@example.com", Password: "123", Name: "X"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			body:       map[string]string{"email": "x@example.com", "password": "secret1"},
			wantStatus: http.StatusBadRequest,
		},
		{name: "already authorized", body: validParams, token: s.userToken, wantStatus: http.StatusForbidden},
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
				URL:    RouteGroup + SignupRoute,
				Body:   testutils.JSONBody(t.body),
			}, opts...)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body AuthResponse
				s.Require().NoError(testutils.DecodeJSON(res, &body))
				s.Equal("jwt-token", body.Token)
				s.Equal(createdUser.ID, body.User.ID)
				s.Equal("#22c55e", body.User.AvatarColor)
				return
			}
			var body map[string]string
			s.Require().NoError(testutils.DecodeJSON(res, &body))
			s.NotEmpty(body["error"])
			if t.wantError != "" {
				s.Equal(t.wantError, body["error"])
			}
		})
	}
}

func (s *HandlersTestSuite) TestLogin() {
	user := &domain.User{ID: 3, Email: "alice@example.com", Name: "Alice"}

	s.mockUser.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: user.Email, Password: "secret1"}).
		Return(user, "jwt-token", nil)
	s.mockUser.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: user.Email, Password: "wrong"}).
		Return(nil, "", domain.ErrPasswordMissMatch)
	s.mockUser.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: "ghost@example.com", Password: "secret1"}).
		Return(nil, "", domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		body       UserLoginParams
		wantStatus int
	}{
		{name: "ok", body: UserLoginParams{Email: user.Email, Password: "secret1"}, wantStatus: http.StatusOK},
		{name: "wrong password", body: UserLoginParams{Email: user.Email, Password: "wrong"}, wantStatus: http.StatusUnauthorized},
		{name: "unknown email", body: UserLoginParams{Email: "ghost@example.com", Password: "secret1"}, wantStatus: http.StatusUnauthorized},
		{name: "invalid email", body: UserLoginParams{Email: "nope", Password: "secret1"}, wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LoginRoute,
				Body:   testutils.JSONBody(t.body),
			}, testutils.WithJSON())
			defer res.Body.Close()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantStatus == http.StatusOK {
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))
			}
		})
	}
}

func (s *HandlersTestSuite) TestMe() {
	expired, err := tokens.GenerateUserJWT(s.currentUser, -time.Minute, s.jwtSecret)
	s.Require().NoError(err)

	s.mockUser.EXPECT().GetByID(gomock.Any(), s.currentUser).
		Return(&domain.User{ID: s.currentUser, Name: "Alice"}, nil)

	cases := []struct {
		name       string
		token      string
		wantStatus int
		wantError  string
	}{
		{name: "ok", token: s.userToken, wantStatus: http.StatusOK},
		{name: "no token", wantStatus: http.StatusUnauthorized, wantError: "Not authenticated"},
		{name: "expired token", token: expired, wantStatus: http.StatusUnauthorized, wantError: "Token expired"},
		{name: "garbage token", token: "garbage", wantStatus: http.StatusUnauthorized, wantError: "Invalid token"},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var opts []func(*testutils.RequestOptions)
			if t.token != "" {
				opts = append(opts, testutils.WithBearer(t.token))
			}
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + MeRoute,
			}, opts...)
			s.Equal(t.wantStatus, res.StatusCode)

			var body map[string]any
			s.Require().NoError(testutils.DecodeJSON(res, &body))
			if t.wantError != "" {
				s.Equal(t.wantError, body["error"])
			} else {
				s.Contains(body, "user")
			}
		})
	}
}
