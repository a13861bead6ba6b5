package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/internal/service/tokens"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

const JWTTokenExpire = 7 * 24 * time.Hour

var avatarColors = []string{"#ef4444", "#f59e0b", "#22c55e", "#3b82f6", "#8b5cf6", "#ec4899", "#06b6d4"}

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	hasher         PasswordHasher
	clock          Clock
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher, clock Clock) (*UserService, error) {
	userRepo, userRepoErr := repoOf[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		hasher:         hasher,
		clock:          clock,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Email    string
	Password string
	Name     string
}

// Register создает юзера и запись "присоединился" в ленте одной транзакцией. После успешного создания
// генерирует jwt token. Возвращает 3 значения: созданный юзер, токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}

	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var userErr, tokenErr error
		userRepo, userRepoErr := txRepoOf[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr
		}
		feedRepo, feedRepoErr := txRepoOf[FeedRepository](tx, repoargs.FeedRepoName)
		if feedRepoErr != nil {
			return feedRepoErr
		}

		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Email:        strings.TrimSpace(args.Email),
			Name:         strings.TrimSpace(args.Name),
			AvatarColor:  randomItem(avatarColors),
			PasswordHash: password,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		if _, feedErr := feedRepo.Append(c, repoargs.CreateFeedEntry{
			UserID:  user.ID,
			Type:    domain.FeedEntryJoined,
			Message: fmt.Sprintf("%s joined the challenge! 🚀", user.Name),
		}); feedErr != nil {
			return feedErr //nolint:wrapcheck
		}

		token, tokenErr = tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login проверяет пару email/пароль, обновляет last_active и выдает токен. Неизвестный email возвращает
// ErrRecordNotFound, неверный пароль ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, userErr := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(args.Email))
	if userErr != nil {
		return nil, "", fmt.Errorf("login user: %w", userErr)
	}

	if !s.hasher.ComparePassword(args.Password, user.PasswordHash) {
		return nil, "", fmt.Errorf("login user: %w", domain.ErrPasswordMissMatch)
	}

	now := s.clock.Now()
	if touchErr := s.userRepo.TouchLastActive(ctx, user.ID, now); touchErr != nil {
		return nil, "", fmt.Errorf("login user: %w", touchErr)
	}
	user.LastActive = now

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login user: %w", tokenErr)
	}
	return user, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return user, nil
}
