package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

const (
	DefaultFeedLimit     = 20
	DefaultMessagesLimit = 30
	MaxMessageLength     = 280
)

var motivationalQuotes = []string{
	"The only limit to your earnings is your imagination. 💭",
	"Every 'no' brings you closer to 'yes'. Keep pushing! 💪",
	"Success is the sum of small efforts repeated daily. 📈",
	"Your competition is not other salespeople. Your competition is your potential. 🎯",
	"Wake up with determination. Go to bed with satisfaction. 🌟",
	"Don't count the days. Make the days count. ⏰",
	"The best time to make a sale was yesterday. The second best time is NOW. 🚀",
	"Winners don't wait for chances. They create them. 🏆",
	"Your bank account is a reflection of your belief in yourself. 💰",
	"Close deals. Build dreams. Repeat. 🔄",
}

type FeedService struct {
	feedRepo    FeedRepository
	msgRepo     MessageRepository
	broadcaster Broadcaster
}

func NewFeedService(u uow.UOW, broadcaster Broadcaster) (*FeedService, error) {
	feedRepo, feedRepoErr := repoOf[FeedRepository](u, repoargs.FeedRepoName)
	if feedRepoErr != nil {
		return nil, feedRepoErr
	}
	msgRepo, msgRepoErr := repoOf[MessageRepository](u, repoargs.MessageRepoName)
	if msgRepoErr != nil {
		return nil, msgRepoErr
	}
	return &FeedService{
		feedRepo:    feedRepo,
		msgRepo:     msgRepo,
		broadcaster: broadcaster,
	}, nil
}

// Recent возвращает последние записи ленты активности, новые первыми.
func (f *FeedService) Recent(ctx context.Context, limit uint) ([]domain.FeedEntry, error) {
	if limit == 0 {
		limit = DefaultFeedLimit
	}
	entries, err := f.feedRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("getting feed: %w", err)
	}
	return entries, nil
}

func (f *FeedService) RecentMessages(ctx context.Context, limit uint) ([]domain.Message, error) {
	if limit == 0 {
		limit = DefaultMessagesLimit
	}
	messages, err := f.msgRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("getting messages: %w", err)
	}
	return messages, nil
}

type PostMessageArgs struct {
	FromUserID int64
	ToUserID   *int64
	Text       string
	Type       string
}

// PostMessage сохраняет сообщение и рассылает его всем зрителям. Пустое после обрезки пробелов или
// слишком длинное сообщение отклоняется с ErrInvalidMessage.
func (f *FeedService) PostMessage(ctx context.Context, args PostMessageArgs) (*domain.Message, error) {
	text := strings.TrimSpace(args.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidMessage)
	}
	if utf8.RuneCountInString(args.Text) > MaxMessageLength {
		return nil, fmt.Errorf("%w: message too long (max %d characters)", domain.ErrInvalidMessage, MaxMessageLength)
	}
	msgType := args.Type
	if msgType == "" {
		msgType = domain.DefaultMessageType
	}

	msg, err := f.msgRepo.Create(ctx, repoargs.CreateMessage{
		FromUserID: args.FromUserID,
		ToUserID:   args.ToUserID,
		Text:       text,
		Type:       msgType,
	})
	if err != nil {
		return nil, fmt.Errorf("posting message of user %d: %w", args.FromUserID, err)
	}

	f.broadcaster.Broadcast(domain.Event{
		Type:    domain.EventNewMessage,
		Payload: domain.NewMessagePayload(*msg),
	})
	return msg, nil
}

func (f *FeedService) Quote() string {
	return randomItem(motivationalQuotes)
}
