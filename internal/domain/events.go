package domain

import "time"

type EventType string

const (
	EventConnected           EventType = "CONNECTED"
	EventSaleAdded           EventType = "SALE_ADDED"
	EventSaleDeleted         EventType = "SALE_DELETED"
	EventAchievementUnlocked EventType = "ACHIEVEMENT_UNLOCKED"
	EventNewMessage          EventType = "NEW_MESSAGE"
)

// Event конверт, рассылаемый всем подключенным зрителям. Форма Payload зависит от Type.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

type ConnectedPayload struct {
	Message string `json:"message"`
}

type SaleAddedPayload struct {
	UserID        int64     `json:"userId"`
	UserName      string    `json:"userName"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	TotalEarnings float64   `json:"totalEarnings"`
	TotalDeals    int64     `json:"totalDeals"`
	Timestamp     time.Time `json:"timestamp"`
}

type SaleDeletedPayload struct {
	UserID int64 `json:"userId"`
	SaleID int64 `json:"saleId"`
}

// BadgePayload отображаемые атрибуты значка в событиях и HTTP ответах.
type BadgePayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
}

type AchievementUnlockedPayload struct {
	UserID       int64          `json:"userId"`
	UserName     string         `json:"userName"`
	Achievements []BadgePayload `json:"achievements"`
}

type MessagePayload struct {
	ID            int64     `json:"id"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
	FromUserID    int64     `json:"from_user_id"`
	FromUserName  string    `json:"from_user_name"`
	FromUserColor string    `json:"from_user_color"`
	ToUserID      *int64    `json:"to_user_id"`
	ToUserName    *string   `json:"to_user_name"`
}

// NewMessagePayload строит полную запись сообщения для события NEW_MESSAGE и HTTP ответа.
func NewMessagePayload(m Message) MessagePayload {
	return MessagePayload{
		ID:            m.ID,
		Message:       m.Text,
		Type:          m.Type,
		CreatedAt:     m.CreatedAt,
		FromUserID:    m.FromUserID,
		FromUserName:  m.FromUserName,
		FromUserColor: m.FromUserColor,
		ToUserID:      m.ToUserID,
		ToUserName:    m.ToUserName,
	}
}
