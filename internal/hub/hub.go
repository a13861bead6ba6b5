// Package hub рассылает события соревнования всем подключенным зрителям.
package hub

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/salesboard/internal/domain"
)

const WelcomeMessage = "Welcome to the $10K Challenge!"

var (
	ErrConnClosed     = errors.New("connection closed")
	ErrSendBufferFull = errors.New("send buffer full")
)

// Conn подписчик хаба. Send не должен блокироваться: медленный подписчик возвращает ErrSendBufferFull.
type Conn interface {
	Send(msg []byte) error
	IsOpen() bool
	Close() error
}

// Hub реестр подключений. Рассылка идет по снимку реестра, поэтому подключения и отключения
// во время рассылки не мешают друг другу.
type Hub struct {
	mu       sync.RWMutex
	conns    map[Conn]struct{}
	upgrader websocket.Upgrader
	l        *logrus.Entry
}

// New создает хаб. Пустой allowedOrigins разрешает подключения с любого origin.
func New(l *logrus.Logger, allowedOrigins []string) *Hub {
	return &Hub{
		conns: make(map[Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024, //nolint:mnd
			WriteBufferSize: 1024, //nolint:mnd
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
		l: l.WithField("component", "hub"),
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if len(allowed) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}

// Register ставит в очередь подключения приветствие CONNECTED и только потом добавляет его в реестр,
// поэтому ни одно событие рассылки не опережает приветствие. Если приветствие не отправилось,
// подключение не регистрируется.
func (h *Hub) Register(c Conn) error {
	ack, err := encode(domain.Event{
		Type:    domain.EventConnected,
		Payload: domain.ConnectedPayload{Message: WelcomeMessage},
	})
	if err != nil {
		return fmt.Errorf("encoding welcome message: %w", err)
	}
	if sendErr := c.Send(ack); sendErr != nil {
		return fmt.Errorf("sending welcome message: %w", sendErr)
	}

	h.mu.Lock()
	h.conns[c] = struct{}{}
	total := len(h.conns)
	h.mu.Unlock()

	h.l.WithField("total", total).Info("viewer connected")
	return nil
}

// Unregister удаляет подключение. Повторный вызов ничего не делает.
func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	_, ok := h.conns[c]
	delete(h.conns, c)
	total := len(h.conns)
	h.mu.Unlock()

	if ok {
		h.l.WithField("total", total).Info("viewer disconnected")
	}
}

// Broadcast кодирует событие один раз и отправляет его каждому открытому подключению. Неоткрытые
// подключения пропускаются, сбой одного подключения не влияет на остальных: такое подключение
// удаляется из реестра. Возвращает число подключений, принявших сообщение.
func (h *Hub) Broadcast(event domain.Event) int {
	msg, err := encode(event)
	if err != nil {
		h.l.WithError(err).WithField("type", event.Type).Error("encoding event")
		return 0
	}

	h.mu.RLock()
	snapshot := make([]Conn, 0, len(h.conns))
	for c := range h.conns {
		snapshot = append(snapshot, c)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, c := range snapshot {
		if !c.IsOpen() {
			continue
		}
		if sendErr := c.Send(msg); sendErr != nil {
			if errors.Is(sendErr, ErrSendBufferFull) {
				h.l.WithField("type", event.Type).Warn("dropping message for slow viewer")
				continue
			}
			h.l.WithError(sendErr).Debug("removing failed viewer")
			h.Unregister(c)
			_ = c.Close()
			continue
		}
		delivered++
	}
	return delivered
}

// Count число зарегистрированных подключений.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close закрывает все подключения. Используется при остановке сервера.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := make([]Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	clear(h.conns)
	h.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
}

func encode(event domain.Event) ([]byte, error) {
	return json.Marshal(event) //nolint:wrapcheck
}
