package hub

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10 //nolint:mnd
	maxMessageSize = 512
	sendBufferSize = 256
)

type State int32

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

// WSConn websocket подписчик. Исходящие сообщения идут через буферизованный канал, который
// разбирает writePump. Канал send никогда не закрывается, завершение сигнализирует done.
type WSConn struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	state     atomic.Int32
	closeOnce sync.Once
	l         *logrus.Entry
}

func newWSConn(h *Hub, conn *websocket.Conn) *WSConn {
	c := &WSConn{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
		l:    h.l.WithField("remote", conn.RemoteAddr().String()),
	}
	c.state.Store(int32(StateConnecting))
	return c
}

// ServeWS переводит запрос в websocket и регистрирует подключение в хабе.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("upgrading websocket connection: %w", err)
	}

	c := newWSConn(h, ws)
	go c.writePump()
	c.state.Store(int32(StateOpen))
	if regErr := h.Register(c); regErr != nil {
		// Соединение уже hijacked, HTTP ответ вернуть нельзя.
		h.l.WithError(regErr).Warn("registering viewer")
		_ = c.Close()
		return nil
	}
	go c.readPump()
	return nil
}

func (c *WSConn) State() State {
	return State(c.state.Load())
}

func (c *WSConn) IsOpen() bool {
	return c.State() == StateOpen
}

func (c *WSConn) Send(msg []byte) error {
	if c.State() == StateClosed {
		return ErrConnClosed
	}
	select {
	case <-c.done:
		return ErrConnClosed
	case c.send <- msg:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Close переводит подключение в CLOSED и останавливает writePump. Безопасен для повторного вызова.
func (c *WSConn) Close() error {
	c.closeOnce.Do(func() {
		c.state.Store(int32(StateClosed))
		close(c.done)
	})
	return nil
}

// readPump читает входящие кадры только ради pong и обнаружения разрыва. Входящие сообщения игнорируются.
func (c *WSConn) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:wrapcheck
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.l.WithError(err).Warn("unexpected websocket close")
			}
			return
		}
	}
}

func (c *WSConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.l.WithError(err).Debug("websocket write failed")
				_ = c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.Close()
				return
			}
		}
	}
}
