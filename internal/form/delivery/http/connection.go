package http

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"jwt-builder/internal/form"
	"jwt-builder/pkg/log"

	"github.com/gorilla/websocket"
)

// connection binds one socket to one form session.
type connection struct {
	h       *Handler
	conn    *websocket.Conn
	session form.Session
	l       log.Logger

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func (h *Handler) newConnection(conn *websocket.Conn, session form.Session) *connection {
	return &connection{
		h:       h,
		conn:    conn,
		session: session,
		l:       h.l,
		send:    make(chan []byte, h.wsConfig.SendBufferSize),
		done:    make(chan struct{}),
	}
}

// serve runs both pumps and returns once the socket is gone.
func (c *connection) serve(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	unsubscribe := c.session.Subscribe(c.pushSnapshot)
	defer unsubscribe()

	go c.writePump(ctx)
	c.pushSnapshot(c.session.Snapshot())
	c.readPump(ctx)
}

// readPump decodes actions until the peer goes away. It is the only reader.
func (c *connection) readPump(ctx context.Context) {
	defer c.close()

	cfg := c.h.wsConfig
	c.conn.SetReadLimit(cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.l.Errorf(ctx, "internal.form.delivery.http.readPump: session %s: %v", c.session.ID(), err)
			}
			return
		}

		var req actionReq
		if err := json.Unmarshal(raw, &req); err != nil {
			c.pushError(c.h.mapError(errInvalidMessage))
			continue
		}
		if err := c.h.dispatch(ctx, c.session, req, c); err != nil {
			c.l.Debugf(ctx, "internal.form.delivery.http.readPump: action %q: %v", req.Action, err)
			c.pushError(c.h.mapError(err))
		}
	}
}

// writePump is the only writer on the socket.
func (c *connection) writePump(ctx context.Context) {
	cfg := c.h.wsConfig
	ticker := time.NewTicker(cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.l.Debugf(ctx, "internal.form.delivery.http.writePump: %v", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(cfg.WriteWait))
			return
		}
	}
}

func (c *connection) pushSnapshot(s form.Snapshot) {
	msg, err := snapshotMessage(s)
	if err != nil {
		c.l.Errorf(context.Background(), "internal.form.delivery.http.pushSnapshot: %v", err)
		return
	}
	c.enqueue(msg)
}

func (c *connection) pushError(text string) {
	msg, err := errorMessage(text)
	if err != nil {
		return
	}
	c.enqueue(msg)
}

// enqueue drops the connection when the client cannot keep up.
func (c *connection) enqueue(msg []byte) {
	select {
	case <-c.done:
	case c.send <- msg:
	default:
		c.l.Warnf(context.Background(), "internal.form.delivery.http.enqueue: session %s send buffer full, closing", c.session.ID())
		c.close()
	}
}

func (c *connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}
