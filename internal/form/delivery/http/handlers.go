package http

import (
	"net/http"
	"strings"

	"jwt-builder/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// HandleWebSocket opens a builder form session over a WebSocket.
// @Summary Live builder form
// @Description Upgrades to a WebSocket bound to a fresh form session. Send {"action": ...} messages; every change pushes {"type":"snapshot","data":...}.
// @Tags Form
// @Success 101 {string} string "Switching Protocols"
// @Failure 503 {object} response.Resp "Maximum sessions reached"
// @Router /ws/form [GET]
func (h *Handler) HandleWebSocket(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := h.uc.NewSession(ctx)
	if err != nil {
		h.l.Warnf(ctx, "internal.form.delivery.http.HandleWebSocket.NewSession: %v", err)
		response.Error(c, h.mapHTTPError(err), nil)
		return
	}
	defer h.uc.CloseSession(ctx, session.ID())

	upgrader := websocket.Upgrader{
		ReadBufferSize:  h.wsConfig.ReadBufferSize,
		WriteBufferSize: h.wsConfig.WriteBufferSize,
		CheckOrigin:     h.checkOrigin,
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "internal.form.delivery.http.HandleWebSocket.Upgrade: %v", err)
		return
	}

	h.l.Infof(ctx, "internal.form.delivery.http.HandleWebSocket: session %s opened", session.ID())
	h.newConnection(conn, session).serve(ctx)
	h.l.Infof(ctx, "internal.form.delivery.http.HandleWebSocket: session %s closed", session.ID())
}

// checkOrigin allows same-host requests, requests without an Origin header and
// any configured origin. "*" allows everything.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.wsConfig.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return strings.EqualFold(strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://"), r.Host)
}
