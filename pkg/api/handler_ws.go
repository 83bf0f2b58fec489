package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to the
// ConnectionManager. Same-host origins are always accepted; additional
// dashboard origins come from the allowed_ws_origins config.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		respondError(c, http.StatusServiceUnavailable, "WebSocket not available")
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.AllowedWSOrigins,
	})
	if err != nil {
		// Accept already wrote the handshake failure response.
		c.Abort()
		return
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
