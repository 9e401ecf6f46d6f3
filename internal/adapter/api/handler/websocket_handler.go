package handler

import (
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"campusvoice/internal/infrastructure/websocket"
)

// WebSocketHandler upgrades authenticated connections into notification
// clients. Browsers cannot set headers on websocket dials, so the token
// rides in a query parameter.
type WebSocketHandler struct {
	manager    *websocket.Manager
	authClient *fbauth.Client
	upgrader   gorilla.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager, authClient *fbauth.Client) *WebSocketHandler {
	return &WebSocketHandler{
		manager:    manager,
		authClient: authClient,
		upgrader: gorilla.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is required")
	}

	decoded, err := h.authClient.VerifyIDToken(c.Request().Context(), token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &websocket.Client{
		UserID: decoded.UID,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}

	h.manager.Register <- client
	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
