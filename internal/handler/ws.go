package handler

import (
    "net/http"

    "github.com/gorilla/websocket"
    "github.com/labstack/echo/v4"

    "github.com/chefgpt/backend/internal/hub"
)

// WSHandler upgrades HTTP requests to WebSocket connections and hands
// them to the notification hub.
type WSHandler struct {
    Hub *hub.Hub
}

func NewWSHandler(h *hub.Hub) *WSHandler { return &WSHandler{Hub: h} }

var upgrader = websocket.Upgrader{
    ReadBufferSize:  1024,
    WriteBufferSize: 1024,
    // browser clients connect from the app's own origin or local dev
    // servers; per-connection auth happens in the hub handshake
    CheckOrigin: func(*http.Request) bool { return true },
}

// Serve upgrades the request and runs the connection to completion.
func (h *WSHandler) Serve(c echo.Context) error {
    conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
    if err != nil {
        return err
    }
    h.Hub.ServeConn(conn)
    return nil
}
