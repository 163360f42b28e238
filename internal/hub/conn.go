package hub

import (
    "encoding/json"
    "log"

    "github.com/gorilla/websocket"

    "github.com/chefgpt/backend/internal/utils"
)

// ServeConn runs one WebSocket connection to completion.  A writer
// goroutine drains the client's send channel while this goroutine
// reads inbound frames; it returns when the peer disconnects, at
// which point the connection is deregistered.
//
// Until the auth handshake succeeds the connection may only send auth
// frames and receives only error events.  The handshake answers how a
// socket becomes associated with a user: the first frame must be an
// `auth` event carrying a valid access token.
func (h *Hub) ServeConn(conn *websocket.Conn) {
    c := h.add()
    defer h.remove(c)

    go func() {
        for ev := range c.send {
            if err := conn.WriteJSON(ev); err != nil {
                return
            }
        }
        _ = conn.Close()
    }()

    for {
        var ev Event
        if err := conn.ReadJSON(&ev); err != nil {
            return
        }
        switch ev.Type {
        case EventAuth:
            h.handleAuth(c, ev)
        case EventButtonClick:
            h.handleButtonClick(c, ev)
        default:
            h.sendError(c, "unknown event type")
        }
    }
}

func (h *Hub) handleAuth(c *client, ev Event) {
    // one identity per connection; switching users means reconnecting
    if c.userID != 0 {
        h.sendError(c, "already authenticated")
        return
    }
    var p AuthPayload
    if err := json.Unmarshal(ev.Data, &p); err != nil || p.Token == "" {
        h.sendError(c, "auth requires a token")
        return
    }
    uid, err := utils.ParseAccess(h.secret, p.Token)
    if err != nil {
        h.sendError(c, "invalid token")
        return
    }
    h.bind(c, uid)
    if ok, err := NewEvent(EventAuthOK, AuthOKPayload{UserID: uid}); err == nil {
        h.trySend(c, ok)
    }
}

func (h *Hub) handleButtonClick(c *client, ev Event) {
    if c.userID == 0 {
        h.sendError(c, "authenticate first")
        return
    }
    var p ButtonClickPayload
    _ = json.Unmarshal(ev.Data, &p)
    log.Printf("hub: button click from user %d: %s", c.userID, string(p.Data))
    resp, err := NewEvent(EventButtonClickResponse, ButtonClickResponse{
        Message: "Button was clicked!",
        Status:  "success",
    })
    if err == nil {
        h.trySend(c, resp)
    }
}

func (h *Hub) sendError(c *client, msg string) {
    if ev, err := NewEvent(EventError, ErrorPayload{Message: msg}); err == nil {
        h.trySend(c, ev)
    }
}
