// Package hub maintains the live WebSocket connections of the
// application and fans events out to them.  One user may hold any
// number of simultaneous connections (multiple devices); events
// addressed to a user reach every one of them.
package hub

import (
    "encoding/json"
    "time"
)

// Event is the tagged envelope exchanged over a socket in both
// directions.  Type discriminates the payload carried in Data.
type Event struct {
    Type string          `json:"type"`
    Data json.RawMessage `json:"data,omitempty"`
}

// Event types understood by the hub.  auth and button_click are
// client-originated; the rest are pushed by the server.
const (
    EventAuth                = "auth"
    EventAuthOK              = "auth_ok"
    EventError               = "error"
    EventButtonClick         = "button_click"
    EventButtonClickResponse = "button_click_response"
    EventReminderDue         = "reminder_due"
)

// AuthPayload carries the access token of the handshake frame.  A
// connection is anonymous until this frame arrives and verifies.
type AuthPayload struct {
    Token string `json:"token"`
}

// AuthOKPayload acknowledges a successful handshake.
type AuthOKPayload struct {
    UserID uint64 `json:"user_id"`
}

// ButtonClickPayload is the free-form data a client attaches to a UI
// interaction event.
type ButtonClickPayload struct {
    Data json.RawMessage `json:"data,omitempty"`
}

// ButtonClickResponse is the synchronous acknowledgement sent back on
// the same connection.
type ButtonClickResponse struct {
    Message string `json:"message"`
    Status  string `json:"status"`
}

// ReminderDuePayload is pushed to every connection of a user whose
// cleaning task has come due.
type ReminderDuePayload struct {
    UserID  uint64    `json:"user_id"`
    Task    string    `json:"task_kind"`
    NextDue time.Time `json:"next_due"`
}

// ErrorPayload reports a per-connection protocol error.
type ErrorPayload struct {
    Message string `json:"message"`
}

// NewEvent wraps a payload into a typed envelope.
func NewEvent(typ string, payload any) (Event, error) {
    if payload == nil {
        return Event{Type: typ}, nil
    }
    data, err := json.Marshal(payload)
    if err != nil {
        return Event{}, err
    }
    return Event{Type: typ, Data: data}, nil
}
