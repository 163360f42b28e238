package hub

import (
    "context"
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/chefgpt/backend/internal/reminder"
)

// client is one live connection.  Events destined for it go through
// the buffered send channel; the connection's writer goroutine drains
// it.  userID stays zero until the auth handshake succeeds.
type client struct {
    id     string
    userID uint64
    send   chan Event
}

// sendBuffer bounds how many undelivered events a single connection
// may queue before the hub starts dropping events to it.
const sendBuffer = 32

// Hub is the connection registry.  It is read (fan-out) and written
// (connect/disconnect) concurrently from every connection goroutine
// and from the reminder sweep, so every access to the maps holds mu.
type Hub struct {
    secret string // JWT secret for the auth handshake

    mu      sync.RWMutex
    clients map[string]*client
    users   map[uint64]map[string]*client
}

// New returns an empty hub verifying handshakes against jwtSecret.
func New(jwtSecret string) *Hub {
    return &Hub{
        secret:  jwtSecret,
        clients: make(map[string]*client),
        users:   make(map[uint64]map[string]*client),
    }
}

// add registers a fresh, unauthenticated connection.
func (h *Hub) add() *client {
    c := &client{id: uuid.New().String(), send: make(chan Event, sendBuffer)}
    h.mu.Lock()
    h.clients[c.id] = c
    h.mu.Unlock()
    return c
}

// bind associates an authenticated connection with its user so
// user-addressed events reach it.  A connection bound to another user
// is detached from that user first; a stale entry left behind would
// let a later SendToUser write to a send channel that remove has
// already closed.
func (h *Hub) bind(c *client, userID uint64) {
    h.mu.Lock()
    defer h.mu.Unlock()
    if c.userID != 0 && c.userID != userID {
        if conns := h.users[c.userID]; conns != nil {
            delete(conns, c.id)
            if len(conns) == 0 {
                delete(h.users, c.userID)
            }
        }
    }
    c.userID = userID
    conns := h.users[userID]
    if conns == nil {
        conns = make(map[string]*client)
        h.users[userID] = conns
    }
    conns[c.id] = c
}

// remove deregisters a connection.  The user association is cleaned up
// in the same critical section so a disconnect can never leak a stale
// entry, and the send channel is closed to stop the writer goroutine.
func (h *Hub) remove(c *client) {
    h.mu.Lock()
    defer h.mu.Unlock()
    if _, ok := h.clients[c.id]; !ok {
        return
    }
    delete(h.clients, c.id)
    if c.userID != 0 {
        if conns := h.users[c.userID]; conns != nil {
            delete(conns, c.id)
            if len(conns) == 0 {
                delete(h.users, c.userID)
            }
        }
    }
    close(c.send)
}

// trySend queues an event for one connection without blocking.  A
// connection whose buffer is full simply misses the event; one slow
// client must not stall delivery to the rest.
func (h *Hub) trySend(c *client, ev Event) bool {
    select {
    case c.send <- ev:
        return true
    default:
        return false
    }
}

// SendToUser queues an event for every connection of one user and
// returns how many connections accepted it.  A user with no live
// connections receives nothing; that is not an error.
func (h *Hub) SendToUser(userID uint64, ev Event) int {
    h.mu.RLock()
    defer h.mu.RUnlock()
    n := 0
    for _, c := range h.users[userID] {
        if h.trySend(c, ev) {
            n++
        }
    }
    return n
}

// Broadcast queues an event for every live connection, authenticated
// or not, and returns how many accepted it.
func (h *Hub) Broadcast(ev Event) int {
    h.mu.RLock()
    defer h.mu.RUnlock()
    n := 0
    for _, c := range h.clients {
        if h.trySend(c, ev) {
            n++
        }
    }
    return n
}

// ReminderDue implements reminder.DueSink: a due task becomes a
// reminder_due push to all of the owning user's connections.
func (h *Hub) ReminderDue(_ context.Context, userID uint64, task reminder.TaskKind, nextDue, _ time.Time) error {
    ev, err := NewEvent(EventReminderDue, ReminderDuePayload{
        UserID:  userID,
        Task:    task.String(),
        NextDue: nextDue,
    })
    if err != nil {
        return err
    }
    h.SendToUser(userID, ev)
    return nil
}
