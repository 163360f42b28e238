package reminder

import (
    "context"
    "log"
    "time"

    "github.com/chefgpt/backend/internal/repository"
)

// DueSink receives one notification per (user, task) pair the sweep
// finds due.  The live WebSocket hub and the queue publisher both
// implement it.  Delivery is at-least-once: a task that stays due is
// re-notified on every pass until the user marks it done.
type DueSink interface {
    ReminderDue(ctx context.Context, userID uint64, task TaskKind, nextDue, detectedAt time.Time) error
}

// Sweeper periodically compares the wall clock against every stored
// next-due timestamp and pushes a notification for each task found
// due.  One user's failure never aborts the pass for other users.
type Sweeper struct {
    Reminders *repository.ReminderRepo
    Sinks     []DueSink
    Every     time.Duration
}

func NewSweeper(r *repository.ReminderRepo, every time.Duration, sinks ...DueSink) *Sweeper {
    return &Sweeper{Reminders: r, Sinks: sinks, Every: every}
}

// Run executes the sweep loop until the context is cancelled.  It is
// meant to be started once as a background goroutine from main.
func (s *Sweeper) Run(ctx context.Context) {
    t := time.NewTicker(s.Every)
    defer t.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-t.C:
            s.RunOnce(ctx, time.Now().UTC())
        }
    }
}

// RunOnce performs a single sweep pass as of the given instant.  It is
// exported so the pass can be driven directly with a fixed clock.
func (s *Sweeper) RunOnce(ctx context.Context, now time.Time) {
    due, err := s.Reminders.ListDue(ctx, now)
    if err != nil {
        log.Printf("reminder-sweep: list due failed: %v", err)
        return
    }
    for _, d := range due {
        kind, err := ParseTaskKind(d.Task)
        if err != nil {
            log.Printf("reminder-sweep: user %d: %v", d.UserID, err)
            continue
        }
        for _, sink := range s.Sinks {
            if err := sink.ReminderDue(ctx, d.UserID, kind, d.NextDue, now); err != nil {
                // isolate the failure: the remaining sinks and users
                // still get their notifications
                log.Printf("reminder-sweep: notify user %d task %s failed: %v", d.UserID, kind, err)
            }
        }
    }
}
