package reminder

import (
    "context"
    "time"

    "github.com/chefgpt/backend/internal/model"
    "github.com/chefgpt/backend/internal/repository"
)

// State is a user's full reminder schedule, one TaskState per kind.
type State struct {
    Stove  TaskState
    Fridge TaskState
}

// Task returns the schedule of one kind.
func (s State) Task(k TaskKind) TaskState {
    if k == Fridge {
        return s.Fridge
    }
    return s.Stove
}

// Service owns reminder persistence.  The interval is injected from
// configuration rather than hardcoded so deployments can tune how
// often cleaning comes due.
type Service struct {
    Reminders *repository.ReminderRepo
    Interval  time.Duration
}

func NewService(r *repository.ReminderRepo, interval time.Duration) *Service {
    return &Service{Reminders: r, Interval: interval}
}

// Create initializes the user's reminder with both tasks cleaned now
// and due one interval out, so a freshly created reminder is never
// immediately due.  Creation is create-if-absent: when the user
// already owns a reminder row the existing schedule is returned
// unchanged instead of forking a second one.
func (s *Service) Create(ctx context.Context, userID uint64) (State, error) {
    now := time.Now().UTC()
    _, err := s.Reminders.Create(ctx, userID, now, now.Add(s.Interval))
    if err != nil && err != repository.ErrConflict {
        return State{}, err
    }
    rem, err := s.Reminders.GetByUser(ctx, userID)
    if err != nil {
        return State{}, err
    }
    return fromModel(rem), nil
}

// Get returns the user's current schedule.  A user without a reminder
// row yields repository.ErrNotFound.
func (s *Service) Get(ctx context.Context, userID uint64) (State, error) {
    rem, err := s.Reminders.GetByUser(ctx, userID)
    if err != nil {
        return State{}, err
    }
    return fromModel(rem), nil
}

// MarkDone records that the user cleaned one task: its last cleaned
// becomes now and its next due moves a full interval out.  The other
// task's schedule is untouched.  The write is durable before the new
// state is returned, so a sweep running right after success sees the
// advanced schedule.
func (s *Service) MarkDone(ctx context.Context, userID uint64, kind TaskKind) (State, error) {
    next := Advance(time.Now().UTC(), s.Interval)
    if err := s.Reminders.UpdateTask(ctx, userID, kind.String(), next.LastCleaned, next.NextDue); err != nil {
        return State{}, err
    }
    rem, err := s.Reminders.GetByUser(ctx, userID)
    if err != nil {
        return State{}, err
    }
    return fromModel(rem), nil
}

func fromModel(rem model.Reminder) State {
    return State{
        Stove:  TaskState{LastCleaned: rem.LastCleanedStove, NextDue: rem.NextDueStove},
        Fridge: TaskState{LastCleaned: rem.LastCleanedFridge, NextDue: rem.NextDueFridge},
    }
}
