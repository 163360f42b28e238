// Package reminder maintains per-user recurring cleaning schedules.
// Each user tracks two independent task kinds (stove, fridge).  A task
// holds a (last cleaned, next due) pair; it becomes due purely as a
// function of wall-clock time crossing next due, and only marking the
// task done moves the schedule forward.
package reminder

import (
    "fmt"
    "time"
)

// TaskKind names one of the maintenance categories a reminder tracks.
type TaskKind string

const (
    Stove  TaskKind = "stove"
    Fridge TaskKind = "fridge"
)

// Kinds lists every task kind in a stable order.
var Kinds = []TaskKind{Stove, Fridge}

// ParseTaskKind validates a raw task name from a route parameter or
// queue payload.
func ParseTaskKind(s string) (TaskKind, error) {
    switch TaskKind(s) {
    case Stove:
        return Stove, nil
    case Fridge:
        return Fridge, nil
    }
    return "", fmt.Errorf("unknown task kind %q", s)
}

func (k TaskKind) String() string { return string(k) }

// TaskState is the schedule of a single task kind.
type TaskState struct {
    LastCleaned time.Time
    NextDue     time.Time
}

// IsDue reports whether the task is due at the given instant.  The
// boundary is inclusive: a task whose NextDue equals now is due.
func IsDue(s TaskState, now time.Time) bool {
    return !now.Before(s.NextDue)
}

// Advance returns the schedule after the task is cleaned at now: last
// cleaned becomes now and next due moves a full interval out.  There
// is no other way for a schedule to move; the clock never advances a
// task on its own.
func Advance(now time.Time, interval time.Duration) TaskState {
    return TaskState{LastCleaned: now, NextDue: now.Add(interval)}
}
