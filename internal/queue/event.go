// Package queue defines the payloads exchanged over the message broker
// and the background consumer that turns reminder.due messages into an
// append-only audit log under logs/reminder.log.
package queue

// ReminderDueEvent is published each time the due sweep finds a cleaning
// task at or past its next-due timestamp. It contains enough information
// for downstream consumers to log, notify, or trigger analytics without
// querying the primary database.
type ReminderDueEvent struct {
    UserID     uint64 `json:"user_id"`
    Task       string `json:"task"`
    NextDue    string `json:"next_due"`
    DetectedAt string `json:"detected_at"`
}
