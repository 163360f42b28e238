package model

import "time"

// Reminder mirrors a row of the `reminders` table.  Each user owns at
// most one reminder row (user_id carries a UNIQUE constraint) holding
// two independent maintenance schedules, one for the stove and one
// for the fridge.  A task's next_due column is always last_cleaned
// plus the configured reminder interval; it only moves forward when
// the user marks the task done.
//
// Fields:
//  ID                – primary key identifier.
//  UserID            – owning user (unique).
//  LastCleanedStove  – when the stove was last cleaned.
//  NextDueStove      – when the stove cleaning comes due again.
//  LastCleanedFridge – when the fridge was last cleaned.
//  NextDueFridge     – when the fridge cleaning comes due again.
//  CreatedAt         – creation timestamp.
//  UpdatedAt         – timestamp of last update.
type Reminder struct {
    ID                uint64    // reminders.id
    UserID            uint64    // reminders.user_id
    LastCleanedStove  time.Time // reminders.last_cleaned_stove
    NextDueStove      time.Time // reminders.next_due_stove
    LastCleanedFridge time.Time // reminders.last_cleaned_fridge
    NextDueFridge     time.Time // reminders.next_due_fridge
    CreatedAt         time.Time // reminders.created_at
    UpdatedAt         time.Time // reminders.updated_at
}
