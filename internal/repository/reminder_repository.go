package repository

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    "github.com/chefgpt/backend/internal/model"
)

// ReminderRepo persists per-user cleaning reminders.  Each user owns
// at most one row; the user_id column carries a UNIQUE constraint so
// a second create fails with ErrConflict instead of silently forking
// the schedule into two rows.
type ReminderRepo struct {
    db *sql.DB
}

// NewReminderRepo returns a new ReminderRepo bound to the given database.
func NewReminderRepo(db *sql.DB) *ReminderRepo { return &ReminderRepo{db: db} }

// DueTask is one (user, task) pair whose next_due timestamp has been
// reached.  Task holds the raw column discriminator ("stove" or
// "fridge"); the reminder package parses it into a typed kind.
type DueTask struct {
    UserID  uint64
    Task    string
    NextDue time.Time
}

// Create inserts the single reminder row for a user with both task
// schedules initialized to the same timestamps.  A duplicate user
// yields ErrConflict; a missing user yields ErrNotFound.
func (r *ReminderRepo) Create(ctx context.Context, userID uint64, lastCleaned, nextDue time.Time) (uint64, error) {
    const q = `INSERT INTO reminders (user_id, last_cleaned_stove, next_due_stove, last_cleaned_fridge, next_due_fridge)
VALUES (?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, userID, lastCleaned, nextDue, lastCleaned, nextDue)
    if err != nil {
        if isDuplicate(err) {
            return 0, ErrConflict
        }
        if isFKViolation(err) {
            return 0, ErrNotFound
        }
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// GetByUser fetches the reminder row owned by one user.  Missing rows
// yield ErrNotFound.
func (r *ReminderRepo) GetByUser(ctx context.Context, userID uint64) (model.Reminder, error) {
    const q = `SELECT id, user_id, last_cleaned_stove, next_due_stove, last_cleaned_fridge, next_due_fridge, created_at, updated_at
FROM reminders WHERE user_id = ? LIMIT 1`
    var rem model.Reminder
    err := r.db.QueryRowContext(ctx, q, userID).Scan(
        &rem.ID, &rem.UserID,
        &rem.LastCleanedStove, &rem.NextDueStove,
        &rem.LastCleanedFridge, &rem.NextDueFridge,
        &rem.CreatedAt, &rem.UpdatedAt)
    if err == sql.ErrNoRows {
        return model.Reminder{}, ErrNotFound
    }
    return rem, err
}

// UpdateTask rewrites one task's schedule columns for a user, leaving
// the other task untouched.  The update must be durable before the
// caller reports success, so this runs as a single atomic statement.
// A user without a reminder row yields ErrNotFound.
func (r *ReminderRepo) UpdateTask(ctx context.Context, userID uint64, task string, lastCleaned, nextDue time.Time) error {
    var q string
    switch task {
    case "stove":
        q = "UPDATE reminders SET last_cleaned_stove=?, next_due_stove=? WHERE user_id=?"
    case "fridge":
        q = "UPDATE reminders SET last_cleaned_fridge=?, next_due_fridge=? WHERE user_id=?"
    default:
        return fmt.Errorf("unknown reminder task %q", task)
    }
    res, err := r.db.ExecContext(ctx, q, lastCleaned, nextDue, userID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        // either no reminder row exists, or the schedule already holds
        // these exact timestamps; re-check so a no-op update is not
        // misreported as a missing row
        if _, err := r.GetByUser(ctx, userID); err != nil {
            return err
        }
    }
    return nil
}

// ListDue returns every (user, task) pair whose next_due timestamp is
// at or before asOf.  The boundary is inclusive: a task whose next_due
// equals asOf is due.
func (r *ReminderRepo) ListDue(ctx context.Context, asOf time.Time) ([]DueTask, error) {
    const q = `SELECT user_id, 'stove' AS task, next_due_stove AS next_due FROM reminders WHERE next_due_stove <= ?
UNION ALL
SELECT user_id, 'fridge' AS task, next_due_fridge AS next_due FROM reminders WHERE next_due_fridge <= ?
ORDER BY next_due`
    rows, err := r.db.QueryContext(ctx, q, asOf, asOf)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []DueTask
    for rows.Next() {
        var d DueTask
        if err := rows.Scan(&d.UserID, &d.Task, &d.NextDue); err != nil {
            return nil, err
        }
        out = append(out, d)
    }
    return out, rows.Err()
}
