package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newReminderRepoWithMock(t *testing.T) (*ReminderRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewReminderRepo(db), mock, func() { _ = db.Close() }
}

func TestReminderCreate(t *testing.T) {
	repo, mock, done := newReminderRepoWithMock(t)
	defer done()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	next := now.Add(720 * time.Hour)
	mock.ExpectExec("INSERT INTO reminders").
		WithArgs(uint64(7), now, next, now, next).
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := repo.Create(context.Background(), 7, now, next)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 3 {
		t.Fatalf("want id 3, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReminderCreateDuplicateIsConflict(t *testing.T) {
	repo, mock, done := newReminderRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO reminders").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '7' for key 'reminders.user_id'"))

	if _, err := repo.Create(context.Background(), 7, now, now.Add(time.Hour)); !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestReminderGetByUserNotFound(t *testing.T) {
	repo, mock, done := newReminderRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, user_id, last_cleaned_stove").
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByUser(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestReminderUpdateTaskTouchesOnlyNamedColumns(t *testing.T) {
	repo, mock, done := newReminderRepoWithMock(t)
	defer done()

	last := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	next := last.Add(720 * time.Hour)
	// the statement must name the stove columns and no fridge columns
	mock.ExpectExec(`UPDATE reminders SET last_cleaned_stove=\?, next_due_stove=\? WHERE user_id=\?`).
		WithArgs(last, next, uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateTask(context.Background(), 7, "stove", last, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReminderUpdateTaskMissingRowIsNotFound(t *testing.T) {
	repo, mock, done := newReminderRepoWithMock(t)
	defer done()

	last := time.Now().UTC()
	next := last.Add(time.Hour)
	mock.ExpectExec("UPDATE reminders SET last_cleaned_fridge").
		WithArgs(last, next, uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// zero rows affected triggers a re-check for row existence
	mock.ExpectQuery("SELECT id, user_id, last_cleaned_stove").
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if err := repo.UpdateTask(context.Background(), 9, "fridge", last, next); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestReminderUpdateTaskRejectsUnknownKind(t *testing.T) {
	repo, _, done := newReminderRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	if err := repo.UpdateTask(context.Background(), 1, "dishwasher", now, now); err == nil {
		t.Fatalf("expected error for unknown task")
	}
}

func TestReminderListDue(t *testing.T) {
	repo, mock, done := newReminderRepoWithMock(t)
	defer done()

	asOf := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	due := asOf.Add(-time.Hour)
	mock.ExpectQuery("SELECT user_id, 'stove'").
		WithArgs(asOf, asOf).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "task", "next_due"}).
			AddRow(1, "stove", due).
			AddRow(2, "fridge", asOf))

	got, err := repo.ListDue(context.Background(), asOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 due tasks, got %d", len(got))
	}
	if got[0].UserID != 1 || got[0].Task != "stove" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].UserID != 2 || got[1].Task != "fridge" || !got[1].NextDue.Equal(asOf) {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
}
