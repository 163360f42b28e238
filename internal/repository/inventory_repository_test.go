package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newInventoryRepoWithMock(t *testing.T) (*InventoryRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewInventoryRepo(db), mock, func() { _ = db.Close() }
}

func TestAddItemsOneRowPerIngredient(t *testing.T) {
	repo, mock, done := newInventoryRepoWithMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO inventory").
		WithArgs(uint64(7), "egg").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO inventory").
		WithArgs(uint64(7), "milk").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	if err := repo.AddItems(context.Background(), 7, []string{"egg", "milk"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddItemsSkipsBlankNames(t *testing.T) {
	repo, mock, done := newInventoryRepoWithMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO inventory").
		WithArgs(uint64(7), "egg").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.AddItems(context.Background(), 7, []string{"  ", "egg", ""}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddItemsUnknownUserRollsBack(t *testing.T) {
	repo, mock, done := newInventoryRepoWithMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO inventory").
		WithArgs(uint64(99), "egg").
		WillReturnError(errors.New("Error 1452 (23000): Cannot add or update a child row: a foreign key constraint fails"))
	mock.ExpectRollback()

	if err := repo.AddItems(context.Background(), 99, []string{"egg", "milk"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
