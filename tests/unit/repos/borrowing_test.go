package repos

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"librental-backend/internal/domain"
	"librental-backend/internal/repository/postgres"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBorrowingRepository_CreateWithReservation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBorrowingRepository(db)
	ctx := context.Background()

	borrowing := func() *domain.Borrowing {
		return &domain.Borrowing{
			BookID:             2,
			UserID:             7,
			BorrowDate:         day(2026, 3, 10),
			ExpectedReturnDate: day(2026, 3, 14),
		}
	}

	t.Run("Success", func(t *testing.T) {
		b := borrowing()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE books SET inventory = inventory - 1").
			WithArgs(b.BookID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO borrowings").
			WithArgs(b.BookID, b.UserID, b.BorrowDate, b.ExpectedReturnDate).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectCommit()

		err := repo.CreateWithReservation(ctx, b)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), b.ID)
	})

	t.Run("NoCopyAvailableRollsBack", func(t *testing.T) {
		b := borrowing()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE books SET inventory = inventory - 1").
			WithArgs(b.BookID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(b.BookID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		err := repo.CreateWithReservation(ctx, b)
		assert.ErrorIs(t, err, domain.ErrBookUnavailable)
		assert.Zero(t, b.ID)
	})

	t.Run("InsertFailureRollsBackReservation", func(t *testing.T) {
		b := borrowing()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE books SET inventory = inventory - 1").
			WithArgs(b.BookID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO borrowings").
			WithArgs(b.BookID, b.UserID, b.BorrowDate, b.ExpectedReturnDate).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.CreateWithReservation(ctx, b)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBorrowingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBorrowingRepository(db)
	ctx := context.Background()

	columns := []string{"id", "book_id", "user_id", "borrow_date", "expected_return_date", "actual_return_date"}

	t.Run("Active", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM borrowings WHERE id = \\$1").
			WithArgs(int32(11)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(11, 2, 7, day(2026, 3, 10), day(2026, 3, 14), nil))

		b, err := repo.GetByID(ctx, 11)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), b.ID)
		assert.Nil(t, b.ActualReturnDate)
		assert.True(t, b.IsActive())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM borrowings WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBorrowingRepository_MarkReturned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBorrowingRepository(db)
	ctx := context.Background()
	returned := day(2026, 3, 14)

	t.Run("FirstReturnWins", func(t *testing.T) {
		mock.ExpectExec("UPDATE borrowings SET actual_return_date").
			WithArgs(int32(11), returned).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.MarkReturned(ctx, 11, returned)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("SecondReturnLoses", func(t *testing.T) {
		mock.ExpectExec("UPDATE borrowings SET actual_return_date").
			WithArgs(int32(11), returned).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.MarkReturned(ctx, 11, returned)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBorrowingRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBorrowingRepository(db)
	ctx := context.Background()

	columns := []string{"id", "book_id", "user_id", "borrow_date", "expected_return_date", "actual_return_date"}
	mock.ExpectQuery("SELECT (.+) FROM borrowings").
		WithArgs(day(2026, 3, 20)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(11, 2, 7, day(2026, 3, 10), day(2026, 3, 14), nil).
			AddRow(12, 3, 8, day(2026, 3, 12), day(2026, 3, 18), nil))

	overdue, err := repo.ListOverdue(ctx, day(2026, 3, 20))
	assert.NoError(t, err)
	assert.Len(t, overdue, 2)
	assert.Equal(t, int32(11), overdue[0].ID)
}
