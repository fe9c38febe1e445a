package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"librental-backend/internal/domain"
	"librental-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	query := `INSERT INTO books (title, author, cover, inventory, daily_fee_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, book.Title, book.Author, book.Cover, book.Inventory, book.DailyFeeCents, time.Now(), time.Now()).Scan(&book.ID)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	book := &domain.Book{}
	query := `SELECT id, title, author, cover, inventory, daily_fee_cents, created_on, updated_on FROM books WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&book.ID, &book.Title, &book.Author, &book.Cover, &book.Inventory, &book.DailyFeeCents, &book.CreatedOn, &book.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (r *bookRepository) Update(ctx context.Context, book *domain.Book) error {
	// Inventory is deliberately not written here; only the ledger
	// operations may move it.
	query := `UPDATE books SET title=$1, author=$2, cover=$3, daily_fee_cents=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, book.Title, book.Author, book.Cover, book.DailyFeeCents, time.Now(), book.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM books`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, title, author, cover, inventory, daily_fee_cents, created_on, updated_on
	          FROM books ORDER BY title ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Cover, &b.Inventory, &b.DailyFeeCents, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, count, rows.Err()
}
