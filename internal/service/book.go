package service

import (
	"context"

	"librental-backend/internal/domain"
	"librental-backend/internal/repository"
)

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) Create(ctx context.Context, actor domain.Actor, book *domain.Book) error {
	if !actor.IsStaff {
		return domain.ErrForbidden
	}
	return s.bookRepo.Create(ctx, book)
}

func (s *bookService) Get(ctx context.Context, id int32) (*domain.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.bookRepo.List(ctx, page, pageSize)
}

func (s *bookService) Update(ctx context.Context, actor domain.Actor, book *domain.Book) error {
	if !actor.IsStaff {
		return domain.ErrForbidden
	}
	return s.bookRepo.Update(ctx, book)
}

func (s *bookService) Delete(ctx context.Context, actor domain.Actor, id int32) error {
	if !actor.IsStaff {
		return domain.ErrForbidden
	}
	return s.bookRepo.Delete(ctx, id)
}
