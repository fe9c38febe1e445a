package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"librental-backend/internal/domain"
	"librental-backend/internal/service"
)

type BookHandler struct {
	books service.BookService
}

func NewBookHandler(books service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", 20)

	books, total, err := h.books.List(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := BookListResponse{Books: make([]BookResponse, 0, len(books)), Total: total}
	for i := range books {
		resp.Books = append(resp.Books, toBookResponse(&books[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, "invalid book id")
		return
	}

	book, err := h.books.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated", Reason: "unauthenticated"})
		return
	}

	req, ok := decodeBookRequest(w, r)
	if !ok {
		return
	}

	book := &domain.Book{
		Title:         req.Title,
		Author:        req.Author,
		Cover:         domain.BookCover(req.Cover),
		Inventory:     req.Inventory,
		DailyFeeCents: req.DailyFeeCents,
	}
	if err := h.books.Create(r.Context(), actor, book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookResponse(book))
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated", Reason: "unauthenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, "invalid book id")
		return
	}

	req, ok := decodeBookRequest(w, r)
	if !ok {
		return
	}

	book := &domain.Book{
		ID:            id,
		Title:         req.Title,
		Author:        req.Author,
		Cover:         domain.BookCover(req.Cover),
		DailyFeeCents: req.DailyFeeCents,
	}
	if err := h.books.Update(r.Context(), actor, book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated", Reason: "unauthenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, "invalid book id")
		return
	}

	if err := h.books.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func decodeBookRequest(w http.ResponseWriter, r *http.Request) (BookRequest, bool) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return req, false
	}
	if req.Title == "" || req.Author == "" {
		writeValidationError(w, "title and author are required")
		return req, false
	}
	if req.Cover != string(domain.BookCoverHard) && req.Cover != string(domain.BookCoverSoft) {
		writeValidationError(w, "cover must be HARD or SOFT")
		return req, false
	}
	if req.Inventory < 0 || req.DailyFeeCents < 0 {
		writeValidationError(w, "inventory and daily_fee_cents must be non-negative")
		return req, false
	}
	return req, true
}

func queryInt(r *http.Request, name string, fallback int32) int32 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}
