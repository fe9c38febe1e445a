package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"librental-backend/internal/service"
	"librental-backend/internal/utils"
)

type BorrowingHandler struct {
	borrowings service.BorrowingService
}

func NewBorrowingHandler(borrowings service.BorrowingService) *BorrowingHandler {
	return &BorrowingHandler{borrowings: borrowings}
}

func (h *BorrowingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated", Reason: "unauthenticated"})
		return
	}

	var req CreateBorrowingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	if req.BookID == 0 {
		writeValidationError(w, "book_id is required")
		return
	}
	expectedReturn, err := utils.ParseDate(req.ExpectedReturnDate)
	if err != nil {
		writeValidationError(w, "expected_return_date must be yyyy-mm-dd")
		return
	}

	borrowing, payment, err := h.borrowings.Create(r.Context(), actor, req.BookID, expectedReturn, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateBorrowingResponse{
		Borrowing: toBorrowingResponse(borrowing),
		Payment:   toPaymentResponse(payment),
	})
}

func (h *BorrowingHandler) Return(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated", Reason: "unauthenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, "invalid borrowing id")
		return
	}

	outcome, finePayment, err := h.borrowings.Return(r.Context(), actor, id, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	borrowing, err := h.borrowings.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ReturnBorrowingResponse{
		Outcome:   string(outcome),
		Borrowing: toBorrowingResponse(borrowing),
	}
	if finePayment != nil {
		p := toPaymentResponse(finePayment)
		resp.FinePayment = &p
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BorrowingHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated", Reason: "unauthenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, "invalid borrowing id")
		return
	}

	borrowing, err := h.borrowings.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBorrowingResponse(borrowing))
}

func (h *BorrowingHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated", Reason: "unauthenticated"})
		return
	}

	var filterUserID int32
	if v := r.URL.Query().Get("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			writeValidationError(w, "invalid user_id filter")
			return
		}
		filterUserID = int32(id)
	}
	activeOnly := r.URL.Query().Get("is_active") == "true"

	borrowings, err := h.borrowings.List(r.Context(), actor, filterUserID, activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]BorrowingResponse, 0, len(borrowings))
	for i := range borrowings {
		resp = append(resp, toBorrowingResponse(&borrowings[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func pathID(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
