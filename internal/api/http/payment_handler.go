package http

import (
	"net/http"

	"librental-backend/internal/service"
)

type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated", Reason: "unauthenticated"})
		return
	}

	payments, err := h.payments.List(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, toPaymentResponse(&payments[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated", Reason: "unauthenticated"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, "invalid payment id")
		return
	}

	payment, err := h.payments.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// Success is the provider redirect target after a completed rental checkout.
// Idempotent: revisiting the URL after settlement stays 200.
func (h *PaymentHandler) Success(w http.ResponseWriter, r *http.Request) {
	h.confirmSuccess(w, r)
}

// SuccessFine is the redirect target for settled fine sessions. It shares
// the confirmation path; the fine-specific inventory release is keyed off
// the payment kind, not the route.
func (h *PaymentHandler) SuccessFine(w http.ResponseWriter, r *http.Request) {
	h.confirmSuccess(w, r)
}

func (h *PaymentHandler) confirmSuccess(w http.ResponseWriter, r *http.Request) {
	borrowingID, err := pathID(r, "borrowing_id")
	if err != nil {
		writeValidationError(w, "invalid borrowing id")
		return
	}

	if err := h.payments.ConfirmSuccess(r.Context(), borrowingID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "payment successful, thank you"})
}

// Cancel is the provider redirect target when the user backs out of
// checkout. The session stays open for a retry until it expires.
func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	borrowingID, err := pathID(r, "borrowing_id")
	if err != nil {
		writeValidationError(w, "invalid borrowing id")
		return
	}

	if err := h.payments.ConfirmCancel(r.Context(), borrowingID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "payment can be completed later; the session stays open for 24 hours"})
}
