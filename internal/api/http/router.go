package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the public surface. The catalog reads and the payment
// provider redirect targets are unauthenticated; everything else sits
// behind the bearer-token middleware.
func NewRouter(
	auth *AuthMiddleware,
	books *BookHandler,
	borrowings *BorrowingHandler,
	payments *PaymentHandler,
	notifications *NotificationHandler,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Public catalog reads.
	r.HandleFunc("/books", books.List).Methods(http.MethodGet)
	r.HandleFunc("/books/{id:[0-9]+}", books.Get).Methods(http.MethodGet)

	// Provider redirect targets. Stripe sends the browser here without our
	// bearer token, so these stay public; confirmation is idempotent and
	// only flips a payment that is still PENDING, so a replayed or stray
	// hit cannot settle anything twice.
	r.HandleFunc("/payments/{borrowing_id:[0-9]+}/success", payments.Success).Methods(http.MethodGet)
	r.HandleFunc("/payments/{borrowing_id:[0-9]+}/success-fine", payments.SuccessFine).Methods(http.MethodGet)
	r.HandleFunc("/payments/{borrowing_id:[0-9]+}/cancel", payments.Cancel).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(auth.Middleware)

	authed.HandleFunc("/books", books.Create).Methods(http.MethodPost)
	authed.HandleFunc("/books/{id:[0-9]+}", books.Update).Methods(http.MethodPut)
	authed.HandleFunc("/books/{id:[0-9]+}", books.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/borrowings", borrowings.Create).Methods(http.MethodPost)
	authed.HandleFunc("/borrowings", borrowings.List).Methods(http.MethodGet)
	authed.HandleFunc("/borrowings/{id:[0-9]+}", borrowings.Get).Methods(http.MethodGet)
	authed.HandleFunc("/borrowings/{id:[0-9]+}/return", borrowings.Return).Methods(http.MethodPost)

	authed.HandleFunc("/payments", payments.List).Methods(http.MethodGet)
	authed.HandleFunc("/payments/{id:[0-9]+}", payments.Get).Methods(http.MethodGet)

	authed.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)

	return r
}
