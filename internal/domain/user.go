package domain

// User is owned by the external user/auth service; this backend only reads
// it for display and notification addressing.
type User struct {
	ID      int32  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsStaff bool   `json:"is_staff"`
}

// Actor is the authenticated identity a request acts as. It is passed
// explicitly into every service operation instead of living in request
// context or global state.
type Actor struct {
	UserID  int32
	IsStaff bool
}
