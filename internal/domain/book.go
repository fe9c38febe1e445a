package domain

type BookCover string

const (
	BookCoverHard BookCover = "HARD"
	BookCoverSoft BookCover = "SOFT"
)

// Book is catalog data. Inventory is the denormalized count of copies
// currently available for borrowing; it is mutated only through the
// inventory ledger operations, never written directly.
type Book struct {
	ID            int32     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Cover         BookCover `json:"cover"`
	Inventory     int32     `json:"inventory"`
	DailyFeeCents int32     `json:"daily_fee_cents"`
	CreatedOn     string    `json:"created_on"`
	UpdatedOn     string    `json:"updated_on"`
}
