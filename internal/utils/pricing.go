package utils

import (
	"fmt"
	"time"

	"librental-backend/internal/domain"
)

// All monetary amounts are integer cents. Fee math never touches floating
// point so repeated calculations cannot drift.

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from one date to another.
// The result is negative when `to` is before `from`.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// ParseDate converts a yyyy-mm-dd formatted string into a date
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %v", err)
	}
	return t, nil
}

// FormatDate renders a date as yyyy-mm-dd
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// RentalAmountCents computes the upfront rental fee for a borrowing. The
// borrow day itself is charged, so a same-day return still costs one day.
func RentalAmountCents(dailyFeeCents int32, today, expectedReturn time.Time) (int32, error) {
	days := DaysBetween(today, expectedReturn)
	if days < 0 {
		return 0, domain.ErrInvalidReturnDate
	}
	return int32(int64(days+1) * int64(dailyFeeCents)), nil
}

// FineAmountCents computes the late-return fine: one multiplied daily fee per
// day past the expected return, rounded half up to whole cents. Returns 0
// when the book came back on time or early.
func FineAmountCents(dailyFeeCents int32, expectedReturn, actualReturn time.Time, multiplierPercent int) int32 {
	lateDays := DaysBetween(expectedReturn, actualReturn)
	if lateDays <= 0 {
		return 0
	}
	total := int64(lateDays) * int64(dailyFeeCents) * int64(multiplierPercent)
	return int32((total + 50) / 100)
}
