package utils

import (
	"testing"
	"time"

	"librental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentalAmountCents(t *testing.T) {
	tests := []struct {
		name          string
		dailyFeeCents int32
		today         time.Time
		expected      time.Time
		wantCents     int32
		wantErr       error
	}{
		{
			name:          "four day borrowing charges five days inclusive",
			dailyFeeCents: 1000,
			today:         date(2021, time.January, 1),
			expected:      date(2021, time.January, 5),
			wantCents:     5000,
		},
		{
			name:          "same day return charges one day",
			dailyFeeCents: 250,
			today:         date(2021, time.June, 10),
			expected:      date(2021, time.June, 10),
			wantCents:     250,
		},
		{
			name:          "zero fee book is free",
			dailyFeeCents: 0,
			today:         date(2021, time.June, 10),
			expected:      date(2021, time.June, 20),
			wantCents:     0,
		},
		{
			name:          "return date in the past is rejected",
			dailyFeeCents: 1000,
			today:         date(2021, time.January, 5),
			expected:      date(2021, time.January, 4),
			wantErr:       domain.ErrInvalidReturnDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RentalAmountCents(tt.dailyFeeCents, tt.today, tt.expected)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCents, got)
		})
	}
}

func TestFineAmountCents(t *testing.T) {
	tests := []struct {
		name          string
		dailyFeeCents int32
		expected      time.Time
		actual        time.Time
		percent       int
		wantCents     int32
	}{
		{
			name:          "two days late at 1.5x",
			dailyFeeCents: 1000,
			expected:      date(2021, time.January, 1),
			actual:        date(2021, time.January, 3),
			percent:       150,
			wantCents:     3000,
		},
		{
			name:          "on time return has no fine",
			dailyFeeCents: 1000,
			expected:      date(2021, time.January, 3),
			actual:        date(2021, time.January, 3),
			percent:       150,
			wantCents:     0,
		},
		{
			name:          "early return clamps to zero",
			dailyFeeCents: 1000,
			expected:      date(2021, time.January, 5),
			actual:        date(2021, time.January, 2),
			percent:       150,
			wantCents:     0,
		},
		{
			name:          "half cents round up",
			dailyFeeCents: 333,
			expected:      date(2021, time.January, 1),
			actual:        date(2021, time.January, 2),
			percent:       150,
			wantCents:     500, // 333 * 1.5 = 499.5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FineAmountCents(tt.dailyFeeCents, tt.expected, tt.actual, tt.percent)
			assert.Equal(t, tt.wantCents, got)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 4, DaysBetween(date(2021, time.January, 1), date(2021, time.January, 5)))
	assert.Equal(t, 0, DaysBetween(date(2021, time.January, 5), date(2021, time.January, 5)))
	assert.Equal(t, -3, DaysBetween(date(2021, time.January, 5), date(2021, time.January, 2)))
	// Across a month boundary
	assert.Equal(t, 2, DaysBetween(date(2021, time.February, 28), date(2021, time.March, 2)))
}
