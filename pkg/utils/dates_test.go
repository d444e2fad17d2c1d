package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05.03.2025", FormatDate("2025-03-05"))
	assert.Equal(t, "31.12.2024", FormatDate("2024-12-31"))
	// Invalid input passes through
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
}

func TestShiftDate(t *testing.T) {
	d, err := ShiftDate("2025-03-05", 3)
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-08", d)

	d, err = ShiftDate("2025-03-01", -1)
	assert.NoError(t, err)
	assert.Equal(t, "2025-02-28", d)

	_, err = ShiftDate("bad", 1)
	assert.Error(t, err)
}

func TestLastNDays(t *testing.T) {
	dates := LastNDays(7)
	assert.Len(t, dates, 7)
	assert.Equal(t, time.Now().Format("2006-01-02"), dates[6])

	// Consecutive and ascending
	for i := 1; i < len(dates); i++ {
		prev, _ := time.Parse("2006-01-02", dates[i-1])
		curr, _ := time.Parse("2006-01-02", dates[i])
		assert.Equal(t, 24*time.Hour, curr.Sub(prev))
	}
}
