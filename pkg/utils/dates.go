package utils

import (
	"time"

	"github.com/dietplanner/backend/pkg/constants"
)

// Today returns today's date in storage format (YYYY-MM-DD)
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// FormatDate converts a storage date (YYYY-MM-DD) to display format (DD.MM.YYYY).
// Invalid input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(constants.DisplayDateFormat)
}

// ShiftDate adds days to a storage-format date
func ShiftDate(date string, days int) (string, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(constants.DateFormat), nil
}

// LastNDays returns the last n dates in storage format, oldest first, ending today
func LastNDays(n int) []string {
	dates := make([]string, 0, n)
	now := time.Now()
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, now.AddDate(0, 0, -i).Format(constants.DateFormat))
	}
	return dates
}
