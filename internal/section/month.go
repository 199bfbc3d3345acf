package section

import (
	"errors"
	"fmt"
)

// ErrMonthOutOfRange is returned when a month index falls outside 1..12.
var ErrMonthOutOfRange = errors.New("month index out of range")

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Months returns the canonical month names in calendar order.
func Months() []string {
	out := make([]string, len(months))
	copy(out, months[:])
	return out
}

// MonthName maps a 1-based index to its month name.
func MonthName(index int) (string, error) {
	if index < 1 || index > len(months) {
		return "", fmt.Errorf("%w: %d (want 1-%d)", ErrMonthOutOfRange, index, len(months))
	}
	return months[index-1], nil
}

// MonthIndex is the inverse of MonthName.
func MonthIndex(name string) (int, bool) {
	for i, m := range months {
		if m == name {
			return i + 1, true
		}
	}
	return 0, false
}
