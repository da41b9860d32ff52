package domain

import (
	"fmt"
	"strconv"
)

// Day is a puzzle day number, valid in [1, 25]. Days are addressed within a
// partition, never globally.
type Day int

func ParseDay(raw string) (Day, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: expected a number between 1 and 25", raw)
	}

	day := Day(n)
	if !day.Valid() {
		return 0, fmt.Errorf("invalid day %d: must be between 1 and 25", n)
	}

	return day, nil
}

func (d Day) Valid() bool {
	return d >= 1 && d <= 25
}

// Padded returns the zero-padded two-digit form used in all filenames.
func (d Day) Padded() string {
	return fmt.Sprintf("%02d", int(d))
}

func (d Day) String() string {
	return strconv.Itoa(int(d))
}
