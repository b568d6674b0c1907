package validate

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalid = errors.New("invalid")

// PIN trims and checks the candidate: all decimal digits, length 4 or 6.
// Returns the canonical (trimmed) string.
func PIN(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 6 {
		return "", errors.New("pin must be 4 or 6 digits long")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return "", errors.New("pin must contain only decimal digits")
		}
	}
	return s, nil
}

// Date parses a strict YYYY-MM-DD value. Empty input is not an error: it
// yields the zero time, meaning "date not supplied".
func Date(name, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.New(name + " must be a calendar date in YYYY-MM-DD form")
	}
	return d, nil
}
