package survey

import (
	"strconv"
	"unicode"
)

// ParseOrdinal extracts the leading integer token of a rating label such as
// "4 (Good)". The token must be followed by the end of the label, whitespace or an
// opening parenthesis, so "5th" and "Yes" are rejected.
func ParseOrdinal(label string) (int, error) {
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, &UnparsableOrdinalError{Label: label}
	}
	if end < len(label) {
		next := rune(label[end])
		if !unicode.IsSpace(next) && next != '(' {
			return 0, &UnparsableOrdinalError{Label: label}
		}
	}
	n, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0, &UnparsableOrdinalError{Label: label}
	}
	return n, nil
}
