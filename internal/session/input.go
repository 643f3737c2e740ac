package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"freqnote/internal/pitch"
)

// ErrParse is returned when the input buffer does not hold a number.
var ErrParse = errors.New("not a number")

// InputBuffer collects the characters of a frequency being typed. It accepts
// digits and at most one decimal point.
type InputBuffer struct {
	text []rune
}

// Insert appends r if it is allowed and reports whether it was taken.
func (b *InputBuffer) Insert(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
	case r == '.' && !strings.ContainsRune(string(b.text), '.'):
	default:
		return false
	}
	b.text = append(b.text, r)
	return true
}

// Backspace drops the last character, if any.
func (b *InputBuffer) Backspace() {
	if len(b.text) > 0 {
		b.text = b.text[:len(b.text)-1]
	}
}

// Clear empties the buffer.
func (b *InputBuffer) Clear() {
	b.text = nil
}

func (b InputBuffer) String() string {
	return string(b.text)
}

// ParseFrequency reads s as a float, falling back to an unsigned integer,
// and rejects values that have no pitch.
func ParseFrequency(s string) (float64, error) {
	freq, err := strconv.ParseFloat(s, 64)
	if err != nil {
		u, uerr := strconv.ParseUint(s, 10, 32)
		if uerr != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrParse)
		}
		freq = float64(u)
	}
	if err := pitch.Validate(freq); err != nil {
		return 0, err
	}
	return freq, nil
}
