package calculator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrOverflow is returned when the running sum no longer fits in an int.
var ErrOverflow = errors.New("sum overflows int")

// NegativeOperandError reports every negative operand found in an input.
type NegativeOperandError struct {
	// Operands holds the negative tokens as written, in encounter order.
	Operands []string
}

func (e *NegativeOperandError) Error() string {
	return "Negative numbers not allowed: " + strings.Join(e.Operands, ", ")
}

// FormatError reports a token that is not a base-10 integer.
type FormatError struct {
	Token    string
	Position int // 1-based
	Err      error
}

func (e *FormatError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid number at position %d: empty token", e.Position)
	}
	return fmt.Sprintf("invalid number %q at position %d", e.Token, e.Position)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed custom delimiter header.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed header in %q: %s", truncate(e.Input, maxQuotedInput), e.Reason)
}

const maxQuotedInput = 32

// truncate shortens s to at most n bytes, marking the cut with "...".
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
