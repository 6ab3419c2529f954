// Package calculator sums delimiter-separated integers encoded in a string.
//
// Input uses either the default delimiters (comma and newline, freely mixed) or a
// single custom delimiter declared by a "//<delim>\n" header:
//
//	calculator.Add("1\n2,3")   // 6
//	calculator.Add("//;\n1;2") // 3
//
// Negative operands are rejected with a *NegativeOperandError listing every
// negative found.
package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	headerPrefix = "//"
	headerEnd    = "\n"
)

// defaultDelimiters apply when the input has no custom delimiter header.
var defaultDelimiters = []string{",", "\n"}

// DefaultDelimiters returns the delimiters used when the input has no header.
func DefaultDelimiters() []string {
	return append([]string(nil), defaultDelimiters...)
}

// Expression is an input split into its delimiters and raw tokens.
type Expression struct {
	delimiters []string
	tokens     []string
	custom     bool
}

// Add parses input and returns the sum of its operands.
func Add(input string) (int, error) {
	expr, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return expr.Sum()
}

// Parse splits input into tokens without interpreting them.
// An empty input, or a header followed by an empty body, yields zero tokens.
func Parse(input string) (Expression, error) {
	if input == "" {
		return Expression{delimiters: defaultDelimiters}, nil
	}

	if !strings.HasPrefix(input, headerPrefix) {
		return Expression{
			delimiters: defaultDelimiters,
			tokens:     splitAny(input, defaultDelimiters),
		}, nil
	}

	end := strings.Index(input, headerEnd)
	if end < 0 {
		return Expression{}, &ParseError{Input: input, Reason: "delimiter header is missing its terminating newline"}
	}
	delim := input[len(headerPrefix):end]
	if delim == "" {
		return Expression{}, &ParseError{Input: input, Reason: "delimiter header declares an empty delimiter"}
	}

	body := input[end+len(headerEnd):]
	expr := Expression{delimiters: []string{delim}, custom: true}
	if body != "" {
		expr.tokens = strings.Split(body, delim)
	}
	return expr, nil
}

// Sum parses every token and adds the non-negative operands.
//
// Errors are reported in order of precedence: the first malformed token, then
// all negatives, then overflow. Every token is examined before negatives or
// overflow are reported.
func (e Expression) Sum() (int, error) {
	sum := 0
	var negatives []string
	var overflow error

	for i, tok := range e.tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, &FormatError{Token: tok, Position: i + 1, Err: err}
		}
		if n < 0 {
			negatives = append(negatives, tok)
			continue
		}
		if overflow != nil {
			continue
		}
		if sum > math.MaxInt-n {
			overflow = fmt.Errorf("adding %q at position %d: %w", tok, i+1, ErrOverflow)
			continue
		}
		sum += n
	}

	if len(negatives) > 0 {
		return 0, &NegativeOperandError{Operands: negatives}
	}
	if overflow != nil {
		return 0, overflow
	}
	return sum, nil
}

// Custom reports whether the delimiter was declared by a header.
func (e Expression) Custom() bool {
	return e.custom
}

// Delimiters returns the delimiters in effect.
func (e Expression) Delimiters() []string {
	return append([]string(nil), e.delimiters...)
}

// Tokens returns the raw tokens in input order.
func (e Expression) Tokens() []string {
	return append([]string(nil), e.tokens...)
}

// splitAny splits s at every occurrence of any of seps, keeping empty tokens
// between adjacent delimiters.
func splitAny(s string, seps []string) []string {
	var tokens []string
	start := 0
	for i := 0; i < len(s); {
		matched := ""
		for _, sep := range seps {
			if strings.HasPrefix(s[i:], sep) {
				matched = sep
				break
			}
		}
		if matched == "" {
			i++
			continue
		}
		tokens = append(tokens, s[start:i])
		i += len(matched)
		start = i
	}
	return append(tokens, s[start:])
}
