package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pengelbrecht/strcalc/internal/calculator"
	"github.com/pengelbrecht/strcalc/internal/styles"
)

// result is the JSON shape of an evaluation.
type result struct {
	Sum       *int     `json:"sum,omitempty"`
	Error     string   `json:"error,omitempty"`
	Kind      string   `json:"kind,omitempty"`
	Negatives []string `json:"negatives,omitempty"`
	Token     *string  `json:"token,omitempty"`
	Position  int      `json:"position,omitempty"`
}

func newResult(sum int, err error) result {
	if err == nil {
		return result{Sum: &sum}
	}

	r := result{Error: err.Error(), Kind: errorKind(err)}
	var negErr *calculator.NegativeOperandError
	var fmtErr *calculator.FormatError
	switch {
	case errors.As(err, &negErr):
		r.Negatives = negErr.Operands
	case errors.As(err, &fmtErr):
		r.Token = &fmtErr.Token
		r.Position = fmtErr.Position
	}
	return r
}

func errorKind(err error) string {
	var negErr *calculator.NegativeOperandError
	var fmtErr *calculator.FormatError
	var parseErr *calculator.ParseError
	switch {
	case errors.As(err, &negErr):
		return "negative_operand"
	case errors.As(err, &fmtErr):
		return "format"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.Is(err, calculator.ErrOverflow):
		return "overflow"
	default:
		return "unknown"
	}
}

func writeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return ioError(fmt.Errorf("failed to encode json: %w", err))
	}
	return nil
}

// explain renders a boxed breakdown of how input was split and summed.
func explain(expr calculator.Expression, sum int, err error) string {
	quote := func(ss []string) string {
		q := make([]string, len(ss))
		for i, s := range ss {
			q[i] = strconv.Quote(s)
		}
		return strings.Join(q, " ")
	}

	mode := "default"
	if expr.Custom() {
		mode = "custom"
	}
	lines := []string{
		styles.RenderLabel("Delimiters:") + "  " + quote(expr.Delimiters()) + " " + styles.RenderDim("("+mode+")"),
		styles.RenderLabel("Tokens:") + "      " + quote(expr.Tokens()),
	}
	if err != nil {
		lines = append(lines, styles.RenderLabel("Result:")+"      "+styles.RenderError(err.Error()))
	} else {
		lines = append(lines, styles.RenderLabel("Sum:")+"         "+styles.RenderSuccess(strconv.Itoa(sum)))
	}
	return styles.RenderBox(strings.Join(lines, "\n"))
}

func render(s string) string {
	if colorEnabled() {
		return s
	}
	return styles.Plain(s)
}
