package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/strcalc/internal/calculator"
	"github.com/pengelbrecht/strcalc/internal/config"
	"github.com/pengelbrecht/strcalc/internal/input"
)

var addCmd = &cobra.Command{
	Use:   "add [input]",
	Short: "Sum the numbers in an input string",
	Long: `Sum the numbers in an input string.

Input comes from the argument, from --file, or from stdin when no argument
(or "-") is given. In arguments, \n is read as a newline unless --raw is set.

Examples:
  strcalc add "1,5"                 # 6
  strcalc add '//;\n1;2'            # 3
  strcalc add --file numbers.txt
  printf '1\n2,3' | strcalc add     # 6
  strcalc add "1,-2" --json         # {"error":...,"kind":"negative_operand",...}`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addFile    string
	addJSON    bool
	addExplain bool
	addRaw     bool
)

func init() {
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "read input from file")
	addCmd.Flags().BoolVar(&addJSON, "json", false, "output as JSON")
	addCmd.Flags().BoolVar(&addExplain, "explain", false, "show delimiters and tokens")
	addCmd.Flags().BoolVar(&addRaw, "raw", false, "do not interpret escape sequences in the argument")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	text, err := readAddInput(cmd, args)
	if err != nil {
		return err
	}

	expr, err := calculator.Parse(text)
	sum := 0
	if err == nil {
		sum, err = expr.Sum()
	}
	logger.Debug("evaluated input", "bytes", len(text), "tokens", len(expr.Tokens()), "error", err)

	out := cmd.OutOrStdout()
	switch {
	case addJSON || cfg.Output.GetFormat() == config.FormatJSON:
		if werr := writeJSON(out, newResult(sum, err)); werr != nil {
			return werr
		}
		if err != nil {
			return &exitError{code: exitEvalError}
		}
		return nil

	case addExplain && !isParseError(err):
		fmt.Fprintln(out, render(explain(expr, sum, err)))
		if err != nil {
			return &exitError{code: exitEvalError}
		}
		return nil
	}

	if err != nil {
		return &exitError{code: exitEvalError, err: err}
	}
	fmt.Fprintln(out, sum)
	return nil
}

func readAddInput(cmd *cobra.Command, args []string) (string, error) {
	if addFile != "" {
		if len(args) > 0 {
			return "", errors.New("cannot use both an input argument and --file")
		}
		text, err := input.ReadFile(addFile)
		if err != nil {
			return "", ioError(fmt.Errorf("failed to read input: %w", err))
		}
		return text, nil
	}

	if len(args) == 0 || args[0] == "-" {
		text, err := input.Read(cmd.InOrStdin())
		if err != nil {
			return "", ioError(fmt.Errorf("failed to read stdin: %w", err))
		}
		return text, nil
	}

	if addRaw || !cfg.Input.EscapesEnabled() {
		return args[0], nil
	}
	return input.Unescape(args[0]), nil
}

func isParseError(err error) bool {
	var parseErr *calculator.ParseError
	return errors.As(err, &parseErr)
}
