// Package input prepares raw text for the calculator.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var escapes = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t", `\r`, "\r")

// Unescape expands \n, \t, \r and \\ so that newline-delimited input can be
// typed on one line. Other backslashes are left alone.
func Unescape(s string) string {
	return escapes.Replace(s)
}

// Read returns everything from r with a single trailing line ending removed,
// which shells and editors append to files and piped input.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return TrimLineEnding(string(data)), nil
}

// ReadFile reads the file at path the same way as Read.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return s, nil
}

// TrimLineEnding removes one trailing "\n" or "\r\n".
func TrimLineEnding(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
