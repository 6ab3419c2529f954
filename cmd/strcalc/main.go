package main

import (
	"os"

	"github.com/pengelbrecht/strcalc/cmd/strcalc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
