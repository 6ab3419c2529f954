package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strcalc",
	Long:  `Print the version number of strcalc.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "strcalc %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
