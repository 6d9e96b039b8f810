// cmd/hyperlinked/stack.go
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aceteam-ai/hyperlinked"
)

var stackLimit int

var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Print a hyperlinked stack trace of this command",
	Run: func(cmd *cobra.Command, args []string) {
		hyperlinked.PrintStack(hyperlinked.StackOptions{
			Limit:  stackLimit,
			Writer: os.Stdout,
			Scheme: scheme,
		})
	},
}

func init() {
	stackCmd.Flags().IntVar(&stackLimit, "limit", 0, "Maximum number of frames to print (0 = all)")
	rootCmd.AddCommand(stackCmd)
}
