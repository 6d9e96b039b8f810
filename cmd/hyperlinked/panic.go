// cmd/hyperlinked/panic.go
package main

import (
	"github.com/spf13/cobra"

	"github.com/aceteam-ai/hyperlinked"
)

var panicCmd = &cobra.Command{
	Use:   "panic",
	Short: "Panic on purpose to show the hyperlinked traceback hook",
	Run: func(cmd *cobra.Command, args []string) {
		defer hyperlinked.Recover()
		boom()
	},
}

func boom() {
	panic("demonstration panic")
}

func init() {
	rootCmd.AddCommand(panicCmd)
}
