// cmd/hyperlinked/demo.go
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aceteam-ai/hyperlinked"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print sample hyperlinked output",
	Long: `Prints a handful of sample lines through the library so you can
check whether your terminal renders OSC 8 hyperlinks. Every line links
back to the source of this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := hyperlinked.Options{Scheme: scheme}
		hyperlinked.Fprint(opts, "Each of these lines links back to its call site.")
		hyperlinked.Fprint(opts, "Arguments are joined like", "println:", 1, 2, 3)

		hyperlinked.StartTimer()
		hyperlinked.F("%s timer-prefixed printf output\n", color.GreenString("✓"))
		hyperlinked.Ln(color.YellowString("⚠") + " timer-prefixed println output")

		fmt.Println("status: " + hyperlinked.Hyperlinked(color.GreenString("✓ linked label")))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
