// cmd/hyperlinked/link.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aceteam-ai/hyperlinked"
)

var linkLabel string

var linkCmd = &cobra.Command{
	Use:   "link <path> [line]",
	Short: "Print a clickable hyperlink to a file, optionally at a line",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		line := 0
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid line number %q", args[1])
			}
			line = n
		}

		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("cannot link %s: %w", path, err)
		}

		label := linkLabel
		if label == "" {
			label = filepath.Base(path)
			if line > 0 {
				label += ":" + strconv.Itoa(line)
			}
		}
		// Color only decorates the label inside the link; the OSC 8
		// framing must stay byte-exact, so it is applied last.
		if isTTY() {
			label = color.CyanString(label)
		}

		url := hyperlinked.URLForLocation(path, line, scheme)
		fmt.Println(hyperlinked.Hyperlink(label, url))
		return nil
	},
}

// isTTY reports whether stdout is attached to a terminal.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	linkCmd.Flags().StringVar(&linkLabel, "label", "", "Text to display instead of the file name")
	rootCmd.AddCommand(linkCmd)
}
