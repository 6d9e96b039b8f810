// cmd/hyperlinked/root.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aceteam-ai/hyperlinked"
)

// Version will be set at build time
var Version = "dev"

var scheme string
var verboseMode bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hyperlinked",
	Short: "Emit terminal output hyperlinked to its source location",
	Long: `A small CLI around the hyperlinked library: print clickable OSC 8
terminal hyperlinks pointing at files, lines and call sites. Terminals
with OSC 8 support (iTerm2, Windows Terminal, GNOME Terminal, Konsole)
render the output as links that open your editor.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseMode {
			fullCmd := "hyperlinked"
			if cmd.Name() != "hyperlinked" {
				fullCmd += " " + cmd.Name()
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if f.Name == "verbose" {
					return // Skip the verbose flag itself
				}
				if f.Value.Type() == "bool" {
					fullCmd += " --" + f.Name
				} else {
					fullCmd += " --" + f.Name + "=" + f.Value.String()
				}
			})
			if len(args) > 0 {
				fullCmd += " " + strings.Join(args, " ")
			}
			fmt.Fprintf(os.Stderr, "command: %s\n", fullCmd)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&scheme, "scheme", hyperlinked.DefaultScheme, "URI scheme for link targets (file, vscode, cursor, ...)")
	rootCmd.PersistentFlags().BoolVar(&verboseMode, "verbose", false, "Echo the resolved command before running")
}
