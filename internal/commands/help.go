package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show keys and flags for clock",
	Long:  `Display the clock controls and every command line flag.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), helpText)
	},
}

const helpText = `
clock - 25+5 session and break timer

Starts stopped with a 25 minute session and a 5 minute break. When a phase
reaches 00:00 a beep plays and the other phase starts automatically.

USAGE:

  clock [flags]
    --silent              Do not play a sound when a phase ends
    --log-file <path>     Write debug logs to a file

  clock version           Print version information
  clock help              Show this help

KEYS:

  space/enter   Start or pause the countdown
  r             Reset everything to 25 + 5
  [  ]          Break length -1 / +1 (1 to 60 minutes)
  -  +          Session length -1 / +1 (1 to 60 minutes), restarts the countdown
  ?             Show all keys
  q/esc         Quit

`
