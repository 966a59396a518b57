package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/balkashynov/clock/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "clock",
	Short: "A 25+5 session and break clock",
	Long: `clock is a terminal countdown timer that alternates between a work session
and a break, playing a beep whenever a phase ends.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logFile, _ := cmd.Flags().GetString("log-file")
		closeLog, err := setupLogging(logFile)
		if err != nil {
			return err
		}
		defer closeLog()

		silent, _ := cmd.Flags().GetBool("silent")
		cue := newCue(silent)

		log.Printf("clock %s starting (silent=%t)", version, silent)
		return tui.RunClockTUI(cue)
	},
}

// newCue picks the phase-end sound: the bundled beep through the speaker,
// the terminal bell when no audio device can be opened, nothing with --silent
func newCue(silent bool) tui.Cue {
	if silent {
		return tui.SilentCue{}
	}
	cue, err := tui.NewSpeakerCue()
	if err != nil {
		log.Printf("audio unavailable, falling back to terminal bell: %v", err)
		return tui.NewBellCue(os.Stderr)
	}
	return cue
}

// setupLogging routes the standard logger to path, or discards it when path
// is empty so nothing is written over the alt screen
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "clock")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().Bool("silent", false, "Do not play a sound when a phase ends")
	rootCmd.Flags().String("log-file", "", "Write debug logs to this file")

	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
