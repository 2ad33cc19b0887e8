// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "wavgen",
	Short: "Render test tones as WAVE files",
	Long: `wavgen - render periodic test tones as RIFF/WAVE files.

Every sample kind from 8-bit to 64-bit integers, packed 24 and 48-bit
integers, and 32/64-bit IEEE float is supported.

Examples:
  # One second of A440 at half scale, 16-bit mono
  wavgen tone -o a440.wav

  # Stereo 24-bit square wave from a preset, overriding the frequency
  wavgen tone -p square.yaml -f 1000 -o square.wav`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
