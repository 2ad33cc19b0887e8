// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ik5/wavsynth/cmd/wavgen/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, build.String())
		if verbose {
			fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
