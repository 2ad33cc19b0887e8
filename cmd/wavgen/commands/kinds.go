// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ik5/wavsynth/sample"
	"github.com/ik5/wavsynth/waveform"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List sample kinds and waveform shapes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

		fmt.Fprintln(w, "KIND\tBITS\tFORMAT\tSTORED AS")
		for _, k := range sample.Kinds() {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", k, k.Bits(), k.Format(), k.OnDisk())
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), "SHAPES:")
		for _, s := range waveform.Shapes() {
			fmt.Fprintf(cmd.OutOrStdout(), " %s", s)
		}
		fmt.Fprintln(cmd.OutOrStdout())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
