// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/wavsynth/cmd/wavgen/internal/preset"
)

var (
	presetFile string
	outputFile string

	toneFlags = preset.Default()
)

var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Render a tone to a WAVE file",
	Long: `Render a tone to a WAVE file.

Settings come from the defaults, then the preset file (-p), then any flag
given on the command line. Use "-o -" (the default) to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: runTone,
}

func init() {
	f := toneCmd.Flags()
	f.StringVarP(&presetFile, "preset", "p", "", "YAML preset file")
	f.StringVarP(&outputFile, "output", "o", "-", `output file ("-" for stdout)`)
	f.StringVarP(&toneFlags.Shape, "shape", "s", toneFlags.Shape, "waveform shape (silence, sine, square, triangle, sawtooth)")
	f.Float64VarP(&toneFlags.Frequency, "frequency", "f", toneFlags.Frequency, "frequency in Hz")
	f.Float64VarP(&toneFlags.Amplitude, "amplitude", "a", toneFlags.Amplitude, "amplitude as a fraction of full scale")
	f.StringVarP(&toneFlags.Kind, "kind", "k", toneFlags.Kind, "sample kind, see 'wavgen kinds'")
	f.IntVarP(&toneFlags.Channels, "channels", "c", toneFlags.Channels, "channel count")
	f.Uint32VarP(&toneFlags.SampleRate, "rate", "r", toneFlags.SampleRate, "sample rate in Hz")
	f.StringVarP(&toneFlags.Duration, "duration", "d", toneFlags.Duration, "duration, e.g. 1s or 250ms")

	rootCmd.AddCommand(toneCmd)
}

// resolvePreset layers the preset file and the explicitly set flags over
// the defaults.
func resolvePreset(cmd *cobra.Command) (preset.Preset, error) {
	p := preset.Default()
	if presetFile != "" {
		loaded, err := preset.Load(presetFile)
		if err != nil {
			return preset.Preset{}, err
		}
		p = loaded
		logger.Debug("loaded preset", "path", presetFile)
	}

	flags := cmd.Flags()
	if flags.Changed("shape") {
		p.Shape = toneFlags.Shape
	}
	if flags.Changed("frequency") {
		p.Frequency = toneFlags.Frequency
	}
	if flags.Changed("amplitude") {
		p.Amplitude = toneFlags.Amplitude
	}
	if flags.Changed("kind") {
		p.Kind = toneFlags.Kind
	}
	if flags.Changed("channels") {
		p.Channels = toneFlags.Channels
	}
	if flags.Changed("rate") {
		p.SampleRate = toneFlags.SampleRate
	}
	if flags.Changed("duration") {
		p.Duration = toneFlags.Duration
	}
	if flags.Changed("output") || p.Output == "" {
		p.Output = outputFile
	}

	return p, nil
}

func runTone(cmd *cobra.Command, args []string) error {
	p, err := resolvePreset(cmd)
	if err != nil {
		return err
	}

	tone, err := p.Tone()
	if err != nil {
		return err
	}

	start := time.Now()
	f, err := tone.WaveFile()
	if err != nil {
		return err
	}
	logger.Debug("rendered tone",
		"shape", tone.Shape, "kind", tone.Kind, "frames", f.Frames(), "elapsed", time.Since(start))

	n, err := writeOutput(cmd.OutOrStdout(), p.Output, func(w io.Writer) (int64, error) {
		return f.WriteTo(w)
	})
	if err != nil {
		return err
	}

	logger.Info("wrote tone",
		"output", p.Output, "bytes", n, "duration", f.Duration(),
		"channels", f.Channels, "rate", f.SampleRate, "format", f.Format)

	return nil
}

// writeOutput sends the output to stdout for "-" and to a new file
// otherwise. A file left incomplete by a failed write is removed.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) (int64, error)) (int64, error) {
	if path == "-" {
		return write(stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output: %w", err)
	}

	n, err := write(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, errors.Join(err, os.Remove(path))
	}

	return n, nil
}
