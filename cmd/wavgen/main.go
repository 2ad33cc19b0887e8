// SPDX-License-Identifier: EPL-2.0

// Command wavgen renders test tones as WAVE files.
//
// Usage:
//
//	wavgen [flags] <command> [args]
//
// Commands:
//
//	tone     - Render a tone (flags or a YAML preset) to a file or stdout
//	kinds    - List the supported sample kinds and waveform shapes
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/ik5/wavsynth/cmd/wavgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
