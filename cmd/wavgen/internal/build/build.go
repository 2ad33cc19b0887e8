// SPDX-License-Identifier: EPL-2.0

// Package build holds version information injected at link time:
//
//	go build -ldflags "-X github.com/ik5/wavsynth/cmd/wavgen/internal/build.Version=v1.0.0 \
//	  -X github.com/ik5/wavsynth/cmd/wavgen/internal/build.Commit=$(git rev-parse --short HEAD)"
package build

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("wavgen %s (%s) built %s %s/%s",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
