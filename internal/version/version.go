// Package version exposes build information injected via -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/longkey1/ragechat/internal/version.Version=v1.0.0"
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildTime = "unknown"
)

// Short returns only the version number.
func Short() string {
	return Version
}

// Info returns the full version information.
func Info() string {
	return fmt.Sprintf("ragechat %s\nCommit: %s\nBuilt: %s\nGo: %s",
		Version, CommitSHA, BuildTime, runtime.Version())
}
