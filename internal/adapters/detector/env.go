// Package detector inspects the terminal environment to choose log output.
package detector

import (
	"os"

	"go.trai.ch/steady/internal/core/domain"
	"golang.org/x/term"
)

// Mode is the kind of environment the process runs in.
type Mode int

const (
	// ModeInteractive is a terminal attended by a user.
	ModeInteractive Mode = iota
	// ModeLinear is a pipe, a file or a CI runner.
	ModeLinear
)

// IsCI reports whether the CI variable marks a CI runner.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// DetectEnvironment returns ModeInteractive when stderr is a terminal outside CI.
func DetectEnvironment() Mode {
	if !term.IsTerminal(int(os.Stderr.Fd())) || IsCI() {
		return ModeLinear
	}
	return ModeInteractive
}

// ResolveFormat turns an auto log format into a concrete one for mode.
// Explicit formats are returned unchanged.
func ResolveFormat(format domain.LogFormat, mode Mode) domain.LogFormat {
	switch format {
	case domain.LogFormatPretty, domain.LogFormatJSON:
		return format
	}
	if mode == ModeInteractive {
		return domain.LogFormatPretty
	}
	return domain.LogFormatJSON
}
