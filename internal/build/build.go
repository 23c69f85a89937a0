// Package build holds build-time information.
package build

// Build metadata. The defaults are overwritten by linker flags:
//
//	-ldflags "-X go.trai.ch/steady/internal/build.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
