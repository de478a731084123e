package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at release build time:
//
//	-ldflags "-X github.com/dsh2dsh/actionlog/internal/version.version=v0.1.0"
var version string

type Info struct {
	Version  string
	GOOS     string
	GOARCH   string
	Compiler string
}

func New() Info {
	return Info{
		Version:  String(),
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		Compiler: runtime.Compiler,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("actionlog version=%s go=%s GOOS=%s GOARCH=%s Compiler=%s",
		i.Version, runtime.Version(), i.GOOS, i.GOARCH, i.Compiler)
}

// String returns the version set at build time, falling back to what the
// module system recorded about the main module.
func String() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "unknown"
}
