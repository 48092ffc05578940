package platform

import "runtime"

// OS represents a supported operating system.
type OS string

const (
	MacOS   OS = "darwin"
	Linux   OS = "linux"
	Unknown OS = "unknown"
)

// Detect returns the current operating system.
func Detect() OS {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// IsSupported returns true if the current OS is supported. The launcher
// depends on unix uid/gid semantics for the container user mapping.
func IsSupported() bool {
	os := Detect()
	return os == MacOS || os == Linux
}
