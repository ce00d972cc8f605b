// Package detector identifies the host operating system and Linux distribution.
// Detection only reads files; it never starts a process.
package detector

import (
	"runtime"
	"strings"
)

// OSType represents the detected operating system type.
type OSType string

const (
	OSLinux   OSType = "linux"
	OSDarwin  OSType = "darwin"
	OSWindows OSType = "windows"
	OSUnknown OSType = "unknown"
)

// SystemInfo contains information about the detected system.
type SystemInfo struct {
	OS           OSType
	Arch         string
	Distribution string   // Linux distribution ID (e.g., "ubuntu", "fedora")
	DistroFamily []string // Related distributions (from ID_LIKE)
	PrettyName   string   // Human-readable name
	VersionID    string   // Distribution version
}

// Detect detects the current system's OS and distribution.
func Detect() (*SystemInfo, error) {
	return detectFor(runtime.GOOS, runtime.GOARCH)
}

func detectFor(goos, arch string) (*SystemInfo, error) {
	info := &SystemInfo{OS: ParseOSType(goos), Arch: arch}

	switch info.OS {
	case OSLinux:
		linuxInfo, err := DetectLinux()
		if err != nil {
			return info, err
		}
		info.Distribution = linuxInfo.ID
		info.DistroFamily = linuxInfo.IDLike
		info.PrettyName = linuxInfo.PrettyName
		info.VersionID = linuxInfo.VersionID
	case OSDarwin:
		info.Distribution = "macos"
		info.PrettyName = "macOS"
	case OSWindows:
		info.Distribution = "windows"
		info.PrettyName = "Windows"
	}

	return info, nil
}

// ParseOSType maps a GOOS value to an OSType.
func ParseOSType(goos string) OSType {
	switch goos {
	case "linux":
		return OSLinux
	case "darwin":
		return OSDarwin
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// IsLinux returns true if the system is running Linux.
func (s *SystemInfo) IsLinux() bool {
	return s.OS == OSLinux
}

// IsDarwin returns true if the system is running macOS.
func (s *SystemInfo) IsDarwin() bool {
	return s.OS == OSDarwin
}

// IsWindows returns true if the system is running Windows.
func (s *SystemInfo) IsWindows() bool {
	return s.OS == OSWindows
}

// Label returns the name shown for the host in reports.
func (s *SystemInfo) Label() string {
	switch {
	case s.PrettyName != "" && s.VersionID != "" && !strings.Contains(s.PrettyName, s.VersionID):
		return s.PrettyName + " " + s.VersionID
	case s.PrettyName != "":
		return s.PrettyName
	case s.Distribution != "":
		return s.Distribution
	default:
		return string(s.OS)
	}
}
