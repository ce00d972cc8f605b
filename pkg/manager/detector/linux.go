package detector

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const (
	osReleasePath  = "/etc/os-release"
	lsbReleasePath = "/etc/lsb-release"
)

// LinuxInfo contains information parsed from /etc/os-release.
type LinuxInfo struct {
	ID         string   // Distribution ID (e.g., "ubuntu", "arch", "fedora")
	IDLike     []string // Related distributions
	VersionID  string   // Version number (e.g., "22.04", "39")
	PrettyName string   // Human-readable name
	Name       string   // Distribution name
}

// DetectLinux detects the Linux distribution from /etc/os-release, then
// /etc/lsb-release, then distribution-specific release files.
func DetectLinux() (*LinuxInfo, error) {
	info := &LinuxInfo{}

	if err := parseOSRelease(info); err == nil {
		return info, nil
	}

	if err := parseLSBRelease(info); err == nil {
		return info, nil
	}

	if err := parseReleaseFiles(info); err == nil {
		return info, nil
	}

	// Return unknown if nothing works
	info.ID = "unknown"
	info.PrettyName = "Unknown Linux"
	return info, nil
}

// parseOSRelease parses /etc/os-release.
func parseOSRelease(info *LinuxInfo) error {
	file, err := os.Open(osReleasePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return ParseOSRelease(file, info)
}

// ParseOSRelease reads os-release formatted KEY=value lines into info.
func ParseOSRelease(r io.Reader, info *LinuxInfo) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := unquote(strings.TrimSpace(parts[1]))

		switch key {
		case "ID":
			info.ID = value
		case "ID_LIKE":
			info.IDLike = strings.Fields(value)
		case "VERSION_ID":
			info.VersionID = value
		case "PRETTY_NAME":
			info.PrettyName = value
		case "NAME":
			info.Name = value
		}
	}

	return scanner.Err()
}

// unquote strips one pair of matching single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

func parseLSBRelease(info *LinuxInfo) error {
	file, err := os.Open(lsbReleasePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return ParseLSBRelease(file, info)
}

// ParseLSBRelease reads lsb-release formatted DISTRIB_* lines into info.
func ParseLSBRelease(r io.Reader, info *LinuxInfo) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		value = unquote(strings.TrimSpace(value))

		switch strings.TrimSpace(key) {
		case "DISTRIB_ID":
			info.ID = strings.ToLower(value)
		case "DISTRIB_RELEASE":
			info.VersionID = value
		case "DISTRIB_DESCRIPTION":
			info.PrettyName = value
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if info.ID == "" {
		return os.ErrNotExist
	}
	return nil
}

// parseReleaseFiles checks distribution-specific release files.
func parseReleaseFiles(info *LinuxInfo) error {
	releaseFiles := []struct {
		path   string
		distro string
	}{
		{"/etc/debian_version", "debian"},
		{"/etc/fedora-release", "fedora"},
		{"/etc/centos-release", "centos"},
		{"/etc/redhat-release", "rhel"},
		{"/etc/SuSE-release", "opensuse"},
		{"/etc/alpine-release", "alpine"},
	}

	for _, rf := range releaseFiles {
		if _, err := os.Stat(rf.path); err == nil {
			info.ID = rf.distro
			info.PrettyName = rf.distro + " (from " + rf.path + ")"
			return nil
		}
	}

	return os.ErrNotExist
}

// distroManagerMap maps distribution IDs to the backend that wraps their package manager.
// pacman-based distributions have no entry.
var distroManagerMap = map[string]string{
	// Debian family
	"debian":     "apt",
	"ubuntu":     "apt",
	"linuxmint":  "apt",
	"pop":        "apt",
	"elementary": "apt",
	"zorin":      "apt",
	"kali":       "apt",
	"parrot":     "apt",
	"mx":         "apt",
	"raspbian":   "apt",

	// Red Hat family
	"fedora":    "dnf",
	"rhel":      "dnf",
	"centos":    "dnf",
	"rocky":     "dnf",
	"almalinux": "dnf",
	"nobara":    "dnf",
	"amzn":      "dnf",

	// SUSE family
	"opensuse":            "zypper",
	"opensuse-leap":       "zypper",
	"opensuse-tumbleweed": "zypper",
	"sles":                "zypper",
	"suse":                "zypper",

	"alpine":       "apk",
	"postmarketos": "apk",
}

// LinuxFallbackManagers are looked up on PATH, in order, when the distribution is not recognised.
var LinuxFallbackManagers = []string{"apt", "dnf", "zypper", "apk"}

// GetNativeManager returns the backend name for a distribution ID.
func GetNativeManager(distroID string) string {
	return distroManagerMap[distroID]
}

// GetNativeManagerForFamily checks the distribution ID and then its ID_LIKE family.
func GetNativeManagerForFamily(distroID string, idLike []string) string {
	if mgr := GetNativeManager(distroID); mgr != "" {
		return mgr
	}

	for _, family := range idLike {
		if mgr := GetNativeManager(family); mgr != "" {
			return mgr
		}
	}

	return ""
}
