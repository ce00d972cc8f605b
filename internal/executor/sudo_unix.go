//go:build !windows

package executor

import (
	"os"
	"os/exec"
)

// elevators are tried in order when a privileged command needs a prefix.
var elevators = []string{"sudo", "doas"}

func isRoot() bool {
	return os.Geteuid() == 0
}

// elevator returns the first privilege-escalation binary found on PATH, or "".
func elevator() string {
	for _, name := range elevators {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return ""
}

func hasSudo() bool {
	return elevator() != ""
}
