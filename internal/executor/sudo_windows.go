//go:build windows

package executor

import (
	"os/exec"

	"golang.org/x/sys/windows"
)

// elevators are tried in order: Windows 11 built-in sudo, then gsudo.
var elevators = []string{"sudo", "gsudo"}

// isRoot reports whether the process token belongs to the Administrators group.
func isRoot() bool {
	var sid *windows.SID
	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid)
	if err != nil {
		return false
	}
	defer windows.FreeSid(sid)

	member, err := windows.Token(0).IsMember(sid)
	return err == nil && member
}

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
