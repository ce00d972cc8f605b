package executor

import "errors"

// ErrNoPrivileges is returned when elevation is requested but neither root nor sudo is available.
var ErrNoPrivileges = errors.New("sudo requested, but the process is not root and no sudo binary was found")

// IsRoot returns true if the current process is running as root/administrator.
func IsRoot() bool {
	return isRoot()
}

// HasSudo returns true if a sudo binary is available on the system.
func HasSudo() bool {
	return hasSudo()
}

// CheckPrivileges returns ErrNoPrivileges when sudo is wanted but cannot be used.
func CheckPrivileges(wantSudo bool) error {
	if !wantSudo || isRoot() || hasSudo() {
		return nil
	}
	return ErrNoPrivileges
}
