//go:build windows

package executor

import "testing"

func TestIsRoot(t *testing.T) {
	t.Logf("IsRoot() returned: %v, elevator: %q", IsRoot(), elevator())
}
