// Package testing puts the process in test mode. Test packages that build
// the full router import it for its side effect.
package testing

import (
	"os"
	"sync"
	stdtesting "testing"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("SMARTMART_TEST_MODE", "1")
		_ = os.Unsetenv("GOTENBERG_URL")
	})
}

func init() {
	ensureTestMode()
}

// TestMain runs m in test mode.
func TestMain(m *stdtesting.M) {
	ensureTestMode()
	os.Exit(m.Run())
}
