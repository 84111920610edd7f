package app

import (
	"os"
	"sync"
	"sync/atomic"
)

const testModeEnv = "SMARTMART_TEST_MODE"

var (
	testModeFlag atomic.Bool
	testModeOnce sync.Once
)

// detectTestMode caches SMARTMART_TEST_MODE=1.
func detectTestMode() {
	testModeFlag.Store(os.Getenv(testModeEnv) == "1")
}

// InTestMode reports whether SMARTMART_TEST_MODE is set. main returns early
// and the router skips request logging.
func InTestMode() bool {
	testModeOnce.Do(detectTestMode)
	return testModeFlag.Load()
}

// RefreshTestMode re-reads SMARTMART_TEST_MODE, e.g. after t.Setenv.
func RefreshTestMode() {
	detectTestMode()
}
