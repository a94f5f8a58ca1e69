package version

import (
	"fmt"
	"runtime"
)

// Populated at build time using linker flags.
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// String returns a single line version description.
func String() string {
	return fmt.Sprintf("glint %s (built %s, %s)", Version, BuildDate, runtime.Version())
}
