// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as server shutdown and
// database ping on startup.
const DefaultTimeout = 10 * time.Second
