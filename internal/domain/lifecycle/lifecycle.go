// Package lifecycle holds shared lifecycle constants for startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as startup pings and
// graceful server shutdown.
const DefaultTimeout = 10 * time.Second
