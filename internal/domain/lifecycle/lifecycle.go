// Package lifecycle holds shared timing constants for starting and stopping components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup probes of infrastructure clients.
const DefaultTimeout = 10 * time.Second
