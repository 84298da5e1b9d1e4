// Package lifecycle holds shared shutdown semantics for long-running
// deliveries.
package lifecycle

import (
	"time"
)

// DefaultTimeout bounds graceful shutdown of a delivery.
const DefaultTimeout = 10 * time.Second
