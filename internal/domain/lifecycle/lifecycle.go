// Package lifecycle holds timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (ping, migration, shutdown).
const DefaultTimeout = 30 * time.Second
