// Package delivery defines the contract every transport implementation
// (HTTP, workers, ...) satisfies so fx can start them uniformly.
package delivery

import (
	"context"
)

// Delivery is a long-running transport serving the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
