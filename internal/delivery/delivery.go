// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serveable transport (HTTP server, background worker). The
// main function collects all deliveries and runs each in its own goroutine.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
