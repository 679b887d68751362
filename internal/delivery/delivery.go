// Package delivery defines the contract shared by all inbound adapters
// (HTTP server, background scheduler) so the composition root can start
// them uniformly.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the application.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
