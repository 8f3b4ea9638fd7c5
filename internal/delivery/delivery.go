// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the application.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
