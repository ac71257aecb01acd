// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a long-running transport endpoint, such as an HTTP server.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
