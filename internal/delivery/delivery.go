// Package delivery defines the contract every transport entry point of the
// application satisfies.
package delivery

import "context"

// Delivery is a running transport surface, e.g. the HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
