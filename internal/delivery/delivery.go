// Package delivery defines the contract every transport implementation
// fulfills, so the application core can be served over different transports
// without knowing about them.
package delivery

import "context"

// Delivery is a transport that serves the application until the context is
// cancelled or the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
