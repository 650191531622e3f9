// Package delivery holds the outer surfaces of the client.
package delivery

import "context"

// Delivery is a long-running surface started by main, e.g. the app shell HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
