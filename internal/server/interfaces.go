package server

import "context"

// Server defines the lifecycle contract of the status endpoint.
type Server interface {
	// RunServer serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns nil after a clean shutdown.
	RunServer(ctx context.Context) error

	// Addr returns the address the server listens on once RunServer has
	// started listening, or "" before.
	Addr() string
}
