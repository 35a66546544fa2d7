package server

// Server defines the lifecycle contract of the toolkit's transport servers.
type Server interface {
	// RunServer starts every configured transport and blocks until a
	// termination signal arrives and all transports have shut down.
	RunServer()

	// Shutdown gracefully stops every transport.
	Shutdown()
}
