package server

// Server runs the gateway's HTTP listener.
type Server interface {
	// RunServer listens on the configured address and blocks until a
	// termination signal arrives or the listener fails. In-flight requests
	// are drained before it returns.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to the shutdown timeout.
	Shutdown()
}
