package server

// Server is the process-level lifecycle returned by NewServer.
type Server interface {
	// RunServer serves until a termination signal arrives and the server has
	// shut down.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
