package server

// Server runs the application's transports until shutdown is requested.
type Server interface {
	RunServer()
	Shutdown()
}
