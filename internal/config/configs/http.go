package configs

// HTTP defines configuration for the API server. The service binds to all
// interfaces; only the port is configurable.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
