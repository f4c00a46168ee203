package configs

import "time"

// HTTP defines configuration for the operational status server.
type HTTP struct {
	// Port is the TCP port the status server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds graceful shutdown of the server and scheduler.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}
