package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port            uint16        `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// CORSOrigins lists origins allowed to call the API from a browser.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://*,https://*"`
}
