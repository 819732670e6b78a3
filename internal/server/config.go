package server

import "time"

// Config holds the HTTP settings read from the environment.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// MaxLengthLimit caps the max query parameter of generation requests.
	MaxLengthLimit int `env:"HTTP_MAX_LENGTH_LIMIT" envDefault:"32"`
}

func defaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 5 * time.Second,
		MaxLengthLimit:  32,
	}
}

// withDefaults fills zero fields, so a partially populated Config is usable.
func (c Config) withDefaults() Config {
	d := defaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.MaxLengthLimit <= 0 {
		c.MaxLengthLimit = d.MaxLengthLimit
	}
	return c
}
