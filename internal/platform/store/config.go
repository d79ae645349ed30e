package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	// AppName is reported to clickhouse as the client role
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries bounds the boot ping loop; zero means 20
	ConnectRetries int
	// PingTimeout bounds each boot ping; zero means 3s
	PingTimeout time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string

	// Tag is reported to clickhouse as the client version
	Tag string
}

func (c PGConfig) retries() int {
	if c.ConnectRetries <= 0 {
		return 20
	}
	return c.ConnectRetries
}

func (c PGConfig) pingTimeout() time.Duration {
	if c.PingTimeout <= 0 {
		return 3 * time.Second
	}
	return c.PingTimeout
}
