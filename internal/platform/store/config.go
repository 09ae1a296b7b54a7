package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG   PGConfig
	CH   CHConfig
	Lite LiteConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32
	LogSQL   bool
	Slow     time.Duration

	ConnectRetries int           // default 6
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string
}

// LiteConfig configures the local sqlite file
type LiteConfig struct {
	Enabled bool
	Path    string
}
