package config

import "time"

// RedisConfig contains the optional sync ledger backend configuration.
// When Addr is empty the daemon runs without a ledger and relies solely
// on the scheduled checkbox stored on the hosted rows.
type RedisConfig struct {
	// Addr is the Redis host:port. Empty disables the ledger.
	Addr string `env:"ADDR"`

	// Password is the optional Redis auth password.
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database index.
	DB int `env:"DB" envDefault:"0"`

	// LedgerTTL is how long ledger entries are retained.
	LedgerTTL time.Duration `env:"LEDGER_TTL" envDefault:"720h"`
}

// Enabled reports whether a ledger backend is configured.
func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}
