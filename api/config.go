package api

// Config defines settings for the HTTP server.
type Config struct {
	Addr            string `json:"addr"`
	ReadTimeoutSec  int    `json:"read_timeout_seconds"`
	WriteTimeoutSec int    `json:"write_timeout_seconds"`
}

// SetDefaults applies the reference listen address and timeouts.
func (c *Config) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 15
	}
	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 15
	}
}
