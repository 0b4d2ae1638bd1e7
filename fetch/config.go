package fetch

import (
	"fmt"
	"time"
)

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "utilkit-fetch/1"

// Config configures a Client.
type Config struct {
	// Timeout bounds the whole request when the default transport is used.
	// Zero means DefaultConfig().Timeout. Ignored when a Doer is supplied.
	Timeout time.Duration

	// UserAgent is sent with every request.
	// Default: DefaultUserAgent
	UserAgent string
}

// DefaultConfig returns the default client configuration.
// Timeout: 30 seconds, UserAgent: DefaultUserAgent
func DefaultConfig() Config {
	return Config{
		Timeout:   30 * time.Second,
		UserAgent: DefaultUserAgent,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalidConfig, c.Timeout)
	}
	return nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Timeout == 0 {
		c.Timeout = def.Timeout
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	return c
}
