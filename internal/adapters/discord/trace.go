package discord

import (
	"log"
	"time"
)

// step mide una llamada a Discord; sólo loguea con DISCORD_TRACE activo.
func (c *Client) step(label string) func() {
	if !c.trace {
		return func() {}
	}
	start := time.Now()
	return func() { c.log.Printf("[trace] %s = %s", label, time.Since(start)) }
}

// WithTrace loguea la duración de cada llamada en logger (nil = log.Default()).
func WithTrace(on bool, logger *log.Logger) Option {
	return func(c *Client) {
		c.trace = on
		c.log = logger
	}
}
