// Package config holds the settings of the linter.
package config

import (
	"time"

	"github.com/madefor-cc/dns/internal/probe"
	"github.com/madefor-cc/dns/internal/registry"
)

// Config holds the configuration of the linter.
type Config struct {
	Zone         string
	FetchDomains bool
	FetchTimeout time.Duration
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Zone:         registry.Zone,
		FetchDomains: false,
		FetchTimeout: probe.DefaultTimeout,
	}
}
