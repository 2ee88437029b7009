package config

import (
	"fmt"

	"github.com/madefor-cc/dns/internal/domain"
	"github.com/madefor-cc/dns/internal/pp"
)

const itemTitleWidth = 24

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiConfig, "Current settings:")
	ppfmt = ppfmt.Indent()

	item := func(title string, format string, values ...any) {
		ppfmt.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	item("Zone:", "%s", domain.FQDN(c.Zone).Describe())
	item("Fetch domains?", "%t", c.FetchDomains)
	if c.FetchDomains {
		item("Fetch timeout:", "%v", c.FetchTimeout)
	}
}
