// Package lint checks the integrity of the domain registry.
package lint

import (
	"context"
	"io"

	"github.com/madefor-cc/dns/internal/config"
	"github.com/madefor-cc/dns/internal/domain"
	"github.com/madefor-cc/dns/internal/pp"
	"github.com/madefor-cc/dns/internal/probe"
	"github.com/madefor-cc/dns/internal/registry"
)

// Describe lists the records described by the registry.
func Describe(ppfmt pp.PP, r registry.Registry, zone string) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiRecord, "Registered records (%d):", len(r))
	inner := ppfmt.Indent()
	for _, record := range r.Records(zone) {
		mode := "DNS only"
		if record.Proxied != nil && *record.Proxied {
			mode = "proxied"
		}
		inner.Infof(pp.EmojiBullet, "%s %s %s (%s)",
			domain.FQDN(record.Name).Describe(), record.Type, record.Content, mode)
	}
}

// Run runs all the checks and reports whether all of them passed.
// Every check runs even when an earlier one fails.
// The list of domains is only fetched when [config.Config.FetchDomains] is set.
// Diffs of the ordering check are written to out.
func Run(ctx context.Context, ppfmt pp.PP, out io.Writer,
	c *config.Config, r registry.Registry, prober probe.Prober,
) bool {
	Describe(ppfmt, r, c.Zone)

	valid := true

	if !CheckOrder(ppfmt, out, r.Names()) {
		valid = false
	}

	if !CheckCNAMEs(ppfmt, r) {
		valid = false
	}

	if c.FetchDomains {
		if !CheckLiveness(ctx, ppfmt, prober, r, c.Zone) {
			valid = false
		}
	} else {
		ppfmt.Infof(pp.EmojiDisabled, "Skipped fetching the domains")
	}

	if valid {
		ppfmt.Noticef(pp.EmojiGood, "All checks passed")
	} else {
		ppfmt.Noticef(pp.EmojiUserError, "Some checks failed")
	}

	return valid
}
