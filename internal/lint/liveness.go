package lint

import (
	"context"

	"github.com/madefor-cc/dns/internal/pp"
	"github.com/madefor-cc/dns/internal/probe"
	"github.com/madefor-cc/dns/internal/registry"
)

// URL gives the address fetched for the entry.
func URL(e registry.Entry, zone string) string {
	return "https://" + e.FQDN(zone).DNSNameASCII()
}

// CheckLiveness fetches every domain, one at a time, and checks that all of them are up.
func CheckLiveness(ctx context.Context, ppfmt pp.PP, prober probe.Prober, r registry.Registry, zone string) bool {
	ppfmt.Infof(pp.EmojiInternet, "Fetching %d domain(s) . . .", len(r))

	valid := true
	for _, e := range r {
		if !prober.Probe(ctx, ppfmt, URL(e, zone)) {
			valid = false
		}
	}

	if valid {
		ppfmt.Infof(pp.EmojiGood, "All domains are up")
	}

	return valid
}
