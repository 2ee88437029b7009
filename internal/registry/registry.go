// Package registry holds the subdomains hosted under the zone.
package registry

import (
	"github.com/cloudflare/cloudflare-go"

	"github.com/madefor-cc/dns/internal/domain"
)

// Zone is the parent domain of every registered subdomain.
const Zone = "madefor.cc"

// An Entry maps a subdomain to the CNAME record that should be created for it.
type Entry struct {
	// Name is the subdomain label, for example "wolf".
	Name string

	// CNAME is the target of the record. It must be a domain name, not a URL.
	CNAME string

	// Proxied says whether the record should be proxied through Cloudflare.
	Proxied bool
}

// FQDN gives the fully qualified name of the entry under the zone.
func (e Entry) FQDN(zone string) domain.FQDN {
	return domain.Join(e.Name, zone)
}

// Record renders the entry as the Cloudflare DNS record it describes.
func (e Entry) Record(zone string) cloudflare.DNSRecord {
	proxied := e.Proxied
	return cloudflare.DNSRecord{ //nolint:exhaustruct
		Type:     "CNAME",
		Name:     e.FQDN(zone).DNSNameASCII(),
		Content:  e.CNAME,
		TTL:      TTLAuto,
		Proxied:  &proxied,
		ZoneName: zone,
	}
}

// TTLAuto is the special TTL value asking Cloudflare to pick the TTL.
const TTLAuto = 1

// A Registry is a list of entries in the order they are declared.
type Registry []Entry

// Names lists the names of all entries in the order they are declared.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for _, e := range r {
		names = append(names, e.Name)
	}
	return names
}

// Records renders all entries as Cloudflare DNS records, keeping the declared order.
func (r Registry) Records(zone string) []cloudflare.DNSRecord {
	records := make([]cloudflare.DNSRecord, 0, len(r))
	for _, e := range r {
		records = append(records, e.Record(zone))
	}
	return records
}
