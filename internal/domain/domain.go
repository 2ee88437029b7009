// Package domain parses DNS domain names.
package domain

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"
)

// profileDroppingLeadingDots does C2 in UTS#46 with all checks on + removing leading dots.
// This is the main conversion profile in use.
//
//nolint:gochecknoglobals
var (
	profileDroppingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(true),
	)
	profileKeepingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(false),
	)
)

// safelyToUnicode takes an ASCII form and returns the Unicode form
// when the round trip gives the same ASCII form back without errors.
// Otherwise, the input ASCII form is returned.
func safelyToUnicode(ascii string) string {
	unicode, errToU := profileKeepingLeadingDots.ToUnicode(ascii)
	roundTrip, errToA := profileKeepingLeadingDots.ToASCII(unicode)
	if errToU != nil || errToA != nil || roundTrip != ascii {
		return ascii
	}

	return unicode
}

// ErrNotFQDN means a domain name is not fully qualified.
var ErrNotFQDN = errors.New("not fully qualified")

// New normalizes a domain to its ASCII form. The normalized form is returned
// even when an error is reported, so that callers can still use it on a best-effort basis.
func New(domain string) (FQDN, error) {
	normalized, err := profileDroppingLeadingDots.ToASCII(domain)

	// Remove the final dot for consistency
	normalized = strings.TrimRight(normalized, ".")

	if err == nil && strings.IndexByte(normalized, '.') == -1 {
		err = ErrNotFQDN
	}

	return FQDN(normalized), err
}

// Join places the label under the zone and normalizes the result, ignoring errors.
func Join(label, zone string) FQDN {
	fqdn, _ := New(label + "." + zone)
	return fqdn
}
