package domain

// FQDN is a fully qualified domain in its ASCII form.
type FQDN string

// DNSNameASCII returns the ASCII form of the FQDN.
func (f FQDN) DNSNameASCII() string { return string(f) }

// Describe gives a human-readable representation of the FQDN.
func (f FQDN) Describe() string {
	return safelyToUnicode(string(f))
}
