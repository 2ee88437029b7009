package lint

import (
	"strings"

	"github.com/madefor-cc/dns/internal/pp"
	"github.com/madefor-cc/dns/internal/registry"
)

// SuggestCNAME guesses the domain name behind a CNAME that looks like a URL.
// At most one of the prefixes "https://" and "http://" is removed, and then
// everything from the first remaining "/" is dropped unless the "/" comes first.
// It gives up if a "/" is still there or if nothing is left.
func SuggestCNAME(cname string) (string, bool) {
	suggestion, found := strings.CutPrefix(cname, "https://")
	if !found {
		suggestion = strings.TrimPrefix(cname, "http://")
	}

	if i := strings.IndexByte(suggestion, '/'); i > 0 {
		suggestion = suggestion[:i]
	}

	// An empty name, as left over from "https://", is never suggested.
	if suggestion == "" || strings.Contains(suggestion, "/") {
		return "", false
	}

	return suggestion, true
}

// CheckCNAMEs checks that no CNAME looks like a URL.
// Only the common mistake of using URLs is caught; other malformed names pass.
func CheckCNAMEs(ppfmt pp.PP, r registry.Registry) bool {
	valid := true

	for _, e := range r {
		if !strings.Contains(e.CNAME, "/") {
			continue
		}

		valid = false
		ppfmt.Noticef(pp.EmojiUserError,
			"Invalid CNAME %q for %q. This should be a domain name, not a URL", e.CNAME, e.Name)

		if suggestion, ok := SuggestCNAME(e.CNAME); ok {
			ppfmt.Infof(pp.EmojiHint, "Maybe try %q instead?", suggestion)
		}
	}

	if valid {
		ppfmt.Infof(pp.EmojiCNAME, "All CNAMEs are domain names")
	} else {
		ppfmt.Hintf(pp.HintCNAMEShape,
			"A CNAME should be a bare domain name such as %q, without %q or any path",
			"cc-wolf-os.github.io", "https://")
	}

	return valid
}
