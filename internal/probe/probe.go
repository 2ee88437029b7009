// Package probe checks whether a website is up.
package probe

import (
	"context"

	"github.com/madefor-cc/dns/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_probe.go -package=mocks . Prober

// A Prober checks whether a URL is up, printing the reason when it is not.
type Prober interface {
	// Probe sends one request to the URL and reports whether it succeeded.
	Probe(ctx context.Context, ppfmt pp.PP, url string) bool
}
