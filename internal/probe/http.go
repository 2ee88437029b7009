package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/madefor-cc/dns/internal/pp"
)

// DefaultTimeout bounds each request.
const DefaultTimeout = 5 * time.Second

// HTTP implements [Prober] with one GET request. There are no retries.
type HTTP struct {
	Client  *http.Client
	Timeout time.Duration
}

// NewHTTP creates an [HTTP] prober using [http.DefaultClient].
func NewHTTP(timeout time.Duration) *HTTP {
	return &HTTP{Client: http.DefaultClient, Timeout: timeout}
}

// Probe requests the URL and expects the status code 200.
func (h *HTTP) Probe(ctx context.Context, ppfmt pp.PP, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to %q: %v", url, err)
		return false
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Cannot request %s (%v)", url, err)
		return false
	}
	defer resp.Body.Close()

	// Drain the body so that the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		ppfmt.Noticef(pp.EmojiError, "Got HTTP %d when requesting %s", resp.StatusCode, url)
		return false
	}

	return true
}
