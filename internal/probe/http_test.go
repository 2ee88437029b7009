package probe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/madefor-cc/dns/internal/mocks"
	"github.com/madefor-cc/dns/internal/pp"
	"github.com/madefor-cc/dns/internal/probe"
)

func TestNewHTTP(t *testing.T) {
	t.Parallel()

	h := probe.NewHTTP(probe.DefaultTimeout)
	require.Equal(t, &probe.HTTP{Client: http.DefaultClient, Timeout: 5 * time.Second}, h)
}

//nolint:funlen
func TestHTTPProbe(t *testing.T) {
	t.Parallel()

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))
	t.Cleanup(ok.Close)

	notFound := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(notFound.Close)

	noContent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(noContent.Close)

	redirect := httptest.NewServer(http.RedirectHandler(ok.URL, http.StatusMovedPermanently))
	t.Cleanup(redirect.Close)

	slow := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(slow.Close)

	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()

	for name, tc := range map[string]struct {
		url           string
		nilClient     bool
		timeout       time.Duration
		expected      bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"200":        {ok.URL, false, time.Second, true, nil},
		"200/nil":    {ok.URL, true, time.Second, true, nil},
		"redirected": {redirect.URL, false, time.Second, true, nil},
		"404": {
			notFound.URL, false, time.Second, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiError, "Got HTTP %d when requesting %s", http.StatusNotFound, notFound.URL)
			},
		},
		"204": {
			noContent.URL, false, time.Second, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiError, "Got HTTP %d when requesting %s", http.StatusNoContent, noContent.URL)
			},
		},
		"timeout": {
			slow.URL, false, 10 * time.Millisecond, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiError, "Cannot request %s (%v)", slow.URL, gomock.Any())
			},
		},
		"refused": {
			closed.URL, false, time.Second, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiError, "Cannot request %s (%v)", closed.URL, gomock.Any())
			},
		},
		"ill-formed": {
			"http://exa mple.com", false, time.Second, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to %q: %v", "http://exa mple.com", gomock.Any())
			},
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mockCtrl := gomock.NewController(t)

			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}

			h := &probe.HTTP{Client: &http.Client{}, Timeout: tc.timeout} //nolint:exhaustruct
			if tc.nilClient {
				h.Client = nil
			}

			require.Equal(t, tc.expected, h.Probe(context.Background(), mockPP, tc.url))
		})
	}
}

func TestHTTPProbeCancelled(t *testing.T) {
	t.Parallel()
	mockCtrl := gomock.NewController(t)

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().Noticef(pp.EmojiError, "Cannot request %s (%v)", server.URL, gomock.Any())

	require.False(t, probe.NewHTTP(time.Second).Probe(ctx, mockPP, server.URL))
}
