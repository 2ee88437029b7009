package lint_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/madefor-cc/dns/internal/lint"
	"github.com/madefor-cc/dns/internal/mocks"
	"github.com/madefor-cc/dns/internal/pp"
	"github.com/madefor-cc/dns/internal/registry"
)

func TestSuggestCNAME(t *testing.T) {
	t.Parallel()
	for _, tc := range [...]struct {
		input      string
		suggestion string
		ok         bool
	}{
		{"https://example.com/path", "example.com", true},
		{"http://example.com/path", "example.com", true},
		{"example.com/path", "example.com", true},
		{"https://example.com", "example.com", true},
		{"https://example.com/", "example.com", true},
		{"http://example.com/a/b/c", "example.com", true},
		{"https://http://example.com", "http:", true},
		{"ftp://example.com", "ftp:", true},
		{"/example.com", "", false},
		{"https:///example.com", "", false},
		{"https://", "", false},
		{"example.com", "example.com", true},
	} {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			suggestion, ok := lint.SuggestCNAME(tc.input)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.suggestion, suggestion)
		})
	}
}

//nolint:funlen
func TestCheckCNAMEs(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		registry      registry.Registry
		expected      bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"empty": {
			nil, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiCNAME, "All CNAMEs are domain names")
			},
		},
		"valid": {
			registry.Registry{
				{Name: "wolf", CNAME: "cc-wolf-os.github.io"},
				{Name: "www", CNAME: "madefor.cc", Proxied: true},
			},
			true,
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiCNAME, "All CNAMEs are domain names")
			},
		},
		"url": {
			registry.Registry{
				{Name: "a", CNAME: "https://example.com/path"},
			},
			false,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().Noticef(pp.EmojiUserError,
						"Invalid CNAME %q for %q. This should be a domain name, not a URL", "https://example.com/path", "a"),
					m.EXPECT().Infof(pp.EmojiHint, "Maybe try %q instead?", "example.com"),
					m.EXPECT().Hintf(pp.HintCNAMEShape, gomock.Any(), gomock.Any(), gomock.Any()),
				)
			},
		},
		"all-checked": {
			registry.Registry{
				{Name: "a", CNAME: "example.com/path"},
				{Name: "b", CNAME: "b.example.com"},
				{Name: "c", CNAME: "/c"},
				{Name: "d", CNAME: "http://d.example.com"},
			},
			false,
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().Noticef(pp.EmojiUserError,
						"Invalid CNAME %q for %q. This should be a domain name, not a URL", "example.com/path", "a"),
					m.EXPECT().Infof(pp.EmojiHint, "Maybe try %q instead?", "example.com"),
					m.EXPECT().Noticef(pp.EmojiUserError,
						"Invalid CNAME %q for %q. This should be a domain name, not a URL", "/c", "c"),
					m.EXPECT().Noticef(pp.EmojiUserError,
						"Invalid CNAME %q for %q. This should be a domain name, not a URL", "http://d.example.com", "d"),
					m.EXPECT().Infof(pp.EmojiHint, "Maybe try %q instead?", "d.example.com"),
					m.EXPECT().Hintf(pp.HintCNAMEShape, gomock.Any(), gomock.Any(), gomock.Any()),
				)
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

			require.Equal(t, tc.expected, lint.CheckCNAMEs(mockPP, tc.registry))
		})
	}
}
