package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const origin = "https://files.portfolio.test"

func Test_CanonicalAvatarURL(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Relative reference gets the origin prepended",
			raw:      "/profiles/minji.png",
			expected: "https://files.portfolio.test/profiles/minji.png",
		},
		{
			name:     "Already canonical URL stays untouched",
			raw:      "https://files.portfolio.test/profiles/minji.png",
			expected: "https://files.portfolio.test/profiles/minji.png",
		},
		{
			name:     "Doubled origin collapses to a single one",
			raw:      "https://files.portfolio.testhttps://files.portfolio.test/profiles/minji.png",
			expected: "https://files.portfolio.test/profiles/minji.png",
		},
		{
			name:     "Empty reference means no avatar",
			raw:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, CanonicalAvatarURL(origin, tt.raw))
		})
	}
}

// Canonicalization must be stable under re-application: a cached URL fed back
// through the rewrite comes out identical.
func Test_CanonicalAvatarURL_is_idempotent(t *testing.T) {
	req := require.New(t)

	for _, raw := range []string{
		"/profiles/minji.png",
		"https://files.portfolio.test/profiles/minji.png",
		"profiles/minji.png",
	} {
		once := CanonicalAvatarURL(origin, raw)
		twice := CanonicalAvatarURL(origin, once)
		req.Equal(once, twice, "raw=%s", raw)
	}
}
