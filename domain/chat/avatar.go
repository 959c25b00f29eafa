package chat

import "strings"

// CanonicalAvatarURL rewrites a stored image reference into an absolute URL
// under the given origin. The rewrite is idempotent: whether the input
// contains the origin zero, one or N times, the result carries it exactly
// once, as prefix, with the remaining content unchanged.
func CanonicalAvatarURL(origin, raw string) string {
	if raw == "" {
		return ""
	}
	return origin + strings.ReplaceAll(raw, origin, "")
}
