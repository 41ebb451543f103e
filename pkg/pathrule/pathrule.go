package pathrule

import "strings"

// Wildcard is the suffix marker that turns an exempt pattern into a
// prefix match.
const Wildcard = "*"

// RequiresAuth reports whether a request path must carry authentication,
// given the configured exempt patterns. It fails closed: an empty path or
// an empty pattern set always requires auth.
//
// A pattern ending in "*" exempts every path that starts with the
// pattern's prefix; any other pattern exempts only the exact path.
func RequiresAuth(path string, exempt []string) bool {
	if path == "" {
		return true
	}

	if len(exempt) == 0 {
		return true
	}

	for _, pattern := range exempt {
		if pattern == "" {
			continue
		}
		if strings.HasSuffix(pattern, Wildcard) {
			if strings.HasPrefix(path, strings.TrimSuffix(pattern, Wildcard)) {
				return false
			}
		} else if path == pattern {
			return false
		}
	}

	return true
}
