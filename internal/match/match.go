// Package match implements the wildcard selector matching used to filter
// station, channel, array, and component fields against user-supplied
// patterns.
package match

import "path"

// Any reports whether value matches at least one of the shell-style
// patterns (`*`, `?`, character classes). An empty pattern list matches
// nothing; callers that treat a missing filter as "match everything" must
// short-circuit before calling. Malformed patterns simply fail to match.
func Any(patterns []string, value string) bool {
	for _, p := range patterns {
		if ok, err := path.Match(p, value); err == nil && ok {
			return true
		}
	}
	return false
}
