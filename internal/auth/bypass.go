package auth

import "strings"

// Bypass decides which request paths skip the password gate entirely.
type Bypass struct {
	prefixes []string
}

// NewBypass returns a Bypass for the given asset prefixes. The API prefix is
// always included.
func NewBypass(assetPrefixes []string) *Bypass {
	prefixes := make([]string, 0, len(assetPrefixes)+1)
	prefixes = append(prefixes, APIPathPrefix)
	prefixes = append(prefixes, assetPrefixes...)
	return &Bypass{prefixes: prefixes}
}

// IsBypassed reports whether path is served without checking the auth cookie:
// asset and API prefixes, the login page and anything below it, and any path
// that looks like a file (contains a dot).
func (b *Bypass) IsBypassed(path string) bool {
	for _, prefix := range b.prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	if IsLoginPath(path) {
		return true
	}

	return strings.Contains(path, ".")
}

// IsLoginPath reports whether path is the login page or one of its sub-paths.
func IsLoginPath(path string) bool {
	return path == LoginPath || strings.HasPrefix(path, LoginPath+"/")
}
