package lib

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a user-supplied link into an absolute https URL.
// The empty string passes through unchanged. Bare domains and scheme-relative
// strings get the https scheme, default ports and trailing slashes are
// stripped, and the host is lowercased. The result is stable: normalizing an
// already-normalized URL returns the same value.
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}

	if strings.HasPrefix(s, "//") {
		s = "https:" + s
	} else if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("cannot parse %q as a URL: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("cannot parse %q as a URL: missing host", raw)
	}

	u.Scheme = "https"
	u.Host = strings.ToLower(u.Host)
	if p := u.Port(); p == "80" || p == "443" {
		u.Host = u.Hostname()
	}
	u.Path = strings.TrimRight(u.Path, "/")

	return u.String(), nil
}
