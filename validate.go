package homes

import (
	"net/url"
	"strings"
)

// ListingHost is the site whose listing page template the extractor understands.
const ListingHost = "calgaryhomes.ca"

// ValidateListingURL returns an EINVALID error unless raw is an absolute
// http(s) URL on ListingHost or one of its subdomains.
func ValidateListingURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Errorf(EINVALID, "listing URL required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Errorf(EINVALID, "invalid listing URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "listing URL must use http or https: %q", raw)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return Errorf(EINVALID, "listing URL has no host: %q", raw)
	}
	if host != ListingHost && !strings.HasSuffix(host, "."+ListingHost) {
		return Errorf(EINVALID, "not a %s URL: %q", ListingHost, raw)
	}

	return nil
}
