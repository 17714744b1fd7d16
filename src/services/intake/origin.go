package intake

import (
	"net/url"
	"strings"
)

// OriginPolicy decides whether a browser post comes from one of our sites.
// Requests that carry neither Origin nor Referer (server to server, curl)
// are allowed.
type OriginPolicy struct {
	allowed map[string]struct{}
}

func NewOriginPolicy(origins []string) *OriginPolicy {
	p := &OriginPolicy{allowed: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		if n := normalizeOrigin(o); n != "" {
			p.allowed[n] = struct{}{}
		}
	}
	return p
}

// Allowed checks Origin first, then falls back to Referer.
func (p *OriginPolicy) Allowed(origin, referer string) bool {
	switch {
	case origin != "":
		return p.has(normalizeOrigin(origin))
	case referer != "":
		return p.has(normalizeOrigin(referer))
	default:
		return true
	}
}

func (p *OriginPolicy) has(o string) bool {
	if o == "" {
		return false
	}
	_, ok := p.allowed[o]
	return ok
}

// normalizeOrigin reduces a URL to lowercase scheme://host[:port].
func normalizeOrigin(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Scheme + "://" + u.Host)
}
