package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// GetIP resolves the client address of r. The headers are consulted in
// order and the first valid address wins; for X-Forwarded-For style lists
// the left-most valid entry is used. RemoteAddr is the fallback. Pass only
// headers set by a proxy you control: clients can forge any of them.
func GetIP(r *http.Request, headers ...string) string {
	for _, h := range headers {
		for v := range strings.SplitSeq(r.Header.Get(h), ",") {
			if ip := parseIP(v); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP returns the canonical form of s, or "" when s is not an address.
func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
