package webhook

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// lookupTimeout bounds the DNS resolution performed before dialing a
// webhook target.
const lookupTimeout = 5 * time.Second

// allowPrivateForTests disables the private-address block. Set only from
// test code that points at an httptest server on loopback.
var allowPrivateForTests bool

// privateRanges blocks RFC1918, loopback, link-local/cloud-metadata, and
// IPv6 unique-local/link-local destinations.
var privateRanges []*net.IPNet

func init() {
	for _, cidr := range []string{
		"127.0.0.0/8",
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"169.254.0.0/16",
		"0.0.0.0/8",
		"::1/128",
		"fc00::/7",
		"fe80::/10",
	} {
		_, ipNet, _ := net.ParseCIDR(cidr)
		privateRanges = append(privateRanges, ipNet)
	}
}

// isPrivateIP reports whether ip is loopback, unspecified, or falls in one
// of the blocked private ranges.
func isPrivateIP(ip net.IP) bool {
	if allowPrivateForTests {
		return false
	}
	if ip.IsUnspecified() || ip.IsLoopback() {
		return true
	}
	for _, cidr := range privateRanges {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// resolvePublicIP resolves host and returns its first address, rejecting
// hosts for which any resolved address is private.
func resolvePublicIP(ctx context.Context, host string) (net.IP, error) {
	normalized := strings.TrimSpace(host)
	if normalized == "" {
		return nil, fmt.Errorf("empty hostname")
	}
	if idx := strings.IndexByte(normalized, '%'); idx != -1 {
		normalized = normalized[:idx]
	}

	if ip := net.ParseIP(normalized); ip != nil {
		if isPrivateIP(ip) {
			return nil, fmt.Errorf("host %q is a private address %s", host, ip)
		}
		return ip, nil
	}

	ips, err := net.DefaultResolver.LookupIPAddr(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("dns lookup failed for %q: %w", host, err)
	}
	var public net.IP
	for _, addr := range ips {
		if addr.IP == nil {
			continue
		}
		if isPrivateIP(addr.IP) {
			return nil, fmt.Errorf("hostname %q resolves to private address %s", host, addr.IP)
		}
		if public == nil {
			public = addr.IP
		}
	}
	if public == nil {
		return nil, fmt.Errorf("hostname %q resolved to no addresses", host)
	}
	return public, nil
}

// safeDialContext pins the connection to the resolved public IP so a
// DNS-rebinding attacker cannot swap the destination between validation
// and connect.
func safeDialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("ssrf_blocked: invalid address %s", addr)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	ip, err := resolvePublicIP(lookupCtx, host)
	if err != nil {
		return nil, fmt.Errorf("ssrf_blocked: %w", err)
	}

	var d net.Dialer
	return d.DialContext(ctx, network, net.JoinHostPort(ip.String(), port))
}

// newSafeTransport returns an http.Transport whose dialer rejects
// private/internal webhook destinations.
func newSafeTransport() *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = safeDialContext
	return transport
}
