package internal

import (
	"net"
	"sync"
	"time"
)

// Resolver discovers the host's IP addresses from the OS network
// interfaces. Results may be cached for a short TTL; a TTL of zero
// recomputes on every call. The cache is safe for concurrent readers.
type Resolver struct {
	showLoopback bool
	cacheTTL     time.Duration

	mu       sync.RWMutex
	cached   []string
	cachedAt time.Time
}

func NewResolver(showLoopback bool, cacheTTL time.Duration) *Resolver {
	return &Resolver{showLoopback: showLoopback, cacheTTL: cacheTTL}
}

// Addresses returns the discovered addresses in interface enumeration
// order, deduplicated, loopback and link-local excluded unless the
// resolver was built with showLoopback. Never returns nil.
func (r *Resolver) Addresses() []string {
	if r.cacheTTL > 0 {
		r.mu.RLock()
		if r.cached != nil && time.Since(r.cachedAt) < r.cacheTTL {
			snapshot := r.cached
			r.mu.RUnlock()
			return snapshot
		}
		r.mu.RUnlock()
	}

	addrs := discoverAddresses(r.showLoopback)

	if r.cacheTTL > 0 {
		r.mu.Lock()
		r.cached = addrs
		r.cachedAt = time.Now()
		r.mu.Unlock()
	}
	return addrs
}

func discoverAddresses(showLoopback bool) []string {
	out := make([]string, 0, 8)

	ifaces, err := net.Interfaces()
	if err != nil {
		return out
	}

	seen := make(map[string]struct{})
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok || ipnet.IP == nil {
				continue
			}
			if !includeIP(ipnet.IP, showLoopback) {
				continue
			}
			s := ipnet.IP.String()
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// includeIP decides whether an address belongs in the discovery
// result. Loopback (127/8, ::1) and link-local (169.254/16, fe80::/10)
// ranges are host-internal and hidden unless explicitly requested.
func includeIP(ip net.IP, showLoopback bool) bool {
	if showLoopback {
		return true
	}
	return !ip.IsLoopback() && !ip.IsLinkLocalUnicast()
}
