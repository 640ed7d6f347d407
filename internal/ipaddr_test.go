package internal

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludeIP(t *testing.T) {
	cases := []struct {
		ip           string
		showLoopback bool
		want         bool
	}{
		{"10.0.0.5", false, true},
		{"192.168.1.20", false, true},
		{"127.0.0.1", false, false},
		{"127.1.2.3", false, false},
		{"169.254.10.1", false, false},
		{"::1", false, false},
		{"fe80::1", false, false},
		{"2001:db8::1", false, true},
		{"127.0.0.1", true, true},
		{"::1", true, true},
		{"169.254.10.1", true, true},
	}
	for _, tc := range cases {
		ip := net.ParseIP(tc.ip)
		require.NotNil(t, ip, tc.ip)
		assert.Equal(t, tc.want, includeIP(ip, tc.showLoopback), "ip=%s showLoopback=%v", tc.ip, tc.showLoopback)
	}
}

func TestAddressesNeverNilAndDeduplicated(t *testing.T) {
	r := NewResolver(true, 0)

	addrs := r.Addresses()
	require.NotNil(t, addrs)

	seen := make(map[string]struct{}, len(addrs))
	for _, a := range addrs {
		_, dup := seen[a]
		assert.False(t, dup, "duplicate address %s", a)
		seen[a] = struct{}{}
	}
}

func TestAddressesFilterLoopback(t *testing.T) {
	r := NewResolver(false, 0)
	for _, a := range r.Addresses() {
		assert.False(t, strings.HasPrefix(a, "127."), "loopback %s leaked through filter", a)
		assert.NotEqual(t, "::1", a)
	}
}

func TestAddressesShowLoopback(t *testing.T) {
	var loopbacks []string
	ifaceAddrs, err := net.InterfaceAddrs()
	require.NoError(t, err)
	for _, a := range ifaceAddrs {
		if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.IsLoopback() {
			loopbacks = append(loopbacks, ipnet.IP.String())
		}
	}
	if len(loopbacks) == 0 {
		t.Skip("host has no loopback addresses")
	}

	addrs := NewResolver(true, 0).Addresses()
	for _, lo := range loopbacks {
		assert.Contains(t, addrs, lo)
	}
}

func TestAddressesCached(t *testing.T) {
	r := NewResolver(false, time.Hour)

	first := r.Addresses()
	second := r.Addresses()
	assert.Equal(t, first, second)

	// same backing slice while the TTL holds
	if len(first) > 0 {
		assert.Same(t, &first[0], &second[0])
	}
}
