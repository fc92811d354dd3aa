package utils

import "net/netip"

// ParseIpAddr parses an address the way registries index them: IPv4 first
// (including IPv4-mapped IPv6), then IPv6. Zones are dropped.
func ParseIpAddr(ip string) (netip.Addr, bool) {
	rawAddr, err := netip.ParseAddr(ip)
	if err != nil {
		return netip.Addr{}, false
	}

	if rawAddr.Is4In6() {
		return rawAddr.Unmap(), true
	}

	return rawAddr.WithZone(""), true
}
