package netrange

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAddressStrict is the validating counterpart of ParseAddress: exactly
// four in-range octets for IPv4; for IPv6, 1-4 hex digits per group, a
// correct group count and at most one "::".
func ParseAddressStrict(s string) ([]byte, error) {
	switch {
	case strings.Contains(s, ":"):
		return parseIPv6Strict(s)
	case strings.Contains(s, "."):
		return parseIPv4Strict(s)
	}
	return nil, fmt.Errorf("%w: %q", ErrMalformedInput, s)
}

// ParseNetworkStrict validates both parts of a CIDR literal: the address
// via ParseAddressStrict, the optional suffix as a plain integer within
// 0..32 (IPv4) or 0..128 (IPv6).
func ParseNetworkStrict(cidr string) (*NetworkRange, error) {
	addr, suffix, hasSuffix := strings.Cut(cidr, "/")
	family, err := DetectFamily(addr)
	if err != nil {
		return nil, err
	}
	bits := family.width() * 8
	if hasSuffix {
		n, err := strconv.ParseUint(suffix, 10, 8)
		if err != nil || int(n) > family.width()*8 {
			return nil, fmt.Errorf("%w: %q: prefix length %q", ErrMalformedInput, cidr, suffix)
		}
		bits = int(n)
	}
	lower, err := ParseAddressStrict(addr)
	if err != nil {
		return nil, err
	}
	return newNetworkRange(family, lower, bits), nil
}

func parseIPv4Strict(s string) ([]byte, error) {
	octets := strings.Split(s, ".")
	if len(octets) != IPv4Len {
		return nil, fmt.Errorf("%w: %q: want 4 octets, got %d", ErrMalformedInput, s, len(octets))
	}
	addr := make([]byte, IPv4Len)
	for i, oct := range octets {
		n, err := strconv.ParseUint(oct, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: octet %q", ErrMalformedInput, s, oct)
		}
		addr[i] = byte(n)
	}
	return addr, nil
}

func parseIPv6Strict(s string) ([]byte, error) {
	halves := strings.Split(s, "::")
	if len(halves) > 2 {
		return nil, fmt.Errorf("%w: %q: more than one \"::\"", ErrMalformedInput, s)
	}

	head, err := parseGroups(halves[0], s)
	if err != nil {
		return nil, err
	}
	var tail []uint16
	if len(halves) == 2 {
		if tail, err = parseGroups(halves[1], s); err != nil {
			return nil, err
		}
		// "::" stands for at least one zero group.
		if len(head)+len(tail) > IPv6Len/2-1 {
			return nil, fmt.Errorf("%w: %q: too many groups around \"::\"", ErrMalformedInput, s)
		}
	} else if len(head) != IPv6Len/2 {
		return nil, fmt.Errorf("%w: %q: want 8 groups, got %d", ErrMalformedInput, s, len(head))
	}

	addr := make([]byte, IPv6Len)
	for i, g := range head {
		addr[2*i], addr[2*i+1] = byte(g>>8), byte(g)
	}
	off := IPv6Len - 2*len(tail)
	for i, g := range tail {
		addr[off+2*i], addr[off+2*i+1] = byte(g>>8), byte(g)
	}
	return addr, nil
}

func parseGroups(half string, s string) ([]uint16, error) {
	if half == "" {
		return nil, nil
	}
	var groups []uint16
	for _, g := range strings.Split(half, ":") {
		if len(g) < 1 || len(g) > 4 {
			return nil, fmt.Errorf("%w: %q: group %q", ErrMalformedInput, s, g)
		}
		n, err := strconv.ParseUint(g, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: group %q", ErrMalformedInput, s, g)
		}
		groups = append(groups, uint16(n))
	}
	return groups, nil
}
