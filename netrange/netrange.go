// Package netrange parses IPv4 and IPv6 CIDR literals and answers whether
// an address falls inside the resulting range. A range is kept as an
// inclusive per-byte lower/upper bound pair rather than one wide integer.
package netrange

import (
	"fmt"
	"strconv"
	"strings"
)

// Family tags a NetworkRange with its address family.
type Family byte

const (
	IPv4 Family = iota
	IPv6
)

func (f Family) String() string {
	if f == IPv6 {
		return "IPv6"
	}
	return "IPv4"
}

func (f Family) width() int {
	if f == IPv6 {
		return IPv6Len
	}
	return IPv4Len
}

// DetectFamily reports the family of a textual address by shape: colon-hex
// means IPv6, dotted-decimal means IPv4, anything else is ErrMalformedInput.
func DetectFamily(s string) (Family, error) {
	switch {
	case strings.Contains(s, ":"):
		return IPv6, nil
	case strings.Contains(s, "."):
		return IPv4, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrMalformedInput, s)
}

// NetworkRange holds the inclusive per-byte bounds implied by a CIDR
// prefix. It is immutable after construction and safe for concurrent use.
type NetworkRange struct {
	family Family
	bits   int
	lower  []byte
	upper  []byte
}

// ParseNetwork builds a NetworkRange from "<address>[/<prefix-length>]".
// A missing or unreadable prefix length defaults to the full address width
// (32 or 128), an exact single-address match. The address bytes are taken
// as the lower bound unmasked; the upper bound fills every host bit with
// ones. Fails only when the text contains neither '.' nor ':'.
func ParseNetwork(cidr string) (*NetworkRange, error) {
	addr, suffix, _ := strings.Cut(cidr, "/")
	family, err := DetectFamily(addr)
	if err != nil {
		return nil, err
	}
	bits := family.width() * 8
	if n, err := strconv.Atoi(suffix); err == nil {
		bits = n
	}
	lower, err := ParseAddress(addr)
	if err != nil {
		return nil, err
	}
	return newNetworkRange(family, lower, bits), nil
}

func newNetworkRange(family Family, lower []byte, bits int) *NetworkRange {
	return &NetworkRange{
		family: family,
		bits:   bits,
		lower:  lower,
		upper:  upperBound(lower, bits),
	}
}

// upperBound fills the host bits of every byte at or beyond the prefix
// boundary with ones. cPos is the bit offset just past byte i.
func upperBound(lower []byte, bits int) []byte {
	upper := make([]byte, len(lower))
	for i, b := range lower {
		cPos := (i + 1) * 8
		switch {
		case bits >= cPos:
			upper[i] = b
		case bits <= cPos-8:
			upper[i] = b | 0xff
		default:
			upper[i] = b | byte(1<<(cPos-bits)-1)
		}
	}
	return upper
}

// Matches reports whether the address lies inside the range. It never
// fails: unparseable text and a family mismatch report false.
func (nr *NetworkRange) Matches(addr string) bool {
	family, err := DetectFamily(addr)
	if err != nil || family != nr.family {
		return false
	}
	b, err := ParseAddress(addr)
	if err != nil {
		return false
	}
	for i := range nr.lower {
		if b[i] < nr.lower[i] || b[i] > nr.upper[i] {
			return false
		}
	}
	return true
}

func (nr *NetworkRange) IsIPv4() bool {
	return nr.family == IPv4
}

func (nr *NetworkRange) IsIPv6() bool {
	return nr.family == IPv6
}

func (nr *NetworkRange) Family() Family {
	return nr.family
}

// Bits returns the prefix length the range was built from.
func (nr *NetworkRange) Bits() int {
	return nr.bits
}

// Lower returns a copy of the inclusive lower bound.
func (nr *NetworkRange) Lower() []byte {
	return append([]byte(nil), nr.lower...)
}

// Upper returns a copy of the inclusive upper bound.
func (nr *NetworkRange) Upper() []byte {
	return append([]byte(nil), nr.upper...)
}

// String renders the range in CIDR form.
func (nr *NetworkRange) String() string {
	return formatAddr(nr.family, nr.lower) + "/" + strconv.Itoa(nr.bits)
}

func formatAddr(family Family, b []byte) string {
	if family == IPv4 {
		return fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
	}
	groups := make([]string, IPv6Len/2)
	for i := range groups {
		groups[i] = strconv.FormatUint(uint64(b[2*i])<<8|uint64(b[2*i+1]), 16)
	}
	return strings.Join(groups, ":")
}
