package netrange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Address widths in bytes.
const (
	IPv4Len = 4
	IPv6Len = 16
)

// ErrMalformedInput reports text that matches neither the dotted-decimal
// nor the colon-hex address shape.
var ErrMalformedInput = errors.New("malformed address")

// ParseAddress converts an IPv4 or IPv6 literal into its byte form: 4 bytes
// for dotted-decimal text, 16 for colon-hex text. Parsing is best-effort:
// octets are not range-checked, missing IPv4 octets default to zero and the
// bytes an IPv6 "::" elides stay zero. ParseAddressStrict is the validating
// counterpart.
func ParseAddress(s string) ([]byte, error) {
	switch {
	case strings.Contains(s, ":"):
		return parseIPv6(s), nil
	case strings.Contains(s, "."):
		return parseIPv4(s), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrMalformedInput, s)
}

// parseIPv4 places every maximal run of decimal digits into the next octet,
// left to right.
func parseIPv4(s string) []byte {
	addr := make([]byte, IPv4Len)
	pos := 0
	for i := 0; i < len(s) && pos < IPv4Len; {
		if !isDigit(s[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		n, _ := strconv.ParseUint(s[i:j], 10, 64)
		addr[pos] = byte(n)
		pos++
		i = j
	}
	return addr
}

// parseIPv6 writes two bytes per colon-separated group. A "::" elision
// jumps the write position to the tail of the buffer so the remaining
// groups land flush against the end, leaving the middle zeroed.
func parseIPv6(s string) []byte {
	addr := make([]byte, IPv6Len)
	groups := strings.Split(s, ":")
	pos := 0
	for i, g := range groups {
		if g == "" {
			pos = IPv6Len - 2*nonEmpty(groups[i+1:])
			if pos < 0 {
				pos = 0
			}
			continue
		}
		hi, lo := groupBytes(g)
		if pos+1 < IPv6Len {
			addr[pos] = hi
			addr[pos+1] = lo
		}
		pos += 2
	}
	return addr
}

// groupBytes packs one hex group into two bytes: the trailing two digits
// form the low byte, anything before them the high byte.
func groupBytes(g string) (byte, byte) {
	if len(g) > 2 {
		hi, _ := strconv.ParseUint(g[:len(g)-2], 16, 64)
		lo, _ := strconv.ParseUint(g[len(g)-2:], 16, 64)
		return byte(hi), byte(lo)
	}
	lo, _ := strconv.ParseUint(g, 16, 64)
	return 0, byte(lo)
}

func nonEmpty(groups []string) int {
	n := 0
	for _, g := range groups {
		if g != "" {
			n++
		}
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
