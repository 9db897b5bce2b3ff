package model

import (
	"testing"

	"github.com/avk-dev/netguard/netrange"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	testCases := []struct {
		name    string
		cidr    string
		wantErr bool
	}{
		{name: "ipv4 network", cidr: "192.168.0.0/16"},
		{name: "ipv4 host", cidr: "10.0.0.1/32"},
		{name: "ipv6 network", cidr: "2001:dead:beef::/48"},
		{name: "bad prefix", cidr: "10.0.0.0/64", wantErr: true},
		{name: "bad octet", cidr: "10.0.0.300/8", wantErr: true},
		{name: "not an address", cidr: "example.org/8", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rule, err := NewRule(tc.cidr)
			if tc.wantErr {
				require.ErrorIs(t, err, netrange.ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.cidr, rule.CIDR)
			require.NotNil(t, rule.Range)
		})
	}
}

func TestRule_Covers(t *testing.T) {
	testCases := []struct {
		name     string
		cidr     string
		addr     string
		expected bool
	}{
		{
			name:     "192.168.1.1 in 192.168.0.0/16",
			cidr:     "192.168.0.0/16",
			addr:     "192.168.1.1",
			expected: true,
		},
		{
			name:     "192.168.254.254 in 192.168.0.0/16",
			cidr:     "192.168.0.0/16",
			addr:     "192.168.254.254",
			expected: true,
		},
		{
			name:     "192.169.235.74 not in 192.168.0.0/16",
			cidr:     "192.168.0.0/16",
			addr:     "192.169.235.74",
			expected: false,
		},
		{
			name:     "2001:dead:beef::2 in 2001:dead:beef::/48",
			cidr:     "2001:dead:beef::/48",
			addr:     "2001:dead:beef::2",
			expected: true,
		},
		{
			name:     "ipv4 address not in ipv6 rule",
			cidr:     "2001:dead:beef::/48",
			addr:     "192.168.1.1",
			expected: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rule, err := NewRule(tc.cidr)
			require.NoError(t, err)
			require.Equal(t, tc.expected, rule.Covers(tc.addr))
		})
	}
}
