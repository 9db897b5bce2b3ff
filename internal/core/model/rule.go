package model

import "github.com/avk-dev/netguard/netrange"

// ListType names the rule list a screening rule belongs to.
type ListType string

const (
	Allow ListType = "allow list"
	Deny  ListType = "deny list"
)

// Rule is a single screening rule: a CIDR literal compiled into the
// address range it covers.
type Rule struct {
	CIDR  string
	Range *netrange.NetworkRange
}

// NewRule compiles a CIDR literal into a rule. The literal is validated,
// a bad rule should fail loudly at registration time rather than silently
// match nothing.
func NewRule(cidr string) (*Rule, error) {
	nr, err := netrange.ParseNetworkStrict(cidr)
	if err != nil {
		return nil, err
	}
	return &Rule{CIDR: cidr, Range: nr}, nil
}

func (r *Rule) Covers(addr string) bool {
	return r.Range.Matches(addr)
}
