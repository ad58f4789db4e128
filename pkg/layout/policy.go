package layout

import (
	"fmt"
	"strings"
)

// Policy decides how a layout reacts to children the resolver dropped and
// to required regions left empty.
type Policy uint8

const (
	// PolicyPermissive renders whatever resolved.
	PolicyPermissive Policy = iota

	// PolicyWarn renders and logs a warning per problem.
	PolicyWarn

	// PolicyStrict fails the render on the first resolution with problems.
	PolicyStrict
)

// String returns the policy name as used in configuration.
func (p Policy) String() string {
	switch p {
	case PolicyPermissive:
		return "permissive"
	case PolicyWarn:
		return "warn"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy parses a policy name. The empty string is PolicyPermissive.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return PolicyPermissive, nil
	case "warn":
		return PolicyWarn, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return PolicyPermissive, fmt.Errorf("unknown layout policy %q", s)
	}
}
