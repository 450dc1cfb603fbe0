package bag

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Policy selects how a game's draws are folded into the per-color values
// compared against the bag capacity.
type Policy string

const (
	// PolicyMax compares the largest single draw of each color. A draw is put
	// back before the next one, so this is what the bag must have held.
	PolicyMax Policy = "max"
	// PolicySum compares the total drawn of each color across all draws.
	PolicySum Policy = "sum"
)

// Policies lists every supported policy.
var Policies = []Policy{PolicyMax, PolicySum}

// ParsePolicy validates a policy name. An empty name selects PolicyMax.
func ParsePolicy(name string) (Policy, error) {
	switch p := Policy(cases.Fold().String(strings.TrimSpace(name))); p {
	case "":
		return PolicyMax, nil
	case PolicyMax, PolicySum:
		return p, nil
	default:
		return "", fmt.Errorf("invalid policy %q: must be 'max' or 'sum'", name)
	}
}
