package bag

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/vk/cubecount/internal/game"
)

// ErrSumOverflow is returned when the feasible game IDs add up past the
// largest uint64.
var ErrSumOverflow = errors.New("sum of game ids overflows uint64")

// DefaultCapacity is the bag used when no other capacity is configured.
var DefaultCapacity = game.CubeSet{Red: 12, Green: 13, Blue: 14}

// Evaluator checks games against a bag capacity.
type Evaluator struct {
	Capacity game.CubeSet
	Policy   Policy
}

// NewEvaluator returns an Evaluator for the given capacity and policy. An
// empty policy selects PolicyMax.
func NewEvaluator(capacity game.CubeSet, policy Policy) *Evaluator {
	if policy == "" {
		policy = PolicyMax
	}
	return &Evaluator{Capacity: capacity, Policy: policy}
}

// saturatingAdd returns a+b, or math.MaxUint64 if the addition carries.
// A saturated total still exceeds any capacity it could be compared to.
func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// Observed folds the game's draws into one CubeSet according to the policy.
// Totals under PolicySum saturate at math.MaxUint64.
func (e *Evaluator) Observed(g game.Game) game.CubeSet {
	var acc game.CubeSet
	for _, set := range g.Sets {
		if e.Policy == PolicySum {
			acc.Red = saturatingAdd(acc.Red, set.Red)
			acc.Green = saturatingAdd(acc.Green, set.Green)
			acc.Blue = saturatingAdd(acc.Blue, set.Blue)
			continue
		}
		acc.Red = max(acc.Red, set.Red)
		acc.Green = max(acc.Green, set.Green)
		acc.Blue = max(acc.Blue, set.Blue)
	}
	return acc
}

// Feasible reports whether the game could have been played with the bag.
func (e *Evaluator) Feasible(g game.Game) bool {
	return e.Observed(g).Within(e.Capacity)
}

// addID adds a feasible game's ID to sum, failing instead of wrapping.
func addID(sum uint64, g game.Game) (uint64, error) {
	total, carry := bits.Add64(sum, g.ID, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: adding game %d to %d", ErrSumOverflow, g.ID, sum)
	}
	return total, nil
}

// SumFeasibleIDs adds up the IDs of every feasible game.
func (e *Evaluator) SumFeasibleIDs(games []game.Game) (uint64, error) {
	var sum uint64
	for _, g := range games {
		if !e.Feasible(g) {
			continue
		}
		var err error
		if sum, err = addID(sum, g); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// Result is the outcome of evaluating a batch of games.
type Result struct {
	Sum           uint64       `json:"sum" yaml:"sum"`
	Games         int          `json:"games" yaml:"games"`
	FeasibleIDs   []uint64     `json:"feasible_ids" yaml:"feasible_ids"`
	InfeasibleIDs []uint64     `json:"infeasible_ids" yaml:"infeasible_ids"`
	Policy        Policy       `json:"policy" yaml:"policy"`
	Capacity      game.CubeSet `json:"bag" yaml:"bag"`
}

// Evaluate splits the games into feasible and infeasible ones and sums the
// feasible IDs. Input order is preserved in both ID lists. An overflowing
// sum fails the whole evaluation.
func (e *Evaluator) Evaluate(games []game.Game) (Result, error) {
	res := Result{
		Games:         len(games),
		FeasibleIDs:   []uint64{},
		InfeasibleIDs: []uint64{},
		Policy:        e.Policy,
		Capacity:      e.Capacity,
	}
	for _, g := range games {
		if !e.Feasible(g) {
			res.InfeasibleIDs = append(res.InfeasibleIDs, g.ID)
			continue
		}
		sum, err := addID(res.Sum, g)
		if err != nil {
			return Result{}, err
		}
		res.Sum = sum
		res.FeasibleIDs = append(res.FeasibleIDs, g.ID)
	}
	return res, nil
}
