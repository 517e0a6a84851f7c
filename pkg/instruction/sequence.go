package instruction

import (
	"Meal-Planner/domain"
	"strings"

	"github.com/google/uuid"
)

// ReorderPolicy decides what Arrange does with an order that is not exactly
// the recipe's set of instructions.
type ReorderPolicy int

const (
	// ReorderStrict rejects missing, foreign and duplicate ids.
	ReorderStrict ReorderPolicy = iota
	// ReorderLenient keeps the supplied ids first, drops duplicates and foreign
	// ids, and appends the steps that were left out in their current order.
	ReorderLenient
)

func ParseReorderPolicy(s string) ReorderPolicy {
	if strings.EqualFold(strings.TrimSpace(s), "lenient") {
		return ReorderLenient
	}
	return ReorderStrict
}

func (p ReorderPolicy) String() string {
	if p == ReorderLenient {
		return "lenient"
	}
	return "strict"
}

// NextStepNumber is the step number of an instruction appended after max.
func NextStepNumber(max int) int {
	if max < 1 {
		return 1
	}
	return max + 1
}

// Arrange computes the complete new order of a recipe's steps. current holds
// the recipe's instruction ids ordered by step number, requested the order
// asked for by the caller. The result always contains every id of current
// exactly once, so assigning 1-based positions keeps numbering contiguous.
func Arrange(current, requested []uuid.UUID, policy ReorderPolicy) ([]uuid.UUID, error) {
	if len(requested) == 0 {
		return nil, domain.ErrNothingToReorder
	}

	known := make(map[uuid.UUID]bool, len(current))
	for _, id := range current {
		known[id] = true
	}

	placed := make(map[uuid.UUID]bool, len(requested))
	order := make([]uuid.UUID, 0, len(current))

	for _, id := range requested {
		if placed[id] {
			if policy == ReorderStrict {
				return nil, domain.ErrDuplicateInstruction
			}
			continue
		}
		if !known[id] {
			if policy == ReorderStrict {
				return nil, domain.ErrInstructionSetMismatch
			}
			continue
		}
		placed[id] = true
		order = append(order, id)
	}

	if len(order) < len(current) {
		if policy == ReorderStrict {
			return nil, domain.ErrInstructionSetMismatch
		}
		for _, id := range current {
			if !placed[id] {
				order = append(order, id)
			}
		}
	}

	return order, nil
}

// Contiguous reports whether step numbers, in any order, are exactly 1..N.
func Contiguous(steps []int) bool {
	seen := make([]bool, len(steps)+1)
	for _, s := range steps {
		if s < 1 || s > len(steps) || seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}
