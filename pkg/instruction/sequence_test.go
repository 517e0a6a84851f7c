package instruction

import (
	"Meal-Planner/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStepNumber(t *testing.T) {
	assert.Equal(t, 1, NextStepNumber(0))
	assert.Equal(t, 1, NextStepNumber(-3))
	assert.Equal(t, 4, NextStepNumber(3))
}

func TestParseReorderPolicy(t *testing.T) {
	assert.Equal(t, ReorderStrict, ParseReorderPolicy(""))
	assert.Equal(t, ReorderStrict, ParseReorderPolicy("strict"))
	assert.Equal(t, ReorderLenient, ParseReorderPolicy(" Lenient "))
	assert.Equal(t, "lenient", ReorderLenient.String())
	assert.Equal(t, "strict", ReorderStrict.String())
}

func TestArrange(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	foreign := uuid.New()
	current := []uuid.UUID{a, b, c}

	tests := []struct {
		name      string
		requested []uuid.UUID
		policy    ReorderPolicy
		want      []uuid.UUID
		wantErr   error
	}{
		{"full order", []uuid.UUID{c, a, b}, ReorderStrict, []uuid.UUID{c, a, b}, nil},
		{"unchanged", []uuid.UUID{a, b, c}, ReorderStrict, []uuid.UUID{a, b, c}, nil},
		{"empty", nil, ReorderStrict, nil, domain.ErrNothingToReorder},
		{"empty lenient", []uuid.UUID{}, ReorderLenient, nil, domain.ErrNothingToReorder},
		{"strict missing", []uuid.UUID{c, a}, ReorderStrict, nil, domain.ErrInstructionSetMismatch},
		{"strict foreign", []uuid.UUID{c, a, b, foreign}, ReorderStrict, nil, domain.ErrInstructionSetMismatch},
		{"strict duplicate", []uuid.UUID{c, c, a, b}, ReorderStrict, nil, domain.ErrDuplicateInstruction},
		{"lenient missing", []uuid.UUID{c}, ReorderLenient, []uuid.UUID{c, a, b}, nil},
		{"lenient foreign", []uuid.UUID{foreign, b}, ReorderLenient, []uuid.UUID{b, a, c}, nil},
		{"lenient duplicate", []uuid.UUID{b, b, c, a}, ReorderLenient, []uuid.UUID{b, c, a}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Arrange(current, tt.requested, tt.policy)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArrange_KeepsEveryStep(t *testing.T) {
	current := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	got, err := Arrange(current, []uuid.UUID{current[3], uuid.New(), current[1]}, ReorderLenient)
	require.NoError(t, err)
	assert.ElementsMatch(t, current, got)
}

func TestContiguous(t *testing.T) {
	assert.True(t, Contiguous(nil))
	assert.True(t, Contiguous([]int{1}))
	assert.True(t, Contiguous([]int{3, 1, 2}))
	assert.False(t, Contiguous([]int{1, 3}))
	assert.False(t, Contiguous([]int{1, 1, 2}))
	assert.False(t, Contiguous([]int{0, 1}))
}
