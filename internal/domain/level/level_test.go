package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnown(t *testing.T) {
	tests := []struct {
		id       string
		expected bool
	}{
		{id: "level_1", expected: true},
		{id: "level_2", expected: true},
		{id: "reflex_1", expected: true},
		{id: "reflex_3", expected: true},
		{id: "level_99", expected: false},
		{id: "reflex_99", expected: false},
		{id: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsKnown(tt.id))
		})
	}
}

func TestRandomParFromSeed(t *testing.T) {
	// Детерминизм: один сид всегда даёт один пар.
	assert.Equal(t, RandomParFromSeed("abc"), RandomParFromSeed("abc"))

	// Диапазон [10, 50] для любых сидов.
	for _, seed := range []string{"", "a", "seed42", "очень длинный сид"} {
		par := RandomParFromSeed(seed)
		assert.GreaterOrEqual(t, par, 10)
		assert.LessOrEqual(t, par, 50)
	}
}
