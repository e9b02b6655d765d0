package cave

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTile(t *testing.T) {
	tests := []struct {
		current Tile
		walls   int
		want    Tile
	}{
		{Open, 0, Open},
		{Wall, 3, Open},
		{Open, 4, Open},
		{Wall, 4, Wall},
		{Open, 5, Wall},
		{Wall, 8, Wall},
	}

	for _, tt := range tests {
		if got := nextTile(tt.current, tt.walls); got != tt.want {
			t.Errorf("nextTile(%v, %d) = %v, want %v", tt.current, tt.walls, got, tt.want)
		}
	}
}

func TestSmoothExactlyFourKeepsTile(t *testing.T) {
	// The centre's neighbours are not changed before it is visited in
	// scan order, so it still sees four walls under in-place smoothing.
	for _, policy := range []SmoothingPolicy{PolicySnapshot, PolicyInPlace} {
		for _, centre := range []Tile{Open, Wall} {
			grid := ParseGrid(
				"#####",
				"###.#",
				"##..#",
				"##..#",
				"#####",
			)
			grid.Set(2, 2, centre)
			require.Equal(t, 4, grid.WallNeighbors(2, 2))

			Smooth(grid, policy)

			assert.Equal(t, centre, grid.At(2, 2),
				"policy %s: centre with four wall neighbours should keep its value", policy)
		}
	}
}

func TestSmoothFixedPoint(t *testing.T) {
	for _, policy := range []SmoothingPolicy{PolicySnapshot, PolicyInPlace} {
		grid := ParseGrid(
			"######",
			"##..##",
			"#....#",
			"#....#",
			"##..##",
			"######",
		)
		before := grid.Clone()

		Smooth(grid, policy)

		assert.True(t, before.Equal(grid), "policy %s: fixed point changed:\n%s", policy, grid)
	}
}

func TestSmoothPolicies(t *testing.T) {
	ring := func() *Grid {
		return ParseGrid(
			"#####",
			"#...#",
			"#...#",
			"#...#",
			"#####",
		)
	}
	plus := ParseGrid(
		"#####",
		"##.##",
		"#...#",
		"##.##",
		"#####",
	)

	tests := []struct {
		policy    SmoothingPolicy
		afterTwo  *Grid
		openAfter int
	}{
		{
			policy: PolicySnapshot,
			afterTwo: ParseGrid(
				"#####",
				"#####",
				"##.##",
				"#####",
				"#####",
			),
			openAfter: 1,
		},
		{
			policy: PolicyInPlace,
			afterTwo: ParseGrid(
				"#####",
				"#####",
				"#####",
				"#####",
				"#####",
			),
			openAfter: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			grid := ring()

			Smooth(grid, tt.policy)
			assert.True(t, plus.Equal(grid), "after one pass got\n%s", grid)

			Smooth(grid, tt.policy)
			assert.True(t, tt.afterTwo.Equal(grid), "after two passes got\n%s", grid)
			assert.Equal(t, tt.openAfter, grid.Count(Open))

			for i := 2; i < SmoothingPasses; i++ {
				Smooth(grid, tt.policy)
			}
			assert.Equal(t, 0, grid.Count(Open), "after %d passes got\n%s", SmoothingPasses, grid)
		})
	}
}

func TestSmoothingPolicyString(t *testing.T) {
	tests := []struct {
		policy   SmoothingPolicy
		expected string
	}{
		{PolicySnapshot, "snapshot"},
		{PolicyInPlace, "inplace"},
		{SmoothingPolicy(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.policy.String(); got != tt.expected {
			t.Errorf("SmoothingPolicy(%d).String() = %q, want %q", tt.policy, got, tt.expected)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicySnapshot, p)

	p, err = ParsePolicy(" In-Place ")
	require.NoError(t, err)
	assert.Equal(t, PolicyInPlace, p)

	_, err = ParsePolicy("sideways")
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
