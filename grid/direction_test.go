package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		from Direction
		want Direction
	}{
		{North, East},
		{East, South},
		{South, West},
		{West, North},
		{NorthEast, SouthEast},
		{NorthWest, NorthEast},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.RotateClockwise())
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, d := range All() {
		got := d
		for range 4 {
			got = got.RotateClockwise()
		}
		assert.Equal(t, d, got, d.String())
	}
}

func TestNeighbor(t *testing.T) {
	origin := NewLocation(2, 2)

	t.Run("Cardinal and diagonal steps", func(t *testing.T) {
		n, ok := origin.Neighbor(North, 1)
		assert.True(t, ok)
		assert.Equal(t, NewLocation(2, 1), n)

		n, ok = origin.Neighbor(SouthWest, 2)
		assert.True(t, ok)
		assert.Equal(t, NewLocation(0, 4), n)

		n, ok = origin.Neighbor(East, 10)
		assert.True(t, ok, "upper bounds are not checked")
		assert.Equal(t, NewLocation(12, 2), n)
	})

	t.Run("Negative coordinates are absent", func(t *testing.T) {
		_, ok := origin.Neighbor(West, 3)
		assert.False(t, ok)

		_, ok = NewLocation(0, 0).Neighbor(North, 1)
		assert.False(t, ok)
	})
}

func TestDirections(t *testing.T) {
	assert.Equal(t, []Direction{North, East, South, West}, Cardinals())
	assert.Len(t, All(), 8)
	assert.True(t, NorthWest.IsValid())
	assert.False(t, Direction(42).IsValid())
	assert.Equal(t, "Unknown", Direction(42).String())

	dCol, dRow := Direction(42).Delta()
	assert.Zero(t, dCol)
	assert.Zero(t, dRow)
}
