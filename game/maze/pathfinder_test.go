package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const splitPicture = `
#######
#..#..#
#..#..#
#.##..#
#######
`

func TestHasPath(t *testing.T) {
	g, err := Parse(splitPicture)
	require.NoError(t, err)

	tests := []struct {
		name     string
		from, to Coordinate
		want     bool
	}{
		{name: "same region", from: C(1, 1), to: C(1, 3), want: true},
		{name: "across the wall", from: C(1, 1), to: C(5, 3), want: false},
		{name: "right region", from: C(4, 1), to: C(5, 3), want: true},
		{name: "to itself", from: C(2, 2), to: C(2, 2), want: true},
		{name: "from a wall", from: C(3, 1), to: C(2, 1), want: false},
		{name: "to a wall", from: C(2, 1), to: C(3, 1), want: false},
		{name: "off grid", from: C(-1, 1), to: C(1, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPath(g, tt.from, tt.to))
			assert.Equal(t, tt.want, HasPath(g, tt.to, tt.from), "paths are symmetric")
		})
	}
}

func TestReachableFrom(t *testing.T) {
	g, err := Parse(splitPicture)
	require.NoError(t, err)
	before := g.Clone()

	left := ReachableFrom(g, C(1, 1))
	assert.Len(t, left, 5)
	right := ReachableFrom(g, C(5, 3))
	assert.Len(t, right, 6)
	assert.Empty(t, ReachableFrom(g, C(0, 0)))

	assert.False(t, AllOpenReachableFrom(g, C(1, 1)))
	assert.Equal(t, before, g, "search must not mutate the grid")

	g.SetWall(C(3, 2), false)
	assert.True(t, AllOpenReachableFrom(g, C(1, 1)))
}
