package hanoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(5, 5)

	assert.Equal(t, 5, b.Pegs())
	assert.Equal(t, 5, b.Disks())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, b.Stack(0))
	for peg := 1; peg < 5; peg++ {
		assert.Empty(t, b.Stack(peg), "peg %d", peg)
	}
	assert.Equal(t, "5,4,3,2,1||||", b.String())
	require.NoError(t, b.Validate())
	assert.False(t, b.IsSolved())
}

func TestNewBoardPanicsOnBadDimensions(t *testing.T) {
	assert.Panics(t, func() { NewBoard(0, 3) })
	assert.Panics(t, func() { NewBoard(3, 0) })
	assert.Panics(t, func() { NewBoard(3, MaxPegs+1) })
}

func TestIsLegal(t *testing.T) {
	b, err := ParseBoard("3|2|1|")
	require.NoError(t, err)

	cases := []struct {
		name  string
		move  Move
		legal bool
	}{
		{"from empty peg", Move{From: 3, To: 0}, false},
		{"larger onto smaller", Move{From: 0, To: 2}, false},
		{"larger onto smaller 2", Move{From: 1, To: 2}, false},
		{"smaller onto larger", Move{From: 2, To: 0}, true},
		{"onto empty peg", Move{From: 0, To: 3}, true},
		{"same peg", Move{From: 1, To: 1}, false},
		{"out of range", Move{From: 0, To: 4}, false},
		{"negative", Move{From: -1, To: 0}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.legal, b.IsLegal(tc.move))
		})
	}
}

func TestApplyIsPure(t *testing.T) {
	b := NewBoard(3, 3)
	next := b.Apply(Move{From: 0, To: 2})

	assert.Equal(t, "3,2,1||", b.String())
	assert.Equal(t, "3,2||1", next.String())

	// the copies don't share stacks
	next.MakeMove(Move{From: 0, To: 1})
	assert.Equal(t, "3,2,1||", b.String())
	assert.Equal(t, "3|2|1", next.String())
}

func TestApplyPanicsOnIllegalMove(t *testing.T) {
	b := NewBoard(3, 3)
	assert.Panics(t, func() { b.Apply(Move{From: 1, To: 0}) })
	assert.Panics(t, func() {
		b.Apply(Move{From: 0, To: 1}).Apply(Move{From: 0, To: 1})
	})
}

func TestIsSolved(t *testing.T) {
	solved, err := ParseBoard("||3,2,1")
	require.NoError(t, err)
	assert.True(t, solved.IsSolved())
	assert.Equal(t, 0, solved.MisplacedDisks())

	for _, notation := range []string{"3,2,1||", "|3,2,1|", "3||2,1", "|1|3,2"} {
		b, err := ParseBoard(notation)
		require.NoError(t, err)
		assert.False(t, b.IsSolved(), notation)
	}

	b, err := ParseBoard("3||2,1")
	require.NoError(t, err)
	assert.Equal(t, 1, b.MisplacedDisks())
}

func TestGenerateMoves(t *testing.T) {
	b := NewBoard(2, 2)
	ml := b.GenerateMoves()
	require.Equal(t, 1, ml.Size())
	assert.Equal(t, Move{From: 0, To: 1}, ml.Moves[0])

	b, err := ParseBoard("3|2|1")
	require.NoError(t, err)
	assert.Equal(t, []Move{{From: 1, To: 0}, {From: 2, To: 0}, {From: 2, To: 1}}, b.GenerateMoves().Moves)

	for _, mv := range NewBoard(5, 5).GenerateMoves().Moves {
		assert.True(t, NewBoard(5, 5).IsLegal(mv))
	}
}

func TestKey(t *testing.T) {
	a, err := ParseBoard("3|2|1")
	require.NoError(t, err)
	b, err := ParseBoard("3|2|1")
	require.NoError(t, err)
	c, err := ParseBoard("3|1|2")
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	seen := map[Key]bool{a.Key(): true}
	assert.True(t, seen[b.Key()])
	assert.False(t, seen[c.Key()])
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		pegs [][]int
		err  error
	}{
		{"duplicate", [][]int{{3, 2}, {2}, {1}}, ErrDuplicateDisk},
		{"duplicate above disk count", [][]int{{3, 3}, {}, {}}, ErrDuplicateDisk},
		{"order", [][]int{{1, 3}, {2}, {}}, ErrStackOrder},
		{"range", [][]int{{4, 2}, {1}, {}}, ErrDiskRange},
		{"empty", [][]int{}, ErrDimensions},
		{"no disks", [][]int{{}, {}}, ErrDimensions},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromPegs(tc.pegs)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(" 5,4 | 3 | | 2,1 | ")
	require.NoError(t, err)
	assert.Equal(t, "5,4|3||2,1|", b.String())
	assert.Equal(t, 5, b.Pegs())

	_, err = ParseBoard("3,x||")
	assert.Error(t, err)

	_, err = ParseBoard("3,3||")
	assert.ErrorIs(t, err, ErrDuplicateDisk)
}
