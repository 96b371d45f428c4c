package hanoi

import (
	"fmt"
	"slices"
)

// Board holds the pegs, each a stack of disk sizes from bottom to top
type Board struct {
	pegs  [][]int
	disks int
}

// NewBoard returns the initial configuration: every disk on peg 0,
// the largest at the bottom, other pegs empty
func NewBoard(disks, pegs int) Board {
	if disks < 1 || pegs < 1 || disks > MaxDisks || pegs > MaxPegs {
		panic(fmt.Sprintf("hanoi: %v: disks=%d pegs=%d", ErrDimensions, disks, pegs))
	}

	b := Board{pegs: make([][]int, pegs), disks: disks}
	b.pegs[0] = make([]int, disks)
	for i := 0; i < disks; i++ {
		b.pegs[0][i] = disks - i
	}
	for i := 1; i < pegs; i++ {
		b.pegs[i] = make([]int, 0, disks)
	}
	return b
}

// FromPegs builds a board from explicit stacks (bottom to top), copying them.
// The result is validated.
func FromPegs(pegs [][]int) (Board, error) {
	b := Board{pegs: make([][]int, len(pegs))}
	for i, stack := range pegs {
		b.pegs[i] = slices.Clone(stack)
		if b.pegs[i] == nil {
			b.pegs[i] = []int{}
		}
		b.disks += len(stack)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Number of pegs
func (b Board) Pegs() int {
	return len(b.pegs)
}

// Number of disks
func (b Board) Disks() int {
	return b.disks
}

// Number of disks on given peg
func (b Board) Len(peg int) int {
	return len(b.pegs[peg])
}

// Top disk size on the peg, 0 if it's empty
func (b Board) Top(peg int) int {
	stack := b.pegs[peg]
	if len(stack) == 0 {
		return 0
	}
	return stack[len(stack)-1]
}

// Stack returns a copy of the peg's disks, bottom to top
func (b Board) Stack(peg int) []int {
	return slices.Clone(b.pegs[peg])
}

// Stacks returns a deep copy of all pegs
func (b Board) Stacks() [][]int {
	out := make([][]int, len(b.pegs))
	for i := range b.pegs {
		out[i] = b.Stack(i)
	}
	return out
}

func (b Board) Clone() Board {
	return Board{pegs: b.Stacks(), disks: b.disks}
}

// IsLegal reports whether the move is allowed: the source is non-empty and
// the destination is empty or has a larger top disk
func (b Board) IsLegal(m Move) bool {
	n := len(b.pegs)
	if m.From < 0 || m.From >= n || m.To < 0 || m.To >= n || m.From == m.To {
		return false
	}

	src := b.Top(m.From)
	if src == 0 {
		return false
	}
	dst := b.Top(m.To)
	return dst == 0 || dst > src
}

// Apply returns a new board with the move made, the receiver is left untouched.
// Panics if the move is illegal, callers must check with IsLegal first.
func (b Board) Apply(m Move) Board {
	next := b.Clone()
	next.MakeMove(m)
	return next
}

// MakeMove moves the top disk in place. Panics on an illegal move.
func (b *Board) MakeMove(m Move) {
	if !b.IsLegal(m) {
		panic(fmt.Sprintf("hanoi: illegal move %v on %v", m, b))
	}

	src := b.pegs[m.From]
	disk := src[len(src)-1]
	b.pegs[m.From] = src[:len(src)-1]
	b.pegs[m.To] = append(b.pegs[m.To], disk)
}

// IsSolved reports whether every disk sits on the last peg.
// Stacks are always ordered, so a full last peg is the sorted tower.
func (b Board) IsSolved() bool {
	return len(b.pegs[len(b.pegs)-1]) == b.disks
}

// MisplacedDisks counts the disks not on the last peg
func (b Board) MisplacedDisks() int {
	return b.disks - len(b.pegs[len(b.pegs)-1])
}

// Key returns a comparable value equal for structurally equal boards
func (b Board) Key() Key {
	buf := make([]byte, b.disks)
	for peg, stack := range b.pegs {
		for _, disk := range stack {
			buf[disk-1] = byte(peg)
		}
	}
	return Key(buf)
}

// Equal reports structural equality
func (b Board) Equal(other Board) bool {
	if len(b.pegs) != len(other.pegs) || b.disks != other.disks {
		return false
	}
	for i := range b.pegs {
		if !slices.Equal(b.pegs[i], other.pegs[i]) {
			return false
		}
	}
	return true
}

// Validate checks the board invariants: every size 1..D exactly once,
// and strictly decreasing sizes on each peg
func (b Board) Validate() error {
	if len(b.pegs) < 1 || len(b.pegs) > MaxPegs || b.disks < 1 || b.disks > MaxDisks {
		return fmt.Errorf("%w: disks=%d pegs=%d", ErrDimensions, b.disks, len(b.pegs))
	}

	// duplicates first, a repeated size may also be out of range
	counts := make(map[int]int, b.disks)
	for peg, stack := range b.pegs {
		for _, disk := range stack {
			if counts[disk]++; counts[disk] > 1 {
				return fmt.Errorf("%w: disk %d on peg %d", ErrDuplicateDisk, disk, peg)
			}
		}
	}

	seen := make([]bool, b.disks+1)
	for peg, stack := range b.pegs {
		for i, disk := range stack {
			if disk < 1 || disk > b.disks {
				return fmt.Errorf("%w: disk %d on peg %d", ErrDiskRange, disk, peg)
			}
			seen[disk] = true
			if i > 0 && stack[i-1] <= disk {
				return fmt.Errorf("%w: disk %d over %d on peg %d", ErrStackOrder, disk, stack[i-1], peg)
			}
		}
	}

	for disk := 1; disk <= b.disks; disk++ {
		if !seen[disk] {
			return fmt.Errorf("%w: disk %d", ErrMissingDisk, disk)
		}
	}
	return nil
}
