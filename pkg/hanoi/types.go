package hanoi

import (
	"errors"
	"fmt"
)

// Default puzzle dimensions
const (
	DefaultDisks = 5
	DefaultPegs  = 5
)

// Upper bound on pegs and disks, keeps Key a single byte per disk
const (
	MaxPegs  = 16
	MaxDisks = 64
)

// Invariant violations reported by Validate
var (
	ErrDimensions    = errors.New("invalid board dimensions")
	ErrDuplicateDisk = errors.New("duplicate disk")
	ErrMissingDisk   = errors.New("missing disk")
	ErrDiskRange     = errors.New("disk size out of range")
	ErrStackOrder    = errors.New("larger disk on top of a smaller one")
)

// Move of the top disk from peg 'From' to peg 'To'
type Move struct {
	From int
	To   int
}

// Sentinel for 'no move', used by search roots
var MoveNone = Move{From: -1, To: -1}

func (m Move) String() string {
	if m == MoveNone {
		return "none"
	}
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

// Key identifies a configuration: byte i holds the peg of disk i+1.
// Since stacks are ordered by size, this is a bijection with valid boards.
type Key string
