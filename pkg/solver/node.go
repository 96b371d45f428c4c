package solver

import "github.com/IlikeChooros/go-hanoi/pkg/hanoi"

// Search tree node, stored in an arena owned by a single search run.
// Parent is an index into that arena, or rootParent for the root.
type Node struct {
	Board  hanoi.Board
	Moves  int32
	Parent int32
	Move   hanoi.Move
}

const rootParent int32 = -1

func newRootNode(board hanoi.Board) Node {
	return Node{
		Board:  board.Clone(),
		Parent: rootParent,
		Move:   hanoi.MoveNone,
	}
}

// Child node reached from 'parent' (at arena index 'parentIdx') by 'move'
func newChildNode(parent *Node, parentIdx int32, move hanoi.Move) Node {
	return Node{
		Board:  parent.Board.Apply(move),
		Moves:  parent.Moves + 1,
		Parent: parentIdx,
		Move:   move,
	}
}

// Node arena of a search run
type arena []Node

func (a *arena) add(node Node) int32 {
	*a = append(*a, node)
	return int32(len(*a) - 1)
}

// Walk the parent links from 'idx' up to the root, returning the moves in forward order
func (a arena) path(idx int32) []hanoi.Move {
	moves := make([]hanoi.Move, a[idx].Moves)
	for i := len(moves) - 1; i >= 0; i-- {
		moves[i] = a[idx].Move
		idx = a[idx].Parent
	}
	return moves
}
