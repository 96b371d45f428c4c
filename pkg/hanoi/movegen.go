package hanoi

type MoveList struct {
	Moves []Move
}

func NewMoveList(capacity int) *MoveList {
	return &MoveList{Moves: make([]Move, 0, capacity)}
}

func (ml *MoveList) AppendMove(mv Move) {
	ml.Moves = append(ml.Moves, mv)
}

func (ml *MoveList) Size() int {
	return len(ml.Moves)
}

// GenerateMoves lists the legal moves, ordered by source then destination peg
func (b Board) GenerateMoves() *MoveList {
	n := len(b.pegs)
	movelist := NewMoveList(n * (n - 1))

	for from := 0; from < n; from++ {
		src := b.Top(from)
		if src == 0 {
			continue
		}
		for to := 0; to < n; to++ {
			if to == from {
				continue
			}
			if dst := b.Top(to); dst == 0 || dst > src {
				movelist.AppendMove(Move{From: from, To: to})
			}
		}
	}

	return movelist
}
