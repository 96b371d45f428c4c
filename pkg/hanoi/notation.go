package hanoi

import (
	"fmt"
	"strconv"
	"strings"
)

/*
Board notation: pegs separated by '|', disks listed bottom to top separated by ','.
The initial 5x5 board is "5,4,3,2,1||||".
*/

const (
	pegSeparator  = "|"
	diskSeparator = ","
)

func (b Board) String() string {
	builder := strings.Builder{}
	for i, stack := range b.pegs {
		if i > 0 {
			builder.WriteString(pegSeparator)
		}
		for j, disk := range stack {
			if j > 0 {
				builder.WriteString(diskSeparator)
			}
			builder.WriteString(strconv.Itoa(disk))
		}
	}
	return builder.String()
}

// ParseBoard reads the notation produced by Board.String and validates the result
func ParseBoard(notation string) (Board, error) {
	fields := strings.Split(strings.TrimSpace(notation), pegSeparator)
	pegs := make([][]int, len(fields))

	for i, field := range fields {
		field = strings.TrimSpace(field)
		pegs[i] = []int{}
		if field == "" {
			continue
		}
		for _, token := range strings.Split(field, diskSeparator) {
			disk, err := strconv.Atoi(strings.TrimSpace(token))
			if err != nil {
				return Board{}, fmt.Errorf("peg %d: invalid disk %q: %w", i, token, err)
			}
			pegs[i] = append(pegs[i], disk)
		}
	}

	return FromPegs(pegs)
}
