// Package perft counts leaf nodes reachable from a position to a fixed
// depth, the acceptance oracle for move generation correctness.
package perft

import "github.com/hailam/chessplay/internal/board"

// Perft returns the number of leaf positions reachable from pos in exactly
// depth plies. It clones and applies each pseudo-legal move, discarding
// children that leave the mover's own king in check, matching the rest of
// the engine's no-unmake, clone-before-recurse discipline.
func Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	ml := pos.GeneratePseudoLegalMoves()
	us := pos.SideToMove

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		child := pos.Copy()
		child.MakeMove(m)
		if child.IsSquareAttacked(child.KingSquare[us], child.SideToMove) {
			continue
		}
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// DivideEntry is one root move's subtree node count, as reported by Divide.
type DivideEntry struct {
	Move  board.Move
	Nodes uint64
}

// Divide breaks down Perft(pos, depth) by root move, useful for bisecting a
// move-generation bug to a single root move.
func Divide(pos *board.Position, depth int) ([]DivideEntry, uint64) {
	if depth < 1 {
		return nil, Perft(pos, depth)
	}

	ml := pos.GeneratePseudoLegalMoves()
	us := pos.SideToMove

	var entries []DivideEntry
	var total uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		child := pos.Copy()
		child.MakeMove(m)
		if child.IsSquareAttacked(child.KingSquare[us], child.SideToMove) {
			continue
		}
		nodes := Perft(child, depth-1)
		entries = append(entries, DivideEntry{Move: m, Nodes: nodes})
		total += nodes
	}
	return entries, total
}
