package engine

import "github.com/hailam/chessplay/internal/board"

// Move ordering scores, highest searched first: captures by victim value (no
// attacker term), then the two killer slots for this ply, then promotions,
// then everything else.
const (
	captureBase    = 10000
	promotionBase  = 5000
	killerScore1   = 9000
	killerScore2   = 8000
)

// scoreMoves assigns each move in ml an ordering score.
func scoreMoves(ml *board.MoveList, ply int, killers [maxPly][2]board.Move) [256]int {
	var scores [256]int
	for i := 0; i < ml.Len(); i++ {
		scores[i] = scoreMove(ml.Get(i), ply, killers)
	}
	return scores
}

func scoreMove(m board.Move, ply int, killers [maxPly][2]board.Move) int {
	switch {
	case m.IsCapture():
		return captureBase + pieceValues[m.Captured().Type()]
	case m.IsPromotion():
		return promotionBase + pieceValues[m.Promotion().Type()]
	case ply < maxPly && killers[ply][0] == m:
		return killerScore1
	case ply < maxPly && killers[ply][1] == m:
		return killerScore2
	default:
		return 0
	}
}

// pickMove selects the highest-scoring move from ml[index:] and swaps it
// into position index, a selection sort performed lazily one slot at a time.
func pickMove(ml *board.MoveList, scores *[256]int, index int) {
	best := index
	for j := index + 1; j < ml.Len(); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != index {
		ml.Swap(index, best)
		scores[index], scores[best] = scores[best], scores[index]
	}
}
