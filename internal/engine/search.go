package engine

import (
	"sync/atomic"
	"time"

	"github.com/hailam/chessplay/internal/board"
)

// MateValue is the score assigned to a forced mate, discounted by ply so
// shorter mates score higher than longer ones.
const MateValue = 49000

const maxPly = 64

// nodeClockInterval is how often (in nodes visited) the search polls the
// wall clock to honor its time budget.
const nodeClockInterval = 2048

// Searcher runs a single-threaded negamax search with alpha-beta pruning,
// MVV-LVA/killer move ordering, quiescence, and iterative deepening.
type Searcher struct {
	nodes     uint64
	deadline  time.Time
	stopFlag  atomic.Bool
	killers   [maxPly][2]board.Move
	bestMove  board.Move
	bestScore int
}

// NewSearcher returns a ready-to-use Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Stop requests that an in-progress search return as soon as it next polls
// the clock.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search runs iterative deepening from pos for up to budget wall-clock time,
// and returns the best move found along with its score. It returns NoMove if
// pos has no legal moves.
func (s *Searcher) Search(pos *board.Position, budget time.Duration) (board.Move, int) {
	s.nodes = 0
	s.stopFlag.Store(false)
	s.killers = [maxPly][2]board.Move{}
	s.bestMove = board.NoMove
	s.bestScore = 0

	allocated := budget - 50*time.Millisecond
	if allocated < 50*time.Millisecond {
		allocated = 50 * time.Millisecond
	}
	s.deadline = time.Now().Add(allocated)

	root := pos.Copy()
	legal := root.GenerateLegalMoves()
	if legal.Len() == 0 {
		return board.NoMove, 0
	}

	bestMove := legal.Get(0)
	bestScore := -MateValue

	for depth := 1; depth <= 64; depth++ {
		score, move, ok := s.searchRoot(root, legal, depth)
		if !ok {
			break
		}
		bestScore = score
		bestMove = move

		if bestScore > 48000 || bestScore < -48000 {
			break
		}
		if s.timeUp() {
			break
		}
	}

	s.bestMove = bestMove
	s.bestScore = bestScore
	return bestMove, bestScore
}

// searchRoot searches every root move at the given depth and returns the
// best score/move pair. ok is false if the search was aborted mid-depth, in
// which case the partial result must be discarded.
func (s *Searcher) searchRoot(root *board.Position, legal *board.MoveList, depth int) (int, board.Move, bool) {
	us := root.SideToMove

	scores := scoreMoves(legal, 0, s.killers)

	alpha, beta := -MateValue, MateValue
	bestScore := -MateValue
	bestMove := legal.Get(0)
	found := false

	for i := 0; i < legal.Len(); i++ {
		pickMove(legal, &scores, i)
		m := legal.Get(i)

		child := root.Copy()
		child.MakeMove(m)
		if child.IsSquareAttacked(child.KingSquare[us], child.SideToMove) {
			continue
		}
		found = true

		score := -s.negamax(child, depth-1, 1, -beta, -alpha)
		if s.stopFlag.Load() {
			return 0, board.NoMove, false
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if !found {
		// No legal root move: stalemate or checkmate, report as terminal.
		if root.InCheck() {
			return -MateValue, board.NoMove, true
		}
		return 0, board.NoMove, true
	}

	return bestScore, bestMove, true
}

// negamax searches pos to depth plies, returning the score from the side to
// move's perspective.
func (s *Searcher) negamax(pos *board.Position, depth, ply int, alpha, beta int) int {
	s.nodes++
	if s.nodes%nodeClockInterval == 0 && s.timeUp() {
		s.stopFlag.Store(true)
	}
	if s.stopFlag.Load() {
		return 0
	}

	if depth <= 0 {
		return s.quiescence(pos, ply, alpha, beta)
	}

	us := pos.SideToMove

	moves := pos.GeneratePseudoLegalMoves()
	var scores [256]int
	if ply < maxPly {
		scores = scoreMoves(moves, ply, s.killers)
	} else {
		scores = scoreMoves(moves, maxPly-1, s.killers)
	}

	bestScore := -MateValue
	legalSeen := false

	for i := 0; i < moves.Len(); i++ {
		pickMove(moves, &scores, i)
		m := moves.Get(i)

		child := pos.Copy()
		child.MakeMove(m)
		if child.IsSquareAttacked(child.KingSquare[us], child.SideToMove) {
			continue
		}
		legalSeen = true

		score := -s.negamax(child, depth-1, ply+1, -beta, -alpha)
		if s.stopFlag.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !m.IsCapture() && !m.IsPromotion() && ply < maxPly {
				s.killers[ply][1] = s.killers[ply][0]
				s.killers[ply][0] = m
			}
			return beta
		}
	}

	if !legalSeen {
		if pos.InCheck() {
			return -MateValue + ply
		}
		return 0
	}

	return bestScore
}

// quiescence extends the search along captures only, to avoid misjudging
// positions where a capture sequence is still in progress at the horizon.
func (s *Searcher) quiescence(pos *board.Position, ply int, alpha, beta int) int {
	s.nodes++
	if s.nodes%nodeClockInterval == 0 && s.timeUp() {
		s.stopFlag.Store(true)
	}
	if s.stopFlag.Load() {
		return 0
	}

	standPat := Evaluate(pos)
	if pos.SideToMove == board.Black {
		standPat = -standPat
	}

	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	us := pos.SideToMove

	// GenerateCaptures also emits quiet push-promotions alongside true
	// captures; both are tactically forcing enough to extend past the
	// horizon here.
	moves := pos.GenerateCaptures()
	scores := scoreMoves(moves, 0, [maxPly][2]board.Move{})

	for i := 0; i < moves.Len(); i++ {
		pickMove(moves, &scores, i)
		m := moves.Get(i)

		child := pos.Copy()
		child.MakeMove(m)
		if child.IsSquareAttacked(child.KingSquare[us], child.SideToMove) {
			continue
		}

		score := -s.quiescence(child, ply+1, -beta, -alpha)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

func (s *Searcher) timeUp() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}
