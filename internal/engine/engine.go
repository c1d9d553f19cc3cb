package engine

import (
	"time"

	"github.com/hailam/chessplay/internal/board"
)

// Engine is the move-search entry point used by the UCI driver: one
// Searcher, reset and reused across "go" commands.
type Engine struct {
	searcher *Searcher
}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine {
	return &Engine{searcher: NewSearcher()}
}

// Search picks the best move for pos within the given wall-clock budget.
func (e *Engine) Search(pos *board.Position, budget time.Duration) (board.Move, int) {
	return e.searcher.Search(pos, budget)
}

// Stop aborts an in-progress Search as soon as it next polls the clock.
func (e *Engine) Stop() {
	e.searcher.Stop()
}

// Nodes returns the node count from the most recent Search call.
func (e *Engine) Nodes() uint64 {
	return e.searcher.Nodes()
}
