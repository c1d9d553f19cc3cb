package engine

import (
	"testing"
	"time"

	"github.com/hailam/chessplay/internal/board"
)

func TestSearchReturnsLegalMove(t *testing.T) {
	pos := board.NewPosition()
	eng := NewEngine()

	move, _ := eng.Search(pos, 200*time.Millisecond)
	if move == board.NoMove {
		t.Fatal("Search returned NoMove for starting position")
	}

	legal := pos.GenerateLegalMoves()
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i) == move {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Search returned %s, not a legal move", move.String())
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	pos.UpdateCheckers()

	eng := NewEngine()
	move, score := eng.Search(pos, time.Second)
	if move == board.NoMove {
		t.Fatal("Search returned NoMove")
	}

	child := pos.Copy()
	child.MakeMove(move)
	child.UpdateCheckers()
	if !child.IsCheckmate() {
		t.Errorf("move %s does not deliver checkmate", move.String())
	}
	if score < MateValue-100 {
		t.Errorf("score %d does not reflect a mate-in-one", score)
	}
}

func TestSearchStalemate(t *testing.T) {
	pos, err := board.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	pos.UpdateCheckers()
	if !pos.IsStalemate() {
		t.Fatal("position is not stalemate, test fixture is wrong")
	}

	eng := NewEngine()
	move, _ := eng.Search(pos, 200*time.Millisecond)
	if move != board.NoMove {
		t.Errorf("Search returned %s for a stalemate position, want NoMove", move.String())
	}
}

func TestSearchAvoidsHangingQueen(t *testing.T) {
	pos, err := board.ParseFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	pos.UpdateCheckers()

	eng := NewEngine()
	move, _ := eng.Search(pos, 2*time.Second)
	if move == board.NoMove {
		t.Fatal("Search returned NoMove")
	}

	child := pos.Copy()
	child.MakeMove(move)
	child.UpdateCheckers()

	if Evaluate(child) > QueenValue/2 {
		t.Errorf("move %s hangs material for black: eval = %d", move.String(), Evaluate(child))
	}

	replies := child.GenerateLegalMoves()
	for i := 0; i < replies.Len(); i++ {
		r := replies.Get(i)
		if !r.IsCapture() {
			continue
		}
		attacker := child.PieceAt(r.From()).Value()
		if victim := r.Captured().Value(); victim > attacker {
			t.Errorf("move %s lets white play %s, winning a %d-value piece with a %d-value one", move.String(), r.String(), victim, attacker)
		}
	}
}

func TestEvaluateSymmetric(t *testing.T) {
	pos := board.NewPosition()
	if got := Evaluate(pos); got != 0 {
		t.Errorf("Evaluate(start) = %d, want 0", got)
	}
}

func TestEvaluateMaterialDominates(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := Evaluate(pos); got <= 0 {
		t.Errorf("Evaluate(white up a queen) = %d, want positive", got)
	}
}
