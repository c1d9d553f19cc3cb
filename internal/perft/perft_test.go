package perft_test

import (
	"testing"

	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/perft"
)

func mustFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestPerftStartingPosition(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		pos := mustFEN(t, board.StartFEN)
		if got := perft.Perft(pos, c.depth); got != c.nodes {
			t.Errorf("Perft(start, %d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

func TestPerftStartingPositionDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth-5 perft in short mode")
	}
	pos := mustFEN(t, board.StartFEN)
	const want = 4865609
	if got := perft.Perft(pos, 5); got != want {
		t.Errorf("Perft(start, 5) = %d, want %d", got, want)
	}
}

func TestPerftKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		pos := mustFEN(t, fen)
		if got := perft.Perft(pos, c.depth); got != c.nodes {
			t.Errorf("Perft(kiwipete, %d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

func TestPerftPosition3(t *testing.T) {
	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}
	for _, c := range cases {
		pos := mustFEN(t, fen)
		if got := perft.Perft(pos, c.depth); got != c.nodes {
			t.Errorf("Perft(position3, %d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

func TestPerftPosition4(t *testing.T) {
	const fen = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	pos := mustFEN(t, fen)
	const want = 9467
	if got := perft.Perft(pos, 3); got != want {
		t.Errorf("Perft(position4, 3) = %d, want %d", got, want)
	}
}

func TestPerftEnPassantPin(t *testing.T) {
	const fen = "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1"
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 6},
		{2, 94},
	}
	for _, c := range cases {
		pos := mustFEN(t, fen)
		if got := perft.Perft(pos, c.depth); got != c.nodes {
			t.Errorf("Perft(en-passant-pin, %d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

func TestDivideSumsToTotal(t *testing.T) {
	pos := mustFEN(t, board.StartFEN)
	entries, total := perft.Divide(pos, 3)
	if total != 8902 {
		t.Fatalf("Divide total = %d, want 8902", total)
	}
	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	if sum != total {
		t.Errorf("sum of divide entries = %d, want %d", sum, total)
	}
	if len(entries) != 20 {
		t.Errorf("Divide at depth 3 produced %d root moves, want 20", len(entries))
	}
}
