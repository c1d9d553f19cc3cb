package board

import "testing"

func TestCoordSquareRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		coord := SquareToCoord(sq)
		got := CoordToSquare(coord)
		if got != sq {
			t.Errorf("CoordToSquare(SquareToCoord(%v)) = %v, want %v", sq, got, sq)
		}
	}
}

func TestCoordToSquareRejectsGarbage(t *testing.T) {
	cases := []string{"", "z9", "a9", "i1", "a0"}
	for _, c := range cases {
		if got := CoordToSquare(c); got != NoSquare {
			t.Errorf("CoordToSquare(%q) = %v, want NoSquare", c, got)
		}
	}
}

func TestParseMoveIdentifiesUniqueMove(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	legal := pos.GenerateLegalMoves()

	m, err := ParseMove("e2e4", legal.Slice())
	if err != nil {
		t.Fatalf("ParseMove(e2e4): %v", err)
	}
	if m.From() != E2 || m.To() != E4 || !m.IsDoublePush() {
		t.Errorf("ParseMove(e2e4) = %v, want a double push from e2 to e4", m)
	}
}

func TestParseMoveDisambiguatesPromotion(t *testing.T) {
	pos, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	legal := pos.GenerateLegalMoves()

	for _, promo := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"} {
		m, err := ParseMove(promo, legal.Slice())
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", promo, err)
		}
		if !m.IsPromotion() {
			t.Errorf("ParseMove(%s) did not return a promotion move", promo)
		}
	}

	if _, err := ParseMove("a8", legal.Slice()); err == nil {
		t.Error("ParseMove(a8) should fail: too short")
	}
}
