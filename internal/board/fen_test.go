package board

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2Q w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip mismatch: ParseFEN(%q).ToFEN() = %q", fen, got)
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) succeeded, want error", fen)
		}
	}
}

func TestMakeMoveInvariants(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	legal := pos.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		child := pos.Copy()
		child.MakeMove(legal.Get(i))

		if child.Pieces[White][King].PopCount() != 1 {
			t.Fatalf("move %s: white has %d kings", legal.Get(i), child.Pieces[White][King].PopCount())
		}
		if child.Pieces[Black][King].PopCount() != 1 {
			t.Fatalf("move %s: black has %d kings", legal.Get(i), child.Pieces[Black][King].PopCount())
		}

		recomputed := *child
		recomputed.updateOccupied()
		if recomputed.AllOccupied != child.AllOccupied {
			t.Errorf("move %s: occupancy out of sync with piece bitboards", legal.Get(i))
		}
		if child.Occupied[White]&child.Occupied[Black] != 0 {
			t.Errorf("move %s: white and black occupancy overlap", legal.Get(i))
		}

		for sq := A1; sq <= H8; sq++ {
			piece := child.PieceAt(sq)
			onBoard := child.AllOccupied.IsSet(sq)
			if (piece != NoPiece) != onBoard {
				t.Errorf("move %s: mailbox/plane mismatch at %s", legal.Get(i), sq)
			}
		}
	}
}
