package board

import "fmt"

// Move encodes a chess move in 32 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-17: flags (bitset: Capture, DoublePush, EnPassant, Castling, Promotion)
// bits 18-21: promotion piece code (mailbox Piece, valid when FlagPromotion set)
// bits 22-25: captured piece code (mailbox Piece, valid when FlagCapture set)
type Move uint32

// Move flags. Unlike the historical single-value Flag of earlier revisions,
// these are independent bits so a move can be e.g. both a capture and a
// promotion at once.
const (
	FlagCapture    uint32 = 1 << 0
	FlagDoublePush uint32 = 1 << 1
	FlagEnPassant  uint32 = 1 << 2
	FlagCastling   uint32 = 1 << 3
	FlagPromotion  uint32 = 1 << 4
)

const (
	shiftTo        = 6
	shiftFlags     = 12
	shiftPromotion = 18
	shiftCaptured  = 22
	maskSquare     = 0x3F
	maskFlags      = 0x3F
	maskPiece      = 0xF
)

// NoMove represents an invalid or null move (the all-zero word).
const NoMove Move = 0

func encode(from, to Square, flags uint32, promo, captured Piece) Move {
	return Move(from) |
		Move(to)<<shiftTo |
		Move(flags)<<shiftFlags |
		Move(promo)<<shiftPromotion |
		Move(captured)<<shiftCaptured
}

// NewMove creates a quiet, non-special move.
func NewMove(from, to Square) Move {
	return encode(from, to, 0, NoPiece, NoPiece)
}

// NewCapture creates a capturing move.
func NewCapture(from, to Square, captured Piece) Move {
	return encode(from, to, FlagCapture, NoPiece, captured)
}

// NewDoublePush creates a two-square pawn push.
func NewDoublePush(from, to Square) Move {
	return encode(from, to, FlagDoublePush, NoPiece, NoPiece)
}

// NewPromotion creates a (possibly capturing) promotion move.
func NewPromotion(from, to Square, promo Piece, captured Piece) Move {
	flags := FlagPromotion
	if captured != NoPiece {
		flags |= FlagCapture
	}
	return encode(from, to, flags, promo, captured)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square, captured Piece) Move {
	return encode(from, to, FlagEnPassant|FlagCapture, NoPiece, captured)
}

// NewCastling creates a castling move (king's travel square only; the rook
// hop is reconstructed from the king's destination during application).
func NewCastling(from, to Square) Move {
	return encode(from, to, FlagCastling, NoPiece, NoPiece)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & maskSquare)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> shiftTo) & maskSquare)
}

// Flags returns the raw flag bitset.
func (m Move) Flags() uint32 {
	return uint32(m>>shiftFlags) & maskFlags
}

// Promotion returns the promotion piece (only meaningful if IsPromotion).
func (m Move) Promotion() Piece {
	return Piece(m>>shiftPromotion) & maskPiece
}

// Captured returns the captured piece (only meaningful if IsCapture).
func (m Move) Captured() Piece {
	return Piece(m>>shiftCaptured) & maskPiece
}

// IsCapture returns true if this move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.Flags()&FlagCapture != 0
}

// IsDoublePush returns true if this is a two-square pawn push.
func (m Move) IsDoublePush() bool {
	return m.Flags()&FlagDoublePush != 0
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Flags()&FlagPromotion != 0
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.Flags()&FlagCastling != 0
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flags()&FlagEnPassant != 0
}

// IsQuiet returns true if this move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// String returns the UCI wire form of the move ("e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		s += string(m.Promotion().Type().Char())
	}

	return s
}

// ParseMove parses a UCI move string against legal, the current position's
// legal moves,
// so that flags and the captured-piece field are reconstructed exactly as
// the mover produced them. Returns an error if no legal move matches.
func ParseMove(s string, legal []Move) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move string: %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move string: %q: %w", s, err)
	}

	var promo byte
	if len(s) == 5 {
		promo = s[4]
	}

	for _, m := range legal {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			if promo == 0 {
				continue
			}
			if m.Promotion().Type().Char() != promo {
				continue
			}
		} else if promo != 0 {
			continue
		}
		return m, nil
	}

	return NoMove, fmt.Errorf("no legal move matches %q", s)
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set sets the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
