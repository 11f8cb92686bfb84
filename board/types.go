// Package board is a small mailbox-based chess position representation:
// the Position Oracle reference adapter's concrete board. It deliberately
// avoids bitboards/magic-bitboard attack tables so every rule can be
// hand-verified by reading it, since this repository is built without
// running the Go toolchain.
package board

import "fmt"

// Color is the side owning a piece or to move.
type Color int8

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Sign returns +1 for White, -1 for Black, matching the side-to-move sign
// convention in engine.Position callers.
func (c Color) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceKind enumerates piece types. Values line up with engine.PieceKind's
// ordering (None, Pawn, Knight, Bishop, Rook, Queen, King) so conversions
// between the two are a direct cast.
type PieceKind int8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece packs a kind and its owning color. The zero Piece (NoKind, White)
// represents an empty square.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// Empty is the zero-value empty-square piece.
var Empty = Piece{Kind: NoKind}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// Square is a 0-indexed (file, rank) board coordinate; file 0 = 'a',
// rank 0 = rank 1 (White's back rank).
type Square struct {
	File int8
	Rank int8
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

// Index returns s's 0-63 mailbox index (rank-major).
func (s Square) Index() int { return int(s.Rank)*8 + int(s.File) }

// SquareFromIndex inverts Square.Index.
func SquareFromIndex(i int) Square { return Square{File: int8(i % 8), Rank: int8(i / 8)} }

// String renders algebraic notation, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

// CastleRights is a bitmask: 1=White kingside, 2=White queenside,
// 4=Black kingside, 8=Black queenside.
type CastleRights uint8

const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Move is the board package's concrete Move value. It is comparable with
// ==, satisfying engine.Move's contract, as long as no field is a slice
// or map (it isn't).
type Move struct {
	From, To   Square
	Piece      Piece
	Captured   Piece
	HasCapture bool
	Promotion  PieceKind // NoKind if not a promotion
	IsCastle    bool
	IsEnPassant bool
}

// String renders pure algebraic coordinate notation, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promotion {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}
