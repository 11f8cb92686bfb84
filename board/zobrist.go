package board

import "math/rand"

// Zobrist hashing keys for position identity. Generated from a fixed seed
// rather than matching Polyglot's published key table: nothing in this
// repository needs cross-engine hash compatibility, only internal
// consistency, and a self-seeded table is far simpler to get right without
// a compiler to check it against.
var (
	// zobristPieceKeys[color][kind-1][square]
	zobristPieceKeys [2][6][64]uint64
	zobristCastling  [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5EED_C0FFEE))

	for c := 0; c < 2; c++ {
		for k := 0; k < 6; k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPieceKeys[c][k][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.Uint64()
	}
	zobristSide = rng.Uint64()
}

// HashPiece returns the Zobrist key for kind/color on sq (mailbox index).
// kind must not be NoKind.
func HashPiece(kind PieceKind, color Color, sq int) uint64 {
	return zobristPieceKeys[color][kind-1][sq]
}

// ComputeHash derives the full Zobrist hash from scratch, used once when a
// board is constructed (from FEN or New); thereafter MakeMove/UnmakeMove
// maintain it incrementally.
func (b *Board) ComputeHash() uint64 {
	var h uint64
	for i, p := range b.squares {
		if p.IsEmpty() {
			continue
		}
		h ^= HashPiece(p.Kind, p.Color, i)
	}
	h ^= zobristCastling[b.castle]
	if b.hasEP {
		h ^= zobristEnPassant[b.epSquare.File]
	}
	if b.side == Black {
		h ^= zobristSide
	}
	return h
}
