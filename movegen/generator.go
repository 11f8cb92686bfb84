package movegen

import "github.com/nkastor/chesscore/board"

// promotionKinds is the order promotion moves are generated in; queen
// first keeps the common case early in the (pre-ordering) move list.
var promotionKinds = [4]board.PieceKind{board.Queen, board.Rook, board.Bishop, board.Knight}

// GenerateLegalMoves returns every legal move for the side to move,
// filtering pseudo-legal moves that leave the mover's own king in check.
func GenerateLegalMoves(b *board.Board) []board.Move {
	pseudo := generatePseudoLegal(b)
	legal := make([]board.Move, 0, len(pseudo))
	side := b.Side()
	for _, m := range pseudo {
		b.MakeMove(m)
		if !IsInCheck(b, side) {
			legal = append(legal, m)
		}
		b.UnmakeMove()
	}
	return legal
}

func generatePseudoLegal(b *board.Board) []board.Move {
	moves := make([]board.Move, 0, 48)
	side := b.Side()
	for i := 0; i < 64; i++ {
		sq := board.SquareFromIndex(i)
		p := b.At(sq)
		if p.IsEmpty() || p.Color != side {
			continue
		}
		switch p.Kind {
		case board.Pawn:
			genPawnMoves(b, sq, p, &moves)
		case board.Knight:
			genLeaperMoves(b, sq, p, knightDeltas, &moves)
		case board.King:
			genLeaperMoves(b, sq, p, kingDeltas, &moves)
			genCastleMoves(b, sq, p, &moves)
		case board.Bishop:
			genSliderMoves(b, sq, p, bishopDirs, &moves)
		case board.Rook:
			genSliderMoves(b, sq, p, rookDirs, &moves)
		case board.Queen:
			genSliderMoves(b, sq, p, bishopDirs, &moves)
			genSliderMoves(b, sq, p, rookDirs, &moves)
		}
	}
	return moves
}

func genLeaperMoves(b *board.Board, from board.Square, p board.Piece, deltas [8][2]int, out *[]board.Move) {
	for _, d := range deltas {
		to := board.Square{File: from.File + int8(d[0]), Rank: from.Rank + int8(d[1])}
		if !to.Valid() {
			continue
		}
		target := b.At(to)
		if !target.IsEmpty() && target.Color == p.Color {
			continue
		}
		m := board.Move{From: from, To: to, Piece: p}
		if !target.IsEmpty() {
			m.HasCapture = true
			m.Captured = target
		}
		*out = append(*out, m)
	}
}

func genSliderMoves(b *board.Board, from board.Square, p board.Piece, dirs [4][2]int, out *[]board.Move) {
	for _, d := range dirs {
		cur := from
		for {
			cur = board.Square{File: cur.File + int8(d[0]), Rank: cur.Rank + int8(d[1])}
			if !cur.Valid() {
				break
			}
			target := b.At(cur)
			if target.IsEmpty() {
				*out = append(*out, board.Move{From: from, To: cur, Piece: p})
				continue
			}
			if target.Color != p.Color {
				*out = append(*out, board.Move{From: from, To: cur, Piece: p, HasCapture: true, Captured: target})
			}
			break
		}
	}
}

func genPawnMoves(b *board.Board, from board.Square, p board.Piece, out *[]board.Move) {
	dir := int8(1)
	startRank := int8(1)
	promoRank := int8(7)
	if p.Color == board.Black {
		dir = -1
		startRank = 6
		promoRank = 0
	}

	one := board.Square{File: from.File, Rank: from.Rank + dir}
	if one.Valid() && b.At(one).IsEmpty() {
		addPawnAdvance(from, one, p, promoRank, out)
		if from.Rank == startRank {
			two := board.Square{File: from.File, Rank: from.Rank + 2*dir}
			if b.At(two).IsEmpty() {
				*out = append(*out, board.Move{From: from, To: two, Piece: p})
			}
		}
	}

	for _, df := range []int8{-1, 1} {
		to := board.Square{File: from.File + df, Rank: from.Rank + dir}
		if !to.Valid() {
			continue
		}
		target := b.At(to)
		if !target.IsEmpty() && target.Color != p.Color {
			m := board.Move{From: from, To: to, Piece: p, HasCapture: true, Captured: target}
			addPawnCapture(m, promoRank, out)
			continue
		}
		if ep, ok := b.EnPassant(); ok && ep == to && target.IsEmpty() {
			capturedPawn := board.Piece{Kind: board.Pawn, Color: p.Color.Opponent()}
			*out = append(*out, board.Move{
				From: from, To: to, Piece: p,
				HasCapture: true, Captured: capturedPawn, IsEnPassant: true,
			})
		}
	}
}

func addPawnAdvance(from, to board.Square, p board.Piece, promoRank int8, out *[]board.Move) {
	if to.Rank == promoRank {
		for _, k := range promotionKinds {
			*out = append(*out, board.Move{From: from, To: to, Piece: p, Promotion: k})
		}
		return
	}
	*out = append(*out, board.Move{From: from, To: to, Piece: p})
}

func addPawnCapture(m board.Move, promoRank int8, out *[]board.Move) {
	if m.To.Rank == promoRank {
		for _, k := range promotionKinds {
			withPromo := m
			withPromo.Promotion = k
			*out = append(*out, withPromo)
		}
		return
	}
	*out = append(*out, m)
}

func genCastleMoves(b *board.Board, kingSq board.Square, p board.Piece, out *[]board.Move) {
	rights := b.Castle()
	opp := p.Color.Opponent()
	if IsSquareAttacked(b, kingSq, opp) {
		return
	}

	rank := kingSq.Rank
	tryCastle := func(right board.CastleRights, rookFile, kingToFile int8) {
		if rights&right == 0 {
			return
		}
		rookSq := board.Square{File: rookFile, Rank: rank}
		rook := b.At(rookSq)
		if rook.Kind != board.Rook || rook.Color != p.Color {
			return
		}

		lo, hi := kingSq.File, rookFile
		if lo > hi {
			lo, hi = hi, lo
		}
		for f := lo + 1; f < hi; f++ {
			if !b.At(board.Square{File: f, Rank: rank}).IsEmpty() {
				return
			}
		}

		step := int8(1)
		if kingToFile < kingSq.File {
			step = -1
		}
		for f := kingSq.File + step; ; f += step {
			if IsSquareAttacked(b, board.Square{File: f, Rank: rank}, opp) {
				return
			}
			if f == kingToFile {
				break
			}
		}

		*out = append(*out, board.Move{From: kingSq, To: board.Square{File: kingToFile, Rank: rank}, Piece: p, IsCastle: true})
	}

	if p.Color == board.White {
		tryCastle(board.WhiteKingside, 7, 6)
		tryCastle(board.WhiteQueenside, 0, 2)
	} else {
		tryCastle(board.BlackKingside, 7, 6)
		tryCastle(board.BlackQueenside, 0, 2)
	}
}
