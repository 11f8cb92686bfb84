package board

// Board is a mailbox chess position: 64 squares, each holding a Piece or
// Empty, plus the auxiliary state (side to move, castling rights,
// en-passant target, clocks) needed to make/unmake moves and to compute a
// Zobrist hash.
type Board struct {
	squares        [64]Piece
	side           Color
	castle         CastleRights
	epSquare       Square
	hasEP          bool
	halfmoveClock  int
	fullmoveNumber int
	hash           uint64

	undoStack   []undoState
	hashHistory []uint64 // one entry per position reached, for repetition detection
}

type undoState struct {
	move          Move
	isNull        bool
	prevCastle    CastleRights
	prevEPSquare  Square
	prevHasEP     bool
	prevHalfmove  int
	prevHash      uint64
	capturedPiece Piece
}

// New returns an empty board with White to move and no castling rights.
// The package has no exported way to place pieces on it; positions with
// pieces come from FromFEN.
func New() *Board {
	b := &Board{side: White}
	b.hash = b.ComputeHash()
	b.hashHistory = append(b.hashHistory, b.hash)
	return b
}

// At returns the piece on sq (Empty if none).
func (b *Board) At(sq Square) Piece { return b.squares[sq.Index()] }

func (b *Board) setAt(sq Square, p Piece) { b.squares[sq.Index()] = p }

// Side returns the side to move.
func (b *Board) Side() Color { return b.side }

// Castle returns the current castling rights mask.
func (b *Board) Castle() CastleRights { return b.castle }

// EnPassant returns the current en-passant target square, if any.
func (b *Board) EnPassant() (Square, bool) { return b.epSquare, b.hasEP }

// HalfmoveClock returns the half-move clock (for the 50-move rule).
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// Hash returns the board's current Zobrist hash.
func (b *Board) Hash() uint64 { return b.hash }

// PieceCount returns the total number of pieces of both colors.
func (b *Board) PieceCount() int {
	n := 0
	for _, p := range b.squares {
		if !p.IsEmpty() {
			n++
		}
	}
	return n
}

// KingSquare returns the square holding c's king. Panics if c has no king,
// which indicates a malformed position (an Oracle contract violation the
// caller should never produce) in every variant except atomic, where a
// king can be captured outright (see position.VariantPosition) — callers
// in that variant must check HasKing first.
func (b *Board) KingSquare(c Color) Square {
	for i, p := range b.squares {
		if p.Kind == King && p.Color == c {
			return SquareFromIndex(i)
		}
	}
	panic("board: no king for color")
}

// HasKing reports whether c still has a king on the board, without
// panicking if not.
func (b *Board) HasKing(c Color) bool {
	for _, p := range b.squares {
		if p.Kind == King && p.Color == c {
			return true
		}
	}
	return false
}

// PieceCountColor returns the number of pieces of color c on the board.
func (b *Board) PieceCountColor(c Color) int {
	n := 0
	for _, p := range b.squares {
		if !p.IsEmpty() && p.Color == c {
			n++
		}
	}
	return n
}

// RepetitionCount reports how many times hash has appeared across this
// board's history, used by CanClaimDraw's threefold check.
func (b *Board) RepetitionCount(hash uint64) int {
	n := 0
	for _, h := range b.hashHistory {
		if h == hash {
			n++
		}
	}
	return n
}

// MakeMove applies m, updating all board state and the hash incrementally.
// It assumes m was produced by this package's move generator and does not
// re-validate legality.
func (b *Board) MakeMove(m Move) {
	st := undoState{
		move:         m,
		prevCastle:   b.castle,
		prevEPSquare: b.epSquare,
		prevHasEP:    b.hasEP,
		prevHalfmove: b.halfmoveClock,
		prevHash:     b.hash,
	}

	mover := b.At(m.From)

	// Clear the old en-passant hash contribution; it's recomputed below.
	if b.hasEP {
		b.hash ^= zobristEnPassant[b.epSquare.File]
	}

	capturedSq := m.To
	if m.IsEnPassant {
		capturedSq = Square{File: m.To.File, Rank: m.From.Rank}
	}
	if m.HasCapture {
		captured := b.At(capturedSq)
		st.capturedPiece = captured
		b.hash ^= HashPiece(captured.Kind, captured.Color, capturedSq.Index())
		b.setAt(capturedSq, Empty)
	}

	// Move the piece, XOR-ing out its old-square key and in its new-square
	// key (using the promoted kind if this move promotes).
	b.hash ^= HashPiece(mover.Kind, mover.Color, m.From.Index())
	b.setAt(m.From, Empty)

	placed := mover
	if m.Promotion != NoKind {
		placed = Piece{Kind: m.Promotion, Color: mover.Color}
	}
	b.setAt(m.To, placed)
	b.hash ^= HashPiece(placed.Kind, placed.Color, m.To.Index())

	if m.IsCastle {
		b.moveCastleRook(mover.Color, m.From, m.To)
	}

	// En-passant target: set only after a pawn double push.
	b.hasEP = false
	if mover.Kind == Pawn {
		rankDelta := int(m.To.Rank) - int(m.From.Rank)
		if rankDelta == 2 || rankDelta == -2 {
			b.epSquare = Square{File: m.From.File, Rank: (m.From.Rank + m.To.Rank) / 2}
			b.hasEP = true
		}
	}
	if b.hasEP {
		b.hash ^= zobristEnPassant[b.epSquare.File]
	}

	// Castling rights: king or rook moving, or a rook being captured, each
	// strips the relevant bit.
	b.hash ^= zobristCastling[b.castle]
	b.updateCastleRights(mover, m.From, capturedSq, m.HasCapture)
	b.hash ^= zobristCastling[b.castle]

	if mover.Kind == Pawn || m.HasCapture {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	if b.side == Black {
		b.fullmoveNumber++
	}
	b.side = b.side.Opponent()
	b.hash ^= zobristSide

	b.undoStack = append(b.undoStack, st)
	b.hashHistory = append(b.hashHistory, b.hash)
}

// UnmakeMove reverses the most recent MakeMove. Calling it without a
// matching prior MakeMove panics, which the engine package converts into
// an OracleViolation at the search facade boundary.
func (b *Board) UnmakeMove() {
	n := len(b.undoStack)
	if n == 0 {
		panic("board: unmake without a matching make")
	}
	st := b.undoStack[n-1]
	b.undoStack = b.undoStack[:n-1]
	b.hashHistory = b.hashHistory[:len(b.hashHistory)-1]

	b.side = b.side.Opponent()
	if b.side == Black {
		b.fullmoveNumber--
	}

	m := st.move
	mover := Piece{Kind: m.Piece.Kind, Color: b.side}

	b.setAt(m.To, Empty)
	b.setAt(m.From, mover)

	if m.IsCastle {
		b.unmoveCastleRook(b.side, m.From, m.To)
	}

	if m.HasCapture {
		capturedSq := m.To
		if m.IsEnPassant {
			capturedSq = Square{File: m.To.File, Rank: m.From.Rank}
			b.setAt(m.To, Empty)
		}
		b.setAt(capturedSq, st.capturedPiece)
	}

	b.castle = st.prevCastle
	b.epSquare = st.prevEPSquare
	b.hasEP = st.prevHasEP
	b.halfmoveClock = st.prevHalfmove
	b.hash = st.prevHash
}

// Pop reverses whatever the most recent Push (MakeMove or MakeNullMove)
// did, dispatching on which one it was. This is the single LIFO undo entry
// point the Position Oracle adapter exposes.
func (b *Board) Pop() {
	n := len(b.undoStack)
	if n == 0 {
		panic("board: pop without a matching push")
	}
	if b.undoStack[n-1].isNull {
		b.UnmakeNullMove()
	} else {
		b.UnmakeMove()
	}
}

// MakeNullMove flips the side to move and clears en-passant rights,
// leaving the board otherwise untouched (§4.1's push_null).
func (b *Board) MakeNullMove() {
	st := undoState{
		isNull:       true,
		prevCastle:   b.castle,
		prevEPSquare: b.epSquare,
		prevHasEP:    b.hasEP,
		prevHalfmove: b.halfmoveClock,
		prevHash:     b.hash,
	}
	if b.hasEP {
		b.hash ^= zobristEnPassant[b.epSquare.File]
	}
	b.hasEP = false
	b.side = b.side.Opponent()
	b.hash ^= zobristSide

	b.undoStack = append(b.undoStack, st)
	b.hashHistory = append(b.hashHistory, b.hash)
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove() {
	n := len(b.undoStack)
	if n == 0 || !b.undoStack[n-1].isNull {
		panic("board: unmake-null without a matching make-null")
	}
	st := b.undoStack[n-1]
	b.undoStack = b.undoStack[:n-1]
	b.hashHistory = b.hashHistory[:len(b.hashHistory)-1]

	b.side = b.side.Opponent()
	b.castle = st.prevCastle
	b.epSquare = st.prevEPSquare
	b.hasEP = st.prevHasEP
	b.halfmoveClock = st.prevHalfmove
	b.hash = st.prevHash
}

func (b *Board) moveCastleRook(c Color, kingFrom, kingTo Square) {
	rank := kingFrom.Rank
	if kingTo.File > kingFrom.File {
		rookFrom := Square{File: 7, Rank: rank}
		rookTo := Square{File: 5, Rank: rank}
		b.relocateRook(c, rookFrom, rookTo)
	} else {
		rookFrom := Square{File: 0, Rank: rank}
		rookTo := Square{File: 3, Rank: rank}
		b.relocateRook(c, rookFrom, rookTo)
	}
}

func (b *Board) unmoveCastleRook(c Color, kingFrom, kingTo Square) {
	rank := kingFrom.Rank
	if kingTo.File > kingFrom.File {
		b.relocateRook(c, Square{File: 5, Rank: rank}, Square{File: 7, Rank: rank})
	} else {
		b.relocateRook(c, Square{File: 3, Rank: rank}, Square{File: 0, Rank: rank})
	}
}

func (b *Board) relocateRook(c Color, from, to Square) {
	rook := b.At(from)
	b.hash ^= HashPiece(rook.Kind, rook.Color, from.Index())
	b.setAt(from, Empty)
	b.setAt(to, rook)
	b.hash ^= HashPiece(rook.Kind, rook.Color, to.Index())
}

func (b *Board) updateCastleRights(mover Piece, from, capturedSq Square, hadCapture bool) {
	if mover.Kind == King {
		if mover.Color == White {
			b.castle &^= WhiteKingside | WhiteQueenside
		} else {
			b.castle &^= BlackKingside | BlackQueenside
		}
	}
	clearForRookSquare := func(sq Square) {
		switch {
		case sq == (Square{File: 0, Rank: 0}):
			b.castle &^= WhiteQueenside
		case sq == (Square{File: 7, Rank: 0}):
			b.castle &^= WhiteKingside
		case sq == (Square{File: 0, Rank: 7}):
			b.castle &^= BlackQueenside
		case sq == (Square{File: 7, Rank: 7}):
			b.castle &^= BlackKingside
		}
	}
	if mover.Kind == Rook {
		clearForRookSquare(from)
	}
	if hadCapture {
		clearForRookSquare(capturedSq)
	}
}
