package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var pieceLetters = map[byte]PieceKind{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// FromFEN parses Forsyth-Edwards Notation into a fresh Board.
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, errors.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	b := &Board{}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, ok := pieceLetters[lower(byte(ch))]
			if !ok {
				return nil, errors.Errorf("fen: invalid piece char %q", ch)
			}
			color := White
			if ch >= 'a' && ch <= 'z' {
				color = Black
			}
			if file < 0 || file > 7 {
				return nil, errors.Errorf("fen: rank %d overflows files", i)
			}
			b.setAt(Square{File: int8(file), Rank: int8(rank)}, Piece{Kind: kind, Color: color})
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
	default:
		return nil, errors.Errorf("fen: invalid side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castle |= WhiteKingside
			case 'Q':
				b.castle |= WhiteQueenside
			case 'k':
				b.castle |= BlackKingside
			case 'q':
				b.castle |= BlackQueenside
			default:
				return nil, errors.Errorf("fen: invalid castling char %q", ch)
			}
		}
	}

	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, errors.Wrap(err, "fen: en-passant square")
		}
		b.epSquare = sq
		b.hasEP = true
	}

	b.halfmoveClock = 0
	b.fullmoveNumber = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.fullmoveNumber = n
		}
	}

	b.hash = b.ComputeHash()
	b.hashHistory = []uint64{b.hash}
	return b, nil
}

// ToFEN serializes the board back to FEN.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.At(Square{File: int8(file), Rank: int8(rank)})
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceChar(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castle == 0 {
		sb.WriteByte('-')
	} else {
		if b.castle&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castle&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castle&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castle&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.hasEP {
		sb.WriteString(b.epSquare.String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", b.halfmoveClock, b.fullmoveNumber)
	return sb.String()
}

func pieceChar(p Piece) byte {
	var c byte
	switch p.Kind {
	case Pawn:
		c = 'p'
	case Knight:
		c = 'n'
	case Bishop:
		c = 'b'
	case Rook:
		c = 'r'
	case Queen:
		c = 'q'
	case King:
		c = 'k'
	}
	if p.Color == White {
		c = upper(c)
	}
	return c
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, errors.Errorf("invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	sq := Square{File: int8(file), Rank: int8(rank)}
	if !sq.Valid() {
		return Square{}, errors.Errorf("invalid square %q", s)
	}
	return sq, nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
