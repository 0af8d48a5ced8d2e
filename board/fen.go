package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidlabs/chesscore/coord"
	"github.com/corvidlabs/chesscore/piece"
	"github.com/corvidlabs/chesscore/text"
)

// ErrInvalidFEN is wrapped by every FEN parse failure.
var ErrInvalidFEN = errors.New("invalid fen")

// NewFromFEN parses the six space-separated FEN segments (pieces, side,
// castling, en-passant, halfmove, fullmove) into a Board. Any failure
// leaves no partially constructed board observable: it returns a nil
// *Board and a wrapped ErrInvalidFEN.
func NewFromFEN(fen string) (*Board, error) {
	segments := text.Split(fen, " ", true)
	if len(segments) != 6 {
		return nil, fmt.Errorf("%w: expected 6 segments, got %d", ErrInvalidFEN, len(segments))
	}

	var st State
	st.CastleRights = map[piece.Color]piece.CastleRights{}

	if err := parsePieces(segments[0], &st); err != nil {
		return nil, err
	}
	if err := parseSide(segments[1], &st); err != nil {
		return nil, err
	}
	if err := parseCastling(segments[2], &st); err != nil {
		return nil, err
	}
	if err := parseEnPassant(segments[3], &st); err != nil {
		return nil, err
	}
	halfmove, err := strconv.ParseUint(segments[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid halfmove clock %q", ErrInvalidFEN, segments[4])
	}
	fullmove, err := strconv.ParseUint(segments[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid fullmove counter %q", ErrInvalidFEN, segments[5])
	}
	st.HalfmoveClock = halfmove
	st.FullmoveCounter = fullmove

	return NewFromState(st), nil
}

func parsePieces(segment string, st *State) error {
	ranks := text.Split(segment, "/", false)
	if len(ranks) != coord.Width {
		return fmt.Errorf("%w: expected %d ranks, got %d", ErrInvalidFEN, coord.Width, len(ranks))
	}

	for i, rank := range ranks {
		y := coord.Width - (i + 1) // ranks are listed 8 down to 1
		x := 0
		for _, ch := range []byte(rank) {
			if x >= coord.Width {
				return fmt.Errorf("%w: rank %q has too many files", ErrInvalidFEN, rank)
			}
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			p, ok := text.ParsePieceChar(ch)
			if !ok {
				return fmt.Errorf("%w: unknown piece character %q", ErrInvalidFEN, string(ch))
			}
			st.Pieces[coord.New(x, y).Index()] = p
			x++
		}
		if x != coord.Width {
			return fmt.Errorf("%w: rank %q did not consume exactly %d files", ErrInvalidFEN, rank, coord.Width)
		}
	}
	return nil
}

func parseSide(segment string, st *State) error {
	switch segment {
	case "w":
		st.Turn = piece.White
	case "b":
		st.Turn = piece.Black
	default:
		return fmt.Errorf("%w: invalid side to move %q", ErrInvalidFEN, segment)
	}
	return nil
}

func parseCastling(segment string, st *State) error {
	st.CastleRights[piece.White] = 0
	st.CastleRights[piece.Black] = 0
	if segment == "-" {
		return nil
	}
	for _, ch := range []byte(segment) {
		switch ch {
		case 'K':
			st.CastleRights[piece.White] = st.CastleRights[piece.White].With(piece.KingSide)
		case 'Q':
			st.CastleRights[piece.White] = st.CastleRights[piece.White].With(piece.QueenSide)
		case 'k':
			st.CastleRights[piece.Black] = st.CastleRights[piece.Black].With(piece.KingSide)
		case 'q':
			st.CastleRights[piece.Black] = st.CastleRights[piece.Black].With(piece.QueenSide)
		default:
			return fmt.Errorf("%w: invalid castling character %q", ErrInvalidFEN, string(ch))
		}
	}
	return nil
}

func parseEnPassant(segment string, st *State) error {
	if segment == "-" {
		st.EnPassant = nil
		return nil
	}
	c, ok := text.ParseCoord(segment)
	if !ok {
		return fmt.Errorf("%w: invalid en-passant target %q", ErrInvalidFEN, segment)
	}
	// Stored verbatim: no validity check against the pieces on the board.
	st.EnPassant = &c
	return nil
}

// FEN serializes b to its FEN string. Serialization is the exact inverse
// of parsing, with empty castling rendering as "-" and an absent
// en-passant target rendering as "-".
func (b *Board) FEN() string {
	var sb strings.Builder

	for y := coord.Width - 1; y >= 0; y-- {
		var run int
		for x := 0; x < coord.Width; x++ {
			p, ok := b.Piece(coord.New(x, y))
			if !ok {
				run++
				continue
			}
			if run > 0 {
				sb.WriteByte(byte('0' + run))
				run = 0
			}
			sb.WriteByte(text.PieceChar(p))
		}
		if run > 0 {
			sb.WriteByte(byte('0' + run))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.Turn() == piece.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := castlingString(b.CastleRights(piece.White), b.CastleRights(piece.Black))
	sb.WriteString(castling)

	sb.WriteByte(' ')
	if ep, ok := b.EnPassant(); ok {
		sb.WriteString(text.FormatCoord(ep))
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", b.HalfmoveClock(), b.FullmoveCounter())

	return sb.String()
}

func castlingString(white, black piece.CastleRights) string {
	var sb strings.Builder
	if white.Has(piece.KingSide) {
		sb.WriteByte('K')
	}
	if white.Has(piece.QueenSide) {
		sb.WriteByte('Q')
	}
	if black.Has(piece.KingSide) {
		sb.WriteByte('k')
	}
	if black.Has(piece.QueenSide) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
