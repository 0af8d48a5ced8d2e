// Package board owns the chess position: the 64-cell piece grid and its
// metadata (side to move, castling rights, en-passant target, move
// clocks), plus FEN parsing/serialization and bounds-checked piece access.
package board

import (
	"fmt"
	"strings"

	"github.com/corvidlabs/chesscore/coord"
	"github.com/corvidlabs/chesscore/piece"
	"github.com/corvidlabs/chesscore/text"
)

// DefaultStartingPositionFEN is the FEN of the standard starting position.
const DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// State is the complete position as a plain value, for callers that want
// to build or inspect a board without going through FEN text.
type State struct {
	Pieces          [coord.Width * coord.Width]piece.Piece
	Turn            piece.Color
	CastleRights    map[piece.Color]piece.CastleRights
	EnPassant       *coord.Coord
	HalfmoveClock   uint64
	FullmoveCounter uint64
}

// Board is a mutable chess position. It is shared between an engine and
// its caller via ordinary pointer aliasing; Clone gives callers an
// independent copy when they need one (the engine uses this for
// speculative self-check filtering).
type Board struct {
	state State
}

// New returns an empty board: no pieces, white to move, no castling
// rights, no en-passant target, halfmove clock at zero, fullmove counter
// at 1.
func New() *Board {
	return &Board{state: State{
		Turn:            piece.White,
		CastleRights:    map[piece.Color]piece.CastleRights{piece.White: 0, piece.Black: 0},
		FullmoveCounter: 1,
	}}
}

// NewFromState returns a board that is a deep copy of s.
func NewFromState(s State) *Board {
	b := &Board{state: s}
	b.state.CastleRights = map[piece.Color]piece.CastleRights{
		piece.White: s.CastleRights[piece.White],
		piece.Black: s.CastleRights[piece.Black],
	}
	if s.EnPassant != nil {
		ep := *s.EnPassant
		b.state.EnPassant = &ep
	}
	return b
}

// NewDefault returns a board in the standard starting position.
func NewDefault() *Board {
	b, err := NewFromFEN(DefaultStartingPositionFEN)
	if err != nil {
		panic(fmt.Sprintf("board: default starting FEN failed to parse: %v", err))
	}
	return b
}

// Clone deep-copies b.
func (b *Board) Clone() *Board {
	return NewFromState(b.state)
}

// Piece returns the piece on c and whether c held a non-empty piece.
// Out-of-bounds coordinates report (Piece{}, false).
func (b *Board) Piece(c coord.Coord) (piece.Piece, bool) {
	if !c.InBounds() {
		return piece.Piece{}, false
	}
	p := b.state.Pieces[c.Index()]
	if p.IsEmpty() {
		return piece.Piece{}, false
	}
	return p, true
}

// SetPiece places p on c, or clears the square when p is the zero Piece.
// It reports false without mutating on an out-of-bounds coordinate.
func (b *Board) SetPiece(c coord.Coord, p piece.Piece) bool {
	if !c.InBounds() {
		return false
	}
	b.state.Pieces[c.Index()] = p
	return true
}

// Turn returns the side to move.
func (b *Board) Turn() piece.Color { return b.state.Turn }

// SetTurn sets the side to move.
func (b *Board) SetTurn(c piece.Color) { b.state.Turn = c }

// CastleRights returns the castling rights available to c.
func (b *Board) CastleRights(c piece.Color) piece.CastleRights {
	return b.state.CastleRights[c]
}

// SetCastleRights sets the castling rights available to c.
func (b *Board) SetCastleRights(c piece.Color, r piece.CastleRights) {
	b.state.CastleRights[c] = r
}

// EnPassant returns the current en-passant target square, if any.
func (b *Board) EnPassant() (coord.Coord, bool) {
	if b.state.EnPassant == nil {
		return coord.Coord{}, false
	}
	return *b.state.EnPassant, true
}

// SetEnPassant sets the en-passant target square.
func (b *Board) SetEnPassant(c coord.Coord) {
	ep := c
	b.state.EnPassant = &ep
}

// ClearEnPassant clears the en-passant target square.
func (b *Board) ClearEnPassant() {
	b.state.EnPassant = nil
}

// HalfmoveClock returns the number of plies since the last pawn move or
// capture.
func (b *Board) HalfmoveClock() uint64 { return b.state.HalfmoveClock }

// SetHalfmoveClock sets the halfmove clock.
func (b *Board) SetHalfmoveClock(v uint64) { b.state.HalfmoveClock = v }

// FullmoveCounter returns the fullmove counter.
func (b *Board) FullmoveCounter() uint64 { return b.state.FullmoveCounter }

// SetFullmoveCounter sets the fullmove counter.
func (b *Board) SetFullmoveCounter(v uint64) { b.state.FullmoveCounter = v }

// State returns a deep copy of the board's underlying state value.
func (b *Board) State() State {
	return NewFromState(b.state).state
}

// String renders an ASCII grid of the position (rank 8 at top), for test
// failure output and debugging. This is not the out-of-scope renderer —
// just a Stringer.
func (b *Board) String() string {
	var sb strings.Builder
	for y := coord.Width - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d |", y+1)
		for x := 0; x < coord.Width; x++ {
			p, ok := b.Piece(coord.New(x, y))
			sym := "."
			if ok {
				sym = string(text.PieceChar(p))
			}
			fmt.Fprintf(&sb, " %s", sym)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
