// Package engine implements the chess rules engine: legal move
// generation, check/checkmate detection, and move commit with side
// effects. An Engine is bound to at most one Board at a time and caches
// its query results until the board mutates.
package engine

import (
	"github.com/corvidlabs/chesscore/board"
	"github.com/corvidlabs/chesscore/coord"
	"github.com/corvidlabs/chesscore/piece"
)

// Move is a source/destination coordinate pair. Promotion is not part of
// Move: the caller observes a pawn reaching its promotion rank and uses
// Board.SetPiece after commit.
type Move struct {
	From, To coord.Coord
}

// CheckResult reports whether a color is in check and which opposing
// squares are giving the check.
type CheckResult struct {
	InCheck   bool
	Attackers []coord.Coord
}

// Query filters FindPieces. Nil fields are unconstrained. Empty squares
// are never matched unless Kind explicitly names piece.Empty.
type Query struct {
	Kind   *piece.Kind
	Color  *piece.Color
	X, Y   *int
	Filter func(p piece.Piece, at coord.Coord) bool
}

// Engine is single-threaded and non-suspending: every method runs to
// completion on the calling goroutine. It holds no synchronization of its
// own; callers must externally serialize access to an Engine and its
// bound Board.
type Engine struct {
	b *board.Board

	captureCallback func(piece.Piece)

	legalMoveCache map[coord.Coord][]coord.Coord
	checkCache     map[piece.Color]CheckResult
	checkmateCache *bool
}

// New returns an Engine with no bound board.
func New() *Engine {
	return &Engine{}
}

// NewBoundTo returns an Engine bound to b.
func NewBoundTo(b *board.Board) *Engine {
	e := New()
	e.BindBoard(b)
	return e
}

// BindBoard sets (or, with nil, clears) the bound board and clears caches.
func (e *Engine) BindBoard(b *board.Board) {
	e.b = b
	e.ClearCache()
}

// Board returns the currently bound board, or nil.
func (e *Engine) Board() *board.Board {
	return e.b
}

// SetCaptureCallback installs fn to be invoked synchronously from
// CommitMove whenever a piece is captured. fn MUST NOT re-enter this
// Engine. Passing nil clears the callback.
func (e *Engine) SetCaptureCallback(fn func(piece.Piece)) {
	e.captureCallback = fn
}

// ClearCache empties the legal-move, check, and checkmate caches.
func (e *Engine) ClearCache() {
	e.legalMoveCache = make(map[coord.Coord][]coord.Coord)
	e.checkCache = make(map[piece.Color]CheckResult)
	e.checkmateCache = nil
}

// FindPieces returns every square matching query, in row-major (rank 1 to
// 8, file a to h) order.
func (e *Engine) FindPieces(query Query) []coord.Coord {
	var out []coord.Coord
	for y := 0; y < coord.Width; y++ {
		for x := 0; x < coord.Width; x++ {
			at := coord.New(x, y)
			p, ok := e.b.Piece(at)
			if !ok {
				if query.Kind == nil || *query.Kind != piece.Empty {
					continue
				}
				p = piece.Piece{Kind: piece.Empty}
			} else if query.Kind != nil && *query.Kind != p.Kind {
				continue
			}
			if query.Color != nil && (ok && *query.Color != p.Color) {
				continue
			}
			if query.X != nil && *query.X != x {
				continue
			}
			if query.Y != nil && *query.Y != y {
				continue
			}
			if query.Filter != nil && !query.Filter(p, at) {
				continue
			}
			out = append(out, at)
		}
	}
	return out
}

// ComputeCheck reports whether color's king(s) are attacked, and by which
// squares. The result is memoized per color until the cache is cleared.
func (e *Engine) ComputeCheck(color piece.Color) (bool, []coord.Coord) {
	if cached, ok := e.checkCache[color]; ok {
		return cached.InCheck, cached.Attackers
	}

	kingKind := piece.King
	kings := e.FindPieces(Query{Kind: &kingKind, Color: &color})

	var attackers []coord.Coord
	if len(kings) > 0 {
		opposing := color.Opposite()
		for _, from := range e.FindPieces(Query{Color: &opposing}) {
			p, _ := e.b.Piece(from)
			for _, dest := range e.pseudoLegalMoves(p, from) {
				if containsCoord(kings, dest) {
					attackers = append(attackers, from)
					break
				}
			}
		}
	}

	result := CheckResult{InCheck: len(attackers) > 0, Attackers: attackers}
	e.checkCache[color] = result
	return result.InCheck, result.Attackers
}

// ComputeCheckmate reports whether color is checkmated: it must be
// color's move, and every one of color's pieces must have an empty
// Pass-3-filtered legal move set. Memoized until the cache is cleared.
func (e *Engine) ComputeCheckmate(color piece.Color) bool {
	// The single cached value only ever holds the side to move's result.
	if e.b.Turn() != color {
		return false
	}
	if e.checkmateCache != nil {
		return *e.checkmateCache
	}

	mate := e.computeCheckmate(color)
	e.checkmateCache = &mate
	return mate
}

func (e *Engine) computeCheckmate(color piece.Color) bool {
	if e.b.Turn() != color {
		return false
	}
	for _, from := range e.FindPieces(Query{Color: &color}) {
		_, dests := e.ComputeLegalMoves(from)
		if len(dests) > 0 {
			return false
		}
	}
	return true
}

func containsCoord(set []coord.Coord, c coord.Coord) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}
