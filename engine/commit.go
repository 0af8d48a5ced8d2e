package engine

import (
	"github.com/corvidlabs/chesscore/coord"
	"github.com/corvidlabs/chesscore/piece"
)

// CommitMove applies move to the bound board. When checkLegality is true,
// the move must be in the legal-destination set for its source or the
// commit fails without mutation. When advanceTurn is true, the halfmove
// clock, side to move, and fullmove counter are updated. Every commit
// invalidates all caches.
func (e *Engine) CommitMove(move Move, checkLegality, advanceTurn bool) bool {
	p, ok := e.b.Piece(move.From)
	if !ok || !move.To.InBounds() {
		return false
	}

	if checkLegality && !e.IsMoveLegal(move) {
		return false
	}

	captureSquare := move.To
	if p.Kind == piece.Pawn {
		if ep, hasEP := e.b.EnPassant(); hasEP && move.To == ep {
			captureSquare = coord.New(move.To.X, move.From.Y)
		}
	}

	resetHalfmove := p.Kind == piece.Pawn

	if captured, capturedOk := e.b.Piece(captureSquare); capturedOk {
		if e.captureCallback != nil {
			e.captureCallback(captured)
		}
		e.b.SetPiece(captureSquare, piece.Piece{})
		resetHalfmove = true
	}

	e.b.SetPiece(move.From, piece.Piece{})
	e.b.SetPiece(move.To, p)

	if p.Kind == piece.Pawn && abs(move.To.Y-move.From.Y) == 2 {
		e.b.SetEnPassant(coord.New(move.From.X, (move.From.Y+move.To.Y)/2))
	} else {
		e.b.ClearEnPassant()
	}

	if p.Kind == piece.King {
		rights := e.b.CastleRights(p.Color).Without(piece.KingSide).Without(piece.QueenSide)
		e.b.SetCastleRights(p.Color, rights)

		if abs(move.To.X-move.From.X) == 2 {
			dir, rookFile := 1, 7
			if move.To.X < move.From.X {
				dir, rookFile = -1, 0
			}
			rookFrom := coord.New(rookFile, move.From.Y)
			rookTo := coord.New(move.To.X-dir, move.From.Y)
			if rook, rookOk := e.b.Piece(rookFrom); rookOk {
				e.b.SetPiece(rookFrom, piece.Piece{})
				e.b.SetPiece(rookTo, rook)
			}
		}
	}

	if p.Kind == piece.Rook {
		backRank := 0
		if p.Color == piece.Black {
			backRank = coord.Width - 1
		}
		if move.From.Y == backRank {
			switch move.From.X {
			case 0:
				e.b.SetCastleRights(p.Color, e.b.CastleRights(p.Color).Without(piece.QueenSide))
			case coord.Width - 1:
				e.b.SetCastleRights(p.Color, e.b.CastleRights(p.Color).Without(piece.KingSide))
			}
		}
	}

	if advanceTurn {
		if resetHalfmove {
			e.b.SetHalfmoveClock(0)
		} else {
			e.b.SetHalfmoveClock(e.b.HalfmoveClock() + 1)
		}

		next := e.b.Turn().Opposite()
		e.b.SetTurn(next)
		if next == piece.White {
			e.b.SetFullmoveCounter(e.b.FullmoveCounter() + 1)
		}
	}

	e.ClearCache()
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
