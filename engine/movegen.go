package engine

import (
	"github.com/corvidlabs/chesscore/coord"
	"github.com/corvidlabs/chesscore/piece"
)

var rookDirections = []coord.Coord{
	coord.New(1, 0), coord.New(-1, 0), coord.New(0, 1), coord.New(0, -1),
}

var bishopDirections = []coord.Coord{
	coord.New(1, 1), coord.New(1, -1), coord.New(-1, 1), coord.New(-1, -1),
}

var knightOffsets = []coord.Coord{
	coord.New(1, 2), coord.New(2, 1), coord.New(2, -1), coord.New(1, -2),
	coord.New(-1, -2), coord.New(-2, -1), coord.New(-2, 1), coord.New(-1, 2),
}

// pseudoLegalMoves computes Pass 1 (geometry) and Pass 2 (blocker/capture
// filtering, folded into ray expansion) for the piece p standing on from.
// It never applies the self-check filter (Pass 3); check detection relies
// on that to avoid Pass-3 recursion, per the castling-through-check gate
// below.
func (e *Engine) pseudoLegalMoves(p piece.Piece, from coord.Coord) []coord.Coord {
	switch p.Kind {
	case piece.King:
		return e.kingMoves(p, from)
	case piece.Queen:
		return append(e.rayMoves(p, from, rookDirections), e.rayMoves(p, from, bishopDirections)...)
	case piece.Rook:
		return e.rayMoves(p, from, rookDirections)
	case piece.Bishop:
		return e.rayMoves(p, from, bishopDirections)
	case piece.Knight:
		return e.knightMoves(p, from)
	case piece.Pawn:
		return e.pawnMoves(p, from)
	default:
		return nil
	}
}

func (e *Engine) kingMoves(p piece.Piece, from coord.Coord) []coord.Coord {
	var dests []coord.Coord
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			d := coord.New(dx, dy)
			if d.Len() == 0 {
				continue
			}
			to := from.Add(d)
			if !to.InBounds() {
				continue
			}
			if occupant, ok := e.b.Piece(to); ok && occupant.Color == p.Color {
				continue
			}
			dests = append(dests, to)
		}
	}
	dests = append(dests, e.castleCandidates(p, from)...)
	return dests
}

// castleCandidates scans from the king's file toward each edge; the first
// occupied square encountered must be a same-color rook, and every square
// in between must be empty. When the moving color is the side to move,
// the king must additionally not be in check on its current, intermediate,
// or destination square — checked by the same procedure used for ordinary
// check detection. That gate is what prevents the through-check test from
// recursing into a castling candidate of the opposing king as well.
func (e *Engine) castleCandidates(p piece.Piece, kingPos coord.Coord) []coord.Coord {
	rights := e.b.CastleRights(p.Color)
	var dests []coord.Coord

	sides := []struct {
		flag piece.CastleSide
		dir  int
	}{
		{piece.KingSide, 1},
		{piece.QueenSide, -1},
	}

	for _, s := range sides {
		if !rights.Has(s.flag) {
			continue
		}

		clear := true
		rookFound := false
		for x := kingPos.X + s.dir; x >= 0 && x < coord.Width; x += s.dir {
			sq := coord.New(x, kingPos.Y)
			occupant, ok := e.b.Piece(sq)
			if !ok {
				continue
			}
			if occupant.Kind == piece.Rook && occupant.Color == p.Color {
				rookFound = true
				break
			}
			clear = false
			break
		}
		if !clear || !rookFound {
			continue
		}

		intermediate := coord.New(kingPos.X+s.dir, kingPos.Y)
		destination := coord.New(kingPos.X+2*s.dir, kingPos.Y)

		if p.Color == e.b.Turn() {
			opposing := p.Color.Opposite()
			if e.isAttacked(kingPos, opposing) || e.isAttacked(intermediate, opposing) || e.isAttacked(destination, opposing) {
				continue
			}
		}

		dests = append(dests, destination)
	}
	return dests
}

// isAttacked reports whether any piece of color by has a Pass-1+2
// destination equal to sq. Used only for the castling through-check test.
func (e *Engine) isAttacked(sq coord.Coord, by piece.Color) bool {
	for _, from := range e.FindPieces(Query{Color: &by}) {
		p, _ := e.b.Piece(from)
		for _, dest := range e.pseudoLegalMoves(p, from) {
			if dest == sq {
				return true
			}
		}
	}
	return false
}

func (e *Engine) knightMoves(p piece.Piece, from coord.Coord) []coord.Coord {
	var dests []coord.Coord
	for _, off := range knightOffsets {
		to := from.Add(off)
		if !to.InBounds() {
			continue
		}
		if occupant, ok := e.b.Piece(to); ok && occupant.Color == p.Color {
			continue
		}
		dests = append(dests, to)
	}
	return dests
}

func (e *Engine) rayMoves(p piece.Piece, from coord.Coord, directions []coord.Coord) []coord.Coord {
	var dests []coord.Coord
	for _, dir := range directions {
		at := from
		for {
			at = at.Add(dir)
			if !at.InBounds() {
				break
			}
			occupant, ok := e.b.Piece(at)
			if !ok {
				dests = append(dests, at)
				continue
			}
			if occupant.Color != p.Color {
				dests = append(dests, at)
			}
			break
		}
	}
	return dests
}

func (e *Engine) pawnMoves(p piece.Piece, from coord.Coord) []coord.Coord {
	var dests []coord.Coord

	dir, startRank := 1, 1
	if p.Color == piece.Black {
		dir, startRank = -1, coord.Width - 2
	}

	single := from.Add(coord.New(0, dir))
	singleClear := false
	if single.InBounds() {
		if _, ok := e.b.Piece(single); !ok {
			dests = append(dests, single)
			singleClear = true
		}
	}

	if singleClear && from.Y == startRank {
		double := single.Add(coord.New(0, dir))
		if double.InBounds() {
			if _, ok := e.b.Piece(double); !ok {
				dests = append(dests, double)
			}
		}
	}

	epTarget, hasEP := e.b.EnPassant()
	for _, dx := range []int{-1, 1} {
		capture := single.Add(coord.New(dx, 0))
		if !capture.InBounds() {
			continue
		}
		if occupant, ok := e.b.Piece(capture); ok && occupant.Color != p.Color {
			dests = append(dests, capture)
		} else if hasEP && capture == epTarget {
			dests = append(dests, capture)
		}
	}

	return dests
}

// ComputeLegalMoves computes the full Pass-1/2/3 legal destination set for
// the piece on from. It reports ok=false iff from is empty or out of
// bounds. Results are memoized by source square until the cache clears.
func (e *Engine) ComputeLegalMoves(from coord.Coord) (bool, []coord.Coord) {
	if cached, ok := e.legalMoveCache[from]; ok {
		return true, cached
	}

	p, ok := e.b.Piece(from)
	if !ok {
		return false, nil
	}

	dests := e.pseudoLegalMoves(p, from)

	if p.Color == e.b.Turn() {
		dests = e.filterSelfCheck(p, from, dests)
	}

	e.legalMoveCache[from] = dests
	return true, dests
}

// filterSelfCheck applies Pass 3: exclude candidates landing on the
// opposing king, then discard any candidate that leaves the mover's own
// king in check after a speculative commit on a scratch board. A single
// scratch engine is rebound to a fresh clone of e's board for each
// candidate, rather than constructed anew each time.
func (e *Engine) filterSelfCheck(p piece.Piece, from coord.Coord, candidates []coord.Coord) []coord.Coord {
	var legal []coord.Coord
	var scratchEngine *Engine
	for _, to := range candidates {
		if occupant, ok := e.b.Piece(to); ok && occupant.Kind == piece.King {
			continue
		}

		if scratchEngine == nil {
			scratchEngine = New()
		}
		scratchEngine.BindBoard(e.b.Clone())
		scratchEngine.CommitMove(Move{From: from, To: to}, false, false)

		if inCheck, _ := scratchEngine.ComputeCheck(p.Color); inCheck {
			continue
		}

		legal = append(legal, to)
	}
	return legal
}

// IsMoveLegal reports whether move.To is among move.From's legal
// destinations.
func (e *Engine) IsMoveLegal(move Move) bool {
	ok, dests := e.ComputeLegalMoves(move.From)
	if !ok {
		return false
	}
	return containsCoord(dests, move.To)
}
