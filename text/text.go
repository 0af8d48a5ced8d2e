// Package text implements the small string utilities the core needs:
// generic splitting, coordinate string conversion, and piece-character
// conversion. It is grounded on the original C++ util.h/util.cpp
// (split_string, parse_coordinate) generalized to also carry FEN's piece
// alphabet.
package text

import (
	"strings"
	"unicode"

	"github.com/corvidlabs/chesscore/coord"
	"github.com/corvidlabs/chesscore/piece"
)

// Split splits src on any rune in delimiters. When omitEmpty is true, empty
// segments are dropped — used by the FEN parser to collapse runs of
// whitespace.
func Split(src string, delimiters string, omitEmpty bool) []string {
	var segments []string
	start := 0
	for i, r := range src {
		if strings.ContainsRune(delimiters, r) {
			segment := src[start:i]
			if !omitEmpty || segment != "" {
				segments = append(segments, segment)
			}
			start = i + len(string(r))
		}
	}
	last := src[start:]
	if !omitEmpty || last != "" {
		segments = append(segments, last)
	}
	return segments
}

// ParseCoord parses the conventional "<file><rank>" notation: file a-h
// (case-insensitive), rank 1-8. It reports ok=false on any malformed
// input, without a partial result.
func ParseCoord(s string) (c coord.Coord, ok bool) {
	if len(s) != 2 {
		return coord.Coord{}, false
	}
	file := unicode.ToLower(rune(s[0]))
	if file < 'a' || file > 'h' {
		return coord.Coord{}, false
	}
	rank := s[1]
	if rank < '1' || rank > '8' {
		return coord.Coord{}, false
	}
	return coord.New(int(file-'a'), int(rank-'1')), true
}

// FormatCoord serializes c in "<file><rank>" notation. Out-of-bounds
// coordinates serialize to the empty string.
func FormatCoord(c coord.Coord) string {
	if !c.InBounds() {
		return ""
	}
	return string(rune('a'+c.X)) + string(rune('1'+c.Y))
}

// pieceLetters maps Kind to its uppercase (white) FEN letter. Empty has no
// letter.
var pieceLetters = map[piece.Kind]byte{
	piece.King:   'K',
	piece.Queen:  'Q',
	piece.Rook:   'R',
	piece.Knight: 'N',
	piece.Bishop: 'B',
	piece.Pawn:   'P',
}

var lettersToKind = func() map[byte]piece.Kind {
	m := make(map[byte]piece.Kind, len(pieceLetters))
	for k, l := range pieceLetters {
		m[l] = k
	}
	return m
}()

// ParsePieceChar parses a FEN piece character: uppercase for white,
// lowercase for black. It reports ok=false outside the allowed alphabet;
// Empty has no character and is never returned.
func ParsePieceChar(c byte) (p piece.Piece, ok bool) {
	upper := byte(unicode.ToUpper(rune(c)))
	kind, found := lettersToKind[upper]
	if !found {
		return piece.Piece{}, false
	}
	color := piece.White
	if c != upper {
		color = piece.Black
	}
	return piece.Piece{Kind: kind, Color: color}, true
}

// PieceChar serializes p to its FEN character. It panics if p.Kind is
// Empty or otherwise unrecognized — serializing such a piece is an
// invariant violation, never a caller-triggerable error.
func PieceChar(p piece.Piece) byte {
	letter, ok := pieceLetters[p.Kind]
	if !ok {
		panic("text: cannot serialize piece of kind " + p.Kind.String())
	}
	if p.Color == piece.Black {
		return letter | 0x20 // lowercase is +32 on uppercase ASCII
	}
	return letter
}
