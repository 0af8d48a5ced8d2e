package text

import (
	"reflect"
	"testing"

	"github.com/corvidlabs/chesscore/coord"
	"github.com/corvidlabs/chesscore/piece"
)

func TestSplit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		src       string
		delims    string
		omitEmpty bool
		want      []string
	}{
		{"fen ranks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "/", false,
			[]string{"rnbqkbnr", "pppppppp", "8", "8", "8", "8", "PPPPPPPP", "RNBQKBNR"}},
		{"collapse whitespace", "w  KQkq   -  0 1", " ", true,
			[]string{"w", "KQkq", "-", "0", "1"}},
		{"keep empty", "a,,b", ",", false, []string{"a", "", "b"}},
		{"empty input", "", " ", true, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Split(tt.src, tt.delims, tt.omitEmpty); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCoordRoundTrip(t *testing.T) {
	t.Parallel()
	for y := 0; y < coord.Width; y++ {
		for x := 0; x < coord.Width; x++ {
			c := coord.New(x, y)
			s := FormatCoord(c)
			got, ok := ParseCoord(s)
			if !ok || got != c {
				t.Errorf("ParseCoord(FormatCoord(%v)) = %v, %v", c, got, ok)
			}
		}
	}
}

func TestParseCoordCaseInsensitive(t *testing.T) {
	t.Parallel()
	got, ok := ParseCoord("E4")
	if !ok || got != coord.New(4, 3) {
		t.Errorf("ParseCoord(%q) = %v, %v", "E4", got, ok)
	}
}

func TestParseCoordRejectsMalformed(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "i1", "a9", "a", "a12", "11"} {
		if _, ok := ParseCoord(s); ok {
			t.Errorf("ParseCoord(%q) unexpectedly succeeded", s)
		}
	}
}

func TestFormatCoordOutOfBounds(t *testing.T) {
	t.Parallel()
	if got := FormatCoord(coord.New(-1, 0)); got != "" {
		t.Errorf("FormatCoord(out of bounds) = %q, want empty", got)
	}
}

func TestPieceCharRoundTrip(t *testing.T) {
	t.Parallel()
	for _, k := range []piece.Kind{piece.King, piece.Queen, piece.Rook, piece.Knight, piece.Bishop, piece.Pawn} {
		for _, c := range []piece.Color{piece.White, piece.Black} {
			p := piece.Piece{Kind: k, Color: c}
			got, ok := ParsePieceChar(PieceChar(p))
			if !ok || got != p {
				t.Errorf("round trip for %v = %v, %v", p, got, ok)
			}
		}
	}
}

func TestParsePieceCharRejectsUnknown(t *testing.T) {
	t.Parallel()
	for _, c := range []byte{'x', '1', ' ', '.'} {
		if _, ok := ParsePieceChar(c); ok {
			t.Errorf("ParsePieceChar(%q) unexpectedly succeeded", c)
		}
	}
}

func TestPieceCharPanicsOnEmpty(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Errorf("PieceChar(Empty) did not panic")
		}
	}()
	PieceChar(piece.Piece{Kind: piece.Empty})
}
