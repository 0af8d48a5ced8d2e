// Command chessdump loads a position from a FEN string and prints the
// board alongside the legal destinations for one queried square. It is a
// read-only inspection tool: it never writes back a FEN or accepts moves.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/corvidlabs/chesscore/board"
	"github.com/corvidlabs/chesscore/coord"
	"github.com/corvidlabs/chesscore/engine"
	"github.com/corvidlabs/chesscore/text"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	fen   = flag.String("fen", board.DefaultStartingPositionFEN, "FEN string of the position to load")
	query = flag.String("at", "", "square to list legal destinations for, e.g. e2")
)

func main() {
	flag.Parse()

	if err := run(*fen, *query); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func run(fen, query string) error {
	b, err := board.NewFromFEN(fen)
	if err != nil {
		return fmt.Errorf("loading position: %w", err)
	}

	fmt.Println(renderBoard(b))
	fmt.Printf("turn: %s  halfmove: %d  fullmove: %d\n", b.Turn(), b.HalfmoveClock(), b.FullmoveCounter())

	if query == "" {
		return nil
	}

	at, ok := text.ParseCoord(query)
	if !ok {
		return errors.New("malformed square: " + query)
	}

	e := engine.NewBoundTo(b)
	ok, dests := e.ComputeLegalMoves(at)
	if !ok {
		return fmt.Errorf("no piece on %s", query)
	}

	fmt.Printf("legal destinations from %s:", query)
	for _, d := range dests {
		fmt.Print(" ", text.FormatCoord(d))
	}
	fmt.Println()
	return nil
}

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgBlack, color.FgHiWhite)
)

func renderBoard(b *board.Board) string {
	var out string
	for y := 7; y >= 0; y-- {
		out += fmt.Sprintf("%d ", y+1)
		for x := 0; x < 8; x++ {
			sq := lightSquare
			if (x+y)%2 == 0 {
				sq = darkSquare
			}
			p, ok := b.Piece(coord.New(x, y))
			sym := " "
			if ok {
				sym = string(text.PieceChar(p))
			}
			out += sq.Sprintf(" %s ", sym)
		}
		out += "\n"
	}
	out += "   a  b  c  d  e  f  g  h"
	return out
}
