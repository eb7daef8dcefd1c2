package common

import (
	"fmt"
	"strconv"
	"strings"
)

type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

const WinLength = 5

func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Cell) IsSide() bool {
	return c == Black || c == White
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

func (c Cell) symbol() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	}
	return '.'
}

// ParseSide accepts the protocol side codes 1 (black) and 2 (white).
func ParseSide(s string) (Cell, error) {
	var v, err = strconv.Atoi(s)
	if err != nil {
		return Empty, fmt.Errorf("parse side %q: %w", s, err)
	}
	var side = Cell(v)
	if !side.IsSide() {
		return Empty, fmt.Errorf("bad side %v", v)
	}
	return side, nil
}

type Move struct {
	Row, Col int
}

var MoveEmpty = Move{Row: -1, Col: -1}

func (m Move) String() string {
	if m == MoveEmpty {
		return "none"
	}
	return strconv.Itoa(m.Row) + " " + strconv.Itoa(m.Col)
}

func (m Move) Add(d Direction, n int) Move {
	return Move{Row: m.Row + n*d.DRow, Col: m.Col + n*d.DCol}
}

func ParseMove(fields []string) (Move, error) {
	if len(fields) != 2 {
		return MoveEmpty, fmt.Errorf("bad move %q", strings.Join(fields, " "))
	}
	var row, err = strconv.Atoi(fields[0])
	if err != nil {
		return MoveEmpty, fmt.Errorf("parse row: %w", err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return MoveEmpty, fmt.Errorf("parse col: %w", err)
	}
	return Move{Row: row, Col: col}, nil
}

type Direction struct {
	DRow, DCol int
}

func (d Direction) Reverse() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// Axes are scanned in this order; the evaluator depends on it.
var Axes = [4]Direction{
	{DRow: 0, DCol: 1},
	{DRow: 1, DCol: 0},
	{DRow: 1, DCol: 1},
	{DRow: 1, DCol: -1},
}
