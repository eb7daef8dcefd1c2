package common

import (
	"fmt"
	"strings"
)

const DefaultBoardSize = 12

type Board struct {
	size   int
	cells  []Cell
	stones int
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// NewBoardFromRows builds a board from rows of '.', 'X' (black) and 'O' (white).
func NewBoardFromRows(rows ...string) (*Board, error) {
	var b = NewBoard(len(rows))
	for i, row := range rows {
		if len(row) != b.size {
			return nil, fmt.Errorf("row %v: want %v cells, got %v", i, b.size, len(row))
		}
		for j := 0; j < len(row); j++ {
			var c Cell
			switch row[j] {
			case '.':
				continue
			case 'X', 'x':
				c = Black
			case 'O', 'o':
				c = White
			default:
				return nil, fmt.Errorf("row %v: bad cell %q", i, row[j])
			}
			b.Place(Move{Row: i, Col: j}, c)
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Stones() int {
	return b.stones
}

func (b *Board) IsFull() bool {
	return b.stones == len(b.cells)
}

func (b *Board) Center() Move {
	return Move{Row: b.size / 2, Col: b.size / 2}
}

func (b *Board) InBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.size && m.Col >= 0 && m.Col < b.size
}

// At returns Empty for cells outside the board.
func (b *Board) At(m Move) Cell {
	if !b.InBounds(m) {
		return Empty
	}
	return b.cells[m.Row*b.size+m.Col]
}

func (b *Board) IsLegal(m Move) bool {
	return b.InBounds(m) && b.cells[m.Row*b.size+m.Col] == Empty
}

// Place does not validate the move, callers check IsLegal first.
func (b *Board) Place(m Move, side Cell) {
	var i = m.Row*b.size + m.Col
	if b.cells[i] == Empty {
		b.stones++
	}
	b.cells[i] = side
}

func (b *Board) Clear(m Move) {
	var i = m.Row*b.size + m.Col
	if b.cells[i] != Empty {
		b.stones--
	}
	b.cells[i] = Empty
}

func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.stones = 0
}

func (b *Board) Clone() *Board {
	var result = &Board{
		size:   b.size,
		cells:  make([]Cell, len(b.cells)),
		stones: b.stones,
	}
	copy(result.cells, b.cells)
	return result
}

func (b *Board) Equal(other *Board) bool {
	if b.size != other.size || b.stones != other.stones {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// FirstLegal scans in row-major order.
func (b *Board) FirstLegal() (Move, bool) {
	for i, c := range b.cells {
		if c == Empty {
			return Move{Row: i / b.size, Col: i % b.size}, true
		}
	}
	return MoveEmpty, false
}

func (b *Board) String() string {
	var sb = &strings.Builder{}
	for i := 0; i < b.size; i++ {
		for j := 0; j < b.size; j++ {
			sb.WriteByte(b.cells[i*b.size+j].symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
