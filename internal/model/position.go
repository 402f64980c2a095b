package model

import "strings"

// Mark is the occupant of a board cell. Cells record the role of the
// occupant (computer or human) rather than the display symbol, so the
// same grid means the same thing in every game regardless of which
// symbol the computer plays.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkComputer
	MarkHuman
)

// Opponent returns the opposing player's mark. MarkEmpty has no opponent
// and is returned unchanged.
func (m Mark) Opponent() Mark {
	switch m {
	case MarkComputer:
		return MarkHuman
	case MarkHuman:
		return MarkComputer
	default:
		return MarkEmpty
	}
}

// Symbol is a display mark, "X" or "O"
type Symbol string

const (
	SymbolX Symbol = "X"
	SymbolO Symbol = "O"
)

// Other returns the opposing symbol
func (s Symbol) Other() Symbol {
	if s == SymbolX {
		return SymbolO
	}
	return SymbolX
}

// IsValid returns true for the two recognized symbols
func (s Symbol) IsValid() bool {
	return s == SymbolX || s == SymbolO
}

// Cell identifies a board cell
type Cell struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Position is an immutable board snapshot plus whose turn is next.
// A Position is never mutated after construction; applying a move
// produces a new Position. This is what lets positions participate in
// the search tree and be cached by their encoding.
type Position struct {
	Size   int      `json:"size"`
	Cells  [][]Mark `json:"cells"` // row-major: Cells[row][col]
	ToMove Mark     `json:"to_move"`
}

// NewPosition creates an empty board of the given size with the given
// side to move first
func NewPosition(size int, toMove Mark) *Position {
	cells := make([][]Mark, size)
	for i := range cells {
		cells[i] = make([]Mark, size)
	}
	return &Position{
		Size:   size,
		Cells:  cells,
		ToMove: toMove,
	}
}

// Get returns the mark at the given cell, or MarkEmpty if out of bounds
func (p *Position) Get(c Cell) Mark {
	if !p.InBounds(c) {
		return MarkEmpty
	}
	return p.Cells[c.Row][c.Col]
}

// InBounds returns true if the cell is within the grid
func (p *Position) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < p.Size && c.Col >= 0 && c.Col < p.Size
}

// IsEmpty returns true if the cell is in bounds and unoccupied
func (p *Position) IsEmpty(c Cell) bool {
	return p.InBounds(c) && p.Cells[c.Row][c.Col] == MarkEmpty
}

// EmptyCount returns the number of unoccupied cells
func (p *Position) EmptyCount() int {
	count := 0
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			if p.Cells[row][col] == MarkEmpty {
				count++
			}
		}
	}
	return count
}

// CloneWithMove returns a new Position with the given cell set to mark
// and the turn flipped. The receiver is not touched.
//
// Caller contract: the cell must be in bounds and empty. The engine only
// ever calls this with cells it has already verified empty; violating
// the contract silently overwrites, matching getChildBoards semantics.
func (p *Position) CloneWithMove(c Cell, mark Mark) *Position {
	cells := make([][]Mark, p.Size)
	for i := range cells {
		cells[i] = make([]Mark, p.Size)
		copy(cells[i], p.Cells[i])
	}
	cells[c.Row][c.Col] = mark
	return &Position{
		Size:   p.Size,
		Cells:  cells,
		ToMove: p.ToMove.Opponent(),
	}
}

// ChildBoards enumerates every position reachable by the side to move
// placing its mark in one empty cell, in strict row-major order. A
// terminal position admits no further play and yields an empty slice.
// Move selection relies on this order for its tie-break, so it must
// stay deterministic.
func (p *Position) ChildBoards() []*Position {
	if p.Outcome().IsTerminal() {
		return nil
	}
	var children []*Position
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			if p.Cells[row][col] == MarkEmpty {
				children = append(children, p.CloneWithMove(Cell{Row: row, Col: col}, p.ToMove))
			}
		}
	}
	return children
}

// Encode returns the canonical string key for this position's grid:
// one byte per cell ('.' empty, 'C' computer, 'H' human), rows joined
// with '/'. The delimiter cannot appear inside a cell value, so the
// encoding is injective over grid contents.
//
// Whose turn it is does not appear in the key: under strict alternating
// play the turn is implied by mark-count parity, so two positions with
// identical grids always have the same side to move.
func (p *Position) Encode() string {
	var sb strings.Builder
	sb.Grow(p.Size*(p.Size+1) - 1)
	for row := 0; row < p.Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < p.Size; col++ {
			switch p.Cells[row][col] {
			case MarkComputer:
				sb.WriteByte('C')
			case MarkHuman:
				sb.WriteByte('H')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
