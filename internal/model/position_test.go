package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe-go/internal/model"
)

type PositionSuite struct {
	suite.Suite
}

func TestPositionSuite(t *testing.T) {
	suite.Run(t, new(PositionSuite))
}

// positionFrom builds a position from row strings using '.', 'C', 'H'
func positionFrom(toMove model.Mark, rows ...string) *model.Position {
	p := model.NewPosition(len(rows), toMove)
	for row, s := range rows {
		for col, ch := range s {
			switch ch {
			case 'C':
				p.Cells[row][col] = model.MarkComputer
			case 'H':
				p.Cells[row][col] = model.MarkHuman
			}
		}
	}
	return p
}

func (s *PositionSuite) TestNewPositionIsEmpty() {
	p := model.NewPosition(3, model.MarkComputer)

	s.Equal(3, p.Size)
	s.Equal(9, p.EmptyCount())
	s.Equal(model.MarkComputer, p.ToMove)
	s.Equal(model.OutcomeOngoing, p.Outcome())
}

func (s *PositionSuite) TestCloneWithMoveChangesExactlyOneCell() {
	p := positionFrom(model.MarkHuman,
		"C..",
		".H.",
		"...",
	)

	child := p.CloneWithMove(model.Cell{Row: 2, Col: 1}, model.MarkHuman)

	s.Equal(model.MarkHuman, child.Get(model.Cell{Row: 2, Col: 1}))
	s.Equal(model.MarkComputer, child.ToMove)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row == 2 && col == 1 {
				continue
			}
			c := model.Cell{Row: row, Col: col}
			s.Equal(p.Get(c), child.Get(c), "cell (%d,%d) must be unchanged", row, col)
		}
	}

	// The receiver is untouched
	s.Equal(model.MarkEmpty, p.Get(model.Cell{Row: 2, Col: 1}))
	s.Equal(model.MarkHuman, p.ToMove)
}

func (s *PositionSuite) TestChildBoardsRowMajorOrder() {
	p := positionFrom(model.MarkComputer,
		"C..",
		".H.",
		"...",
	)

	children := p.ChildBoards()
	s.Len(children, 7)

	// Each child places the side to move in the next empty cell row-major
	wantCells := []model.Cell{
		{Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}
	for i, child := range children {
		s.Equal(model.MarkComputer, child.Get(wantCells[i]))
		s.Equal(model.MarkHuman, child.ToMove)
		s.Equal(6, child.EmptyCount())
	}
}

func (s *PositionSuite) TestChildBoardsFullBoard() {
	p := positionFrom(model.MarkComputer,
		"CHC",
		"HHC",
		"CCH",
	)

	s.Empty(p.ChildBoards())
	s.Equal(model.OutcomeDraw, p.Outcome())
}

func (s *PositionSuite) TestOutcomeRows() {
	p := positionFrom(model.MarkHuman,
		"CCC",
		"HH.",
		"...",
	)
	s.Equal(model.OutcomeComputerWins, p.Outcome())

	p = positionFrom(model.MarkComputer,
		"CC.",
		"HHH",
		"...",
	)
	s.Equal(model.OutcomeHumanWins, p.Outcome())
}

func (s *PositionSuite) TestOutcomeColumns() {
	p := positionFrom(model.MarkHuman,
		"CH.",
		"CH.",
		"C..",
	)
	s.Equal(model.OutcomeComputerWins, p.Outcome())
}

func (s *PositionSuite) TestOutcomeDiagonals() {
	p := positionFrom(model.MarkHuman,
		"CH.",
		"HC.",
		"..C",
	)
	s.Equal(model.OutcomeComputerWins, p.Outcome())

	p = positionFrom(model.MarkComputer,
		"CCH",
		"CH.",
		"H..",
	)
	s.Equal(model.OutcomeHumanWins, p.Outcome())
}

func (s *PositionSuite) TestOutcomeOngoing() {
	p := positionFrom(model.MarkComputer,
		"CH.",
		".C.",
		"..H",
	)
	s.Equal(model.OutcomeOngoing, p.Outcome())
}

func (s *PositionSuite) TestOutcomeSymmetricUnderMarkSwap() {
	boards := [][]string{
		{"CCC", "HH.", "..."},
		{"CH.", "CH.", "C.."},
		{"CHC", "HHC", "CCH"},
		{"CH.", ".C.", "..H"},
		{"C.H", ".CH", "..H"},
	}

	swap := map[model.Outcome]model.Outcome{
		model.OutcomeComputerWins: model.OutcomeHumanWins,
		model.OutcomeHumanWins:    model.OutcomeComputerWins,
		model.OutcomeDraw:         model.OutcomeDraw,
		model.OutcomeOngoing:      model.OutcomeOngoing,
	}

	for _, rows := range boards {
		p := positionFrom(model.MarkComputer, rows...)

		mirrored := model.NewPosition(p.Size, p.ToMove.Opponent())
		for row := 0; row < p.Size; row++ {
			for col := 0; col < p.Size; col++ {
				mirrored.Cells[row][col] = p.Cells[row][col].Opponent()
			}
		}

		s.Equal(swap[p.Outcome()], mirrored.Outcome(), "board %v", rows)
	}
}

func (s *PositionSuite) TestEncode() {
	p := positionFrom(model.MarkHuman,
		"CH.",
		".C.",
		"..H",
	)
	s.Equal("CH./.C./..H", p.Encode())

	s.Equal(".../.../...", model.NewPosition(3, model.MarkComputer).Encode())
}

func (s *PositionSuite) TestEncodeDistinguishesLayout() {
	// Same occupancy counts, different layout
	a := positionFrom(model.MarkComputer, "C..", ".H.", "...")
	b := positionFrom(model.MarkComputer, "..C", "H..", "...")
	s.NotEqual(a.Encode(), b.Encode())
}

func (s *PositionSuite) TestGeneralizesToLargerGrids() {
	p := positionFrom(model.MarkHuman,
		"CCC.",
		"HH..",
		"....",
		"H...",
	)
	s.Equal(model.OutcomeOngoing, p.Outcome())
	s.Equal(10, p.EmptyCount())
	s.Len(p.ChildBoards(), 10)

	won := positionFrom(model.MarkHuman,
		"CCCC",
		"HH..",
		"....",
		"H...",
	)
	s.Equal(model.OutcomeComputerWins, won.Outcome())
	s.Empty(won.ChildBoards())
}
