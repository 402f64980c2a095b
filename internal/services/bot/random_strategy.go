package bot

import (
	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
)

// RandomStrategy picks a uniformly random empty cell. It is the "easy"
// opponent and makes no attempt to win.
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove picks a random empty cell, or reports false when the
// position is terminal or it is not the computer's turn
func (s *RandomStrategy) ChooseMove(p *model.Position) (model.Cell, bool) {
	if p.ToMove != model.MarkComputer || p.Outcome() != model.OutcomeOngoing {
		return model.Cell{}, false
	}

	var empty []model.Cell
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			if p.Cells[row][col] == model.MarkEmpty {
				empty = append(empty, model.Cell{Row: row, Col: col})
			}
		}
	}
	if len(empty) == 0 {
		return model.Cell{}, false
	}
	return empty[s.random.Intn(len(empty))], true
}
