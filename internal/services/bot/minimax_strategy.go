package bot

import (
	"github.com/mcoot/tictactoe-go/internal/engine"
	"github.com/mcoot/tictactoe-go/internal/model"
)

// MinimaxStrategy plays perfectly by full game-tree search. It defers
// entirely to the engine's best-move selection, so replies are
// deterministic: ties between equally good moves resolve to the
// top-left-most cell.
type MinimaxStrategy struct {
	engine *engine.Service
}

// NewMinimaxStrategy creates a MinimaxStrategy backed by the engine
func NewMinimaxStrategy(eng *engine.Service) *MinimaxStrategy {
	return &MinimaxStrategy{engine: eng}
}

// ChooseMove returns the engine's best reply for the computer
func (s *MinimaxStrategy) ChooseMove(p *model.Position) (model.Cell, bool) {
	_, cell, ok := s.engine.SelectBestMove(p)
	return cell, ok
}
