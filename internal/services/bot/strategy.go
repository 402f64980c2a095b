package bot

import "github.com/mcoot/tictactoe-go/internal/model"

// Strategy names accepted at game creation
const (
	StrategyMinimax = "minimax"
	StrategyRandom  = "random"
)

// DefaultStrategy is used when game creation does not name one
const DefaultStrategy = StrategyMinimax

// Strategy defines how the computer chooses its reply to a position.
// ChooseMove reports false when no move is available (terminal position
// or not the computer's turn); callers treat that as nothing to apply,
// not as an error.
type Strategy interface {
	ChooseMove(p *model.Position) (model.Cell, bool)
}

// Registry maps strategy names to implementations
type Registry map[string]Strategy

// Get returns the named strategy
func (r Registry) Get(name string) (Strategy, bool) {
	st, ok := r[name]
	return st, ok
}
