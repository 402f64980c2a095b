package engine

import (
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/model"
)

const (
	// WinScore is the magnitude of a terminal win score before the
	// child-count adjustment
	WinScore = 100
	// DefaultWinThreshold is the default score magnitude above which a
	// forecast predicts a win rather than a draw
	DefaultWinThreshold = 50
)

// Config holds engine tuning
type Config struct {
	// WinThreshold is the score magnitude at which Predict stops
	// forecasting a draw
	WinThreshold int
}

// DefaultConfig returns default engine configuration
func DefaultConfig() Config {
	return Config{WinThreshold: DefaultWinThreshold}
}

// Service scores positions by exhaustive minimax search over the full
// game tree, memoized through a shared Cache. The computer is the
// maximizing player and the human the minimizing player: scores near
// +100 favor the computer, near -100 favor the human, 0 is neutral.
type Service struct {
	cache  *Cache
	config Config
	logger *slog.Logger
}

// New creates an engine Service around the given shared cache
func New(cache *Cache, cfg Config, logger *slog.Logger) *Service {
	if cfg.WinThreshold == 0 {
		cfg.WinThreshold = DefaultWinThreshold
	}
	return &Service{
		cache:  cache,
		config: cfg,
		logger: logger.With(slog.String("component", "engine")),
	}
}

// Cache returns the shared score cache handle
func (s *Service) Cache() *Cache {
	return s.cache
}

// Score returns the minimax score of a position, consulting the shared
// cache first and storing the computed score on a miss. Calling Score
// twice on the same position returns the identical value without
// recomputing.
func (s *Service) Score(p *model.Position) int {
	key := p.Encode()
	if score, ok := s.cache.Get(key); ok {
		return score
	}
	score := s.computeScore(p)
	s.cache.Put(key, score)
	return score
}

// computeScore is the raw minimax recursion. Terminal positions score
// by the win constant adjusted by the terminal position's own child
// enumeration, which is empty once play has ended.
func (s *Service) computeScore(p *model.Position) int {
	switch p.Outcome() {
	case model.OutcomeComputerWins:
		return WinScore - len(p.ChildBoards())
	case model.OutcomeHumanWins:
		return -WinScore + len(p.ChildBoards())
	case model.OutcomeDraw:
		return 0
	}

	children := p.ChildBoards()
	best := s.Score(children[0])
	for _, child := range children[1:] {
		score := s.Score(child)
		if p.ToMove == model.MarkComputer {
			if score > best {
				best = score
			}
		} else {
			if score < best {
				best = score
			}
		}
	}
	return best
}

// SelectBestMove returns the computer's reply to a position: the first
// child in row-major enumeration order whose score equals the parent's
// own score, along with the cell that move occupies. It reports false
// when no move is available, i.e. the position is terminal or it is not
// the computer's turn. Ties between equally good moves always resolve
// to the top-left-most cell; callers may rely on the choice being
// deterministic.
func (s *Service) SelectBestMove(p *model.Position) (*model.Position, model.Cell, bool) {
	if p.ToMove != model.MarkComputer || p.Outcome() != model.OutcomeOngoing {
		return nil, model.Cell{}, false
	}

	target := s.Score(p)
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			cell := model.Cell{Row: row, Col: col}
			if !p.IsEmpty(cell) {
				continue
			}
			child := p.CloneWithMove(cell, model.MarkComputer)
			if s.Score(child) == target {
				return child, cell, true
			}
		}
	}

	// Unreachable: the parent score is the max over child scores, so
	// some child must match it.
	return nil, model.Cell{}, false
}

// Predict maps a position's score onto a coarse outcome forecast
func (s *Service) Predict(p *model.Position) model.Forecast {
	score := s.Score(p)
	switch {
	case score >= s.config.WinThreshold:
		return model.ForecastComputerWin
	case score <= -s.config.WinThreshold:
		return model.ForecastHumanWin
	default:
		return model.ForecastDraw
	}
}
