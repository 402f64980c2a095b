package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe-go/internal/dependencies/mocks"
	"github.com/mcoot/tictactoe-go/internal/engine"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/bot"
	"github.com/mcoot/tictactoe-go/internal/services/game"
	"github.com/mcoot/tictactoe-go/internal/storage/memory"
	"github.com/mcoot/tictactoe-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	ctx        context.Context
	storage    *memory.Storage
	mockClock  *mocks.MockClock
	mockRandom *mocks.MockRandom
	engine     *engine.Service
	controller *game.Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.New()
	s.mockClock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.mockRandom = mocks.NewMockRandom()
	s.engine = engine.New(engine.NewCache(), engine.DefaultConfig(), testutil.NopLogger())

	strategies := bot.Registry{
		bot.StrategyMinimax: bot.NewMinimaxStrategy(s.engine),
		bot.StrategyRandom:  bot.NewRandomStrategy(s.mockRandom),
	}

	s.controller = game.NewController(
		s.storage, s.engine, strategies, s.mockClock, s.mockRandom, testutil.NopLogger(),
	)
}

func (s *ControllerSuite) createGame(opts game.CreateOptions) *model.Game {
	s.mockRandom.QueueString("GAME00000001")
	g, err := s.controller.CreateGame(s.ctx, "player-1", opts)
	s.Require().NoError(err)
	return g
}

func (s *ControllerSuite) TestCreateGameDefaults() {
	g := s.createGame(game.CreateOptions{})

	s.Equal(model.GameID("GAME00000001"), g.ID)
	s.Equal(model.PlayerID("player-1"), g.PlayerID)
	s.Equal(3, g.GridSize)
	s.Equal(model.SymbolO, g.ComputerSymbol)
	s.Equal(model.SymbolX, g.HumanSymbol())
	s.Equal(bot.StrategyMinimax, g.Strategy)
	s.Equal(model.GameStateInProgress, g.State)
	s.Equal(model.MarkHuman, g.Position.ToMove)
	s.Equal(0, g.MovesPlayed)
	s.Equal(s.mockClock.CurrentTime, g.CreatedAt)

	// Persisted
	stored, err := s.storage.GetGame(s.ctx, g.ID)
	s.NoError(err)
	s.Equal(g.ID, stored.ID)
}

func (s *ControllerSuite) TestCreateGameComputerFirst() {
	g := s.createGame(game.CreateOptions{
		ComputerSymbol: model.SymbolX,
		ComputerFirst:  true,
	})

	s.Equal(1, g.MovesPlayed)
	s.Equal(model.MarkHuman, g.Position.ToMove)
	s.Equal(8, g.Position.EmptyCount())
	s.Equal(model.GameStateInProgress, g.State)
}

func (s *ControllerSuite) TestCreateGameRejectsUnsupportedSize() {
	_, err := s.controller.CreateGame(s.ctx, "player-1", game.CreateOptions{GridSize: 4})
	s.ErrorIs(err, model.ErrUnsupportedGridSize)
}

func (s *ControllerSuite) TestCreateGameRejectsBadSymbol() {
	_, err := s.controller.CreateGame(s.ctx, "player-1", game.CreateOptions{ComputerSymbol: "Z"})
	s.ErrorIs(err, model.ErrInvalidSymbol)
}

func (s *ControllerSuite) TestCreateGameRejectsUnknownStrategy() {
	_, err := s.controller.CreateGame(s.ctx, "player-1", game.CreateOptions{Strategy: "psychic"})
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *ControllerSuite) TestPlayMoveAppliesHumanAndComputerMoves() {
	g := s.createGame(game.CreateOptions{})

	result, err := s.controller.PlayMove(s.ctx, g.ID, "player-1", model.Cell{Row: 1, Col: 1})
	s.Require().NoError(err)

	s.Equal(model.Cell{Row: 1, Col: 1}, result.HumanMove)
	s.Require().NotNil(result.ComputerMove)
	s.Equal(2, result.Game.MovesPlayed)
	s.Equal(model.MarkHuman, result.Game.Position.ToMove)
	s.Equal(model.MarkHuman, result.Game.Position.Get(model.Cell{Row: 1, Col: 1}))
	s.Equal(model.MarkComputer, result.Game.Position.Get(*result.ComputerMove))
	s.Equal(model.GameStateInProgress, result.Game.State)
	s.Equal(model.ForecastDraw, result.Forecast)
}

func (s *ControllerSuite) TestPlayMoveRejectsOccupiedCell() {
	g := s.createGame(game.CreateOptions{})

	result, err := s.controller.PlayMove(s.ctx, g.ID, "player-1", model.Cell{Row: 0, Col: 0})
	s.Require().NoError(err)
	s.Require().NotNil(result.ComputerMove)

	// Both the human's own cell and the computer's reply are taken
	_, err = s.controller.PlayMove(s.ctx, g.ID, "player-1", model.Cell{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrCellOccupied)
	_, err = s.controller.PlayMove(s.ctx, g.ID, "player-1", *result.ComputerMove)
	s.ErrorIs(err, model.ErrCellOccupied)
}

func (s *ControllerSuite) TestPlayMoveRejectsOutOfBounds() {
	g := s.createGame(game.CreateOptions{})

	_, err := s.controller.PlayMove(s.ctx, g.ID, "player-1", model.Cell{Row: 3, Col: 0})
	s.ErrorIs(err, model.ErrInvalidCell)

	_, err = s.controller.PlayMove(s.ctx, g.ID, "player-1", model.Cell{Row: 0, Col: -1})
	s.ErrorIs(err, model.ErrInvalidCell)
}

func (s *ControllerSuite) TestPlayMoveRejectsOtherPlayersGame() {
	g := s.createGame(game.CreateOptions{})

	_, err := s.controller.PlayMove(s.ctx, g.ID, "player-2", model.Cell{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrNotYourGame)
}

func (s *ControllerSuite) TestPlayMoveUnknownGame() {
	_, err := s.controller.PlayMove(s.ctx, "missing", "player-1", model.Cell{})
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestFullGameAgainstMinimaxIsNeverLost() {
	// The human mirrors the engine's own evaluation, so perfect play
	// on both sides must run to a draw.
	g := s.createGame(game.CreateOptions{ComputerFirst: true})

	for !g.IsFinished() {
		cell, ok := s.bestHumanCell(g.Position)
		s.Require().True(ok)

		result, err := s.controller.PlayMove(s.ctx, g.ID, "player-1", cell)
		s.Require().NoError(err)
		g = result.Game
	}

	s.Equal(model.GameStateDrawn, g.State)
	s.Equal(9, g.MovesPlayed)
}

func (s *ControllerSuite) TestGameAgainstRandomStrategy() {
	s.mockRandom.QueueString("GAME00000002")
	// Random bot picks the first empty cell every time
	s.mockRandom.QueueIntn(0, 0, 0, 0)

	g, err := s.controller.CreateGame(s.ctx, "player-1", game.CreateOptions{
		Strategy: bot.StrategyRandom,
	})
	s.Require().NoError(err)

	// Human takes the middle column; bot fills (0,0), (0,2), (1,0)...
	result, err := s.controller.PlayMove(s.ctx, g.ID, "player-1", model.Cell{Row: 0, Col: 1})
	s.Require().NoError(err)
	s.Equal(model.Cell{Row: 0, Col: 0}, *result.ComputerMove)

	result, err = s.controller.PlayMove(s.ctx, g.ID, "player-1", model.Cell{Row: 1, Col: 1})
	s.Require().NoError(err)
	s.Equal(model.Cell{Row: 0, Col: 2}, *result.ComputerMove)

	result, err = s.controller.PlayMove(s.ctx, g.ID, "player-1", model.Cell{Row: 2, Col: 1})
	s.Require().NoError(err)

	// Human completed the middle column before the bot could reply
	s.Nil(result.ComputerMove)
	s.Equal(model.GameStateHumanWon, result.Game.State)
	s.Equal(-100, result.Score)
	s.Equal(model.ForecastHumanWin, result.Forecast)

	_, err = s.controller.PlayMove(s.ctx, g.ID, "player-1", model.Cell{Row: 2, Col: 2})
	s.ErrorIs(err, model.ErrGameFinished)
}

func (s *ControllerSuite) TestAbandonGame() {
	g := s.createGame(game.CreateOptions{})

	err := s.controller.AbandonGame(s.ctx, g.ID, "player-1")
	s.Require().NoError(err)

	stored, err := s.controller.GetGame(s.ctx, g.ID, "player-1")
	s.Require().NoError(err)
	s.Equal(model.GameStateAbandoned, stored.State)

	// Abandoning a finished game is a no-op
	s.NoError(s.controller.AbandonGame(s.ctx, g.ID, "player-1"))

	_, err = s.controller.PlayMove(s.ctx, g.ID, "player-1", model.Cell{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrGameFinished)
}

// bestHumanCell picks the human reply the engine itself would rate
// best for the minimizing side
func (s *ControllerSuite) bestHumanCell(p *model.Position) (model.Cell, bool) {
	if p.ToMove != model.MarkHuman || p.Outcome() != model.OutcomeOngoing {
		return model.Cell{}, false
	}

	best := model.Cell{}
	bestScore := 0
	found := false
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			cell := model.Cell{Row: row, Col: col}
			if !p.IsEmpty(cell) {
				continue
			}
			score := s.engine.Score(p.CloneWithMove(cell, model.MarkHuman))
			if !found || score < bestScore {
				best = cell
				bestScore = score
				found = true
			}
		}
	}
	return best, found
}
