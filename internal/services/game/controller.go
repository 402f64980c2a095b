package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/engine"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/bot"
	"github.com/mcoot/tictactoe-go/internal/storage"
)

// SupportedGridSize is the only grid size the controller accepts.
// The rules and search code are written against an arbitrary square
// size, but exhaustive minimax without pruning is intractable beyond
// 3x3, so larger boards are rejected at this boundary.
const SupportedGridSize = 3

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CreateOptions selects how a new game is set up
type CreateOptions struct {
	// GridSize of the board; 0 means SupportedGridSize
	GridSize int
	// ComputerSymbol is the symbol the computer plays; "" means O
	// (the human gets X and the first move by default)
	ComputerSymbol model.Symbol
	// ComputerFirst gives the computer the opening move
	ComputerFirst bool
	// Strategy names the bot strategy; "" means the default
	Strategy string
}

// MoveResult reports what one PlayMove call did
type MoveResult struct {
	Game         *model.Game
	HumanMove    model.Cell
	ComputerMove *model.Cell // nil if the game ended on the human's move
	Score        int
	Forecast     model.Forecast
}

// Controller manages game sessions: it owns the turn cycle in which a
// human move is followed synchronously by the computer's reply.
type Controller struct {
	storage    storage.Storage
	engine     *engine.Service
	strategies bot.Registry
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
}

// NewController creates a game Controller
func NewController(
	store storage.Storage,
	eng *engine.Service,
	strategies bot.Registry,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    store,
		engine:     eng,
		strategies: strategies,
		clock:      clk,
		random:     rnd,
		logger:     logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame starts a new session for a player. If the computer moves
// first its opening reply is played before the game is returned.
func (c *Controller) CreateGame(ctx context.Context, playerID model.PlayerID, opts CreateOptions) (*model.Game, error) {
	gridSize := opts.GridSize
	if gridSize == 0 {
		gridSize = SupportedGridSize
	}
	if gridSize != SupportedGridSize {
		return nil, model.ErrUnsupportedGridSize
	}

	computerSymbol := opts.ComputerSymbol
	if computerSymbol == "" {
		computerSymbol = model.SymbolO
	}
	if !computerSymbol.IsValid() {
		return nil, model.ErrInvalidSymbol
	}

	strategyName := opts.Strategy
	if strategyName == "" {
		strategyName = bot.DefaultStrategy
	}
	_, ok := c.strategies.Get(strategyName)
	if !ok {
		return nil, model.ErrUnknownStrategy
	}

	firstMover := model.MarkHuman
	if opts.ComputerFirst {
		firstMover = model.MarkComputer
	}

	now := c.clock.Now()
	g := &model.Game{
		ID:             model.GameID(c.random.String(12, gameIDAlphabet)),
		PlayerID:       playerID,
		GridSize:       gridSize,
		ComputerSymbol: computerSymbol,
		Strategy:       strategyName,
		Position:       model.NewPosition(gridSize, firstMover),
		State:          model.GameStateInProgress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if opts.ComputerFirst {
		c.playComputerReply(g)
	}

	if err := c.storage.SaveGame(ctx, g); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(g.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(g.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("strategy", strategyName),
		slog.Bool("computer_first", opts.ComputerFirst),
	)

	return g, nil
}

// GetGame retrieves a game owned by the given player
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.PlayerID != playerID {
		return nil, model.ErrNotYourGame
	}
	return g, nil
}

// ListGames retrieves all games owned by a player
func (c *Controller) ListGames(ctx context.Context, playerID model.PlayerID) ([]*model.Game, error) {
	return c.storage.GetGamesForPlayer(ctx, playerID)
}

// PlayMove applies the human's move and, if the game is still going,
// the computer's reply in the same call.
func (c *Controller) PlayMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cell model.Cell) (*MoveResult, error) {
	g, err := c.GetGame(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	if g.IsFinished() {
		return nil, model.ErrGameFinished
	}
	if g.Position.ToMove != model.MarkHuman {
		return nil, model.ErrNotHumanTurn
	}
	if !g.Position.InBounds(cell) {
		return nil, model.ErrInvalidCell
	}
	if !g.Position.IsEmpty(cell) {
		return nil, model.ErrCellOccupied
	}

	g.Position = g.Position.CloneWithMove(cell, model.MarkHuman)
	g.MovesPlayed++
	g.State = model.StateForOutcome(g.Position.Outcome())

	result := &MoveResult{Game: g, HumanMove: cell}

	if !g.IsFinished() {
		if reply := c.playComputerReply(g); reply != nil {
			result.ComputerMove = reply
		}
	}

	g.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}

	result.Score = c.engine.Score(g.Position)
	result.Forecast = c.engine.Predict(g.Position)

	if g.IsFinished() {
		c.logger.Info("game finished",
			slog.String("game_id", string(g.ID)),
			slog.String("state", string(g.State)),
			slog.Int("moves_played", g.MovesPlayed),
		)
	}

	return result, nil
}

// playComputerReply asks the game's strategy for the computer's move
// and applies it, updating the game state. Returns nil when the
// strategy has no move to offer.
func (c *Controller) playComputerReply(g *model.Game) *model.Cell {
	strategy, ok := c.strategies.Get(g.Strategy)
	if !ok {
		// Strategy validated at creation; a missing one here means
		// storage holds a game from an older configuration.
		c.logger.Warn("strategy not registered, falling back to default",
			slog.String("game_id", string(g.ID)),
			slog.String("strategy", g.Strategy),
		)
		strategy, ok = c.strategies.Get(bot.DefaultStrategy)
		if !ok {
			return nil
		}
	}

	cell, ok := strategy.ChooseMove(g.Position)
	if !ok {
		return nil
	}

	g.Position = g.Position.CloneWithMove(cell, model.MarkComputer)
	g.MovesPlayed++
	g.State = model.StateForOutcome(g.Position.Outcome())
	return &cell
}

// AbandonGame ends a session early
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	g, err := c.GetGame(ctx, gameID, playerID)
	if err != nil {
		return err
	}

	if g.IsFinished() {
		return nil // Already finished
	}

	g.State = model.GameStateAbandoned
	g.UpdatedAt = c.clock.Now()

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
	)

	return c.storage.SaveGame(ctx, g)
}

// Evaluate returns the score and forecast for a game's current position
func (c *Controller) Evaluate(g *model.Game) (int, model.Forecast) {
	return c.engine.Score(g.Position), c.engine.Predict(g.Position)
}
