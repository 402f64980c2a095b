package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress  GameState = "in_progress"
	GameStateComputerWon GameState = "computer_won"
	GameStateHumanWon    GameState = "human_won"
	GameStateDrawn       GameState = "drawn"
	GameStateAbandoned   GameState = "abandoned"
)

// Game is one human-versus-computer session
type Game struct {
	ID       GameID
	PlayerID PlayerID // the human player who owns this game

	GridSize       int
	ComputerSymbol Symbol // the human plays the other symbol
	Strategy       string // name of the bot strategy choosing computer replies

	Position *Position
	State    GameState

	MovesPlayed int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HumanSymbol returns the symbol the human plays
func (g *Game) HumanSymbol() Symbol {
	return g.ComputerSymbol.Other()
}

// SymbolFor returns the display symbol for a mark, or "" for MarkEmpty
func (g *Game) SymbolFor(m Mark) Symbol {
	switch m {
	case MarkComputer:
		return g.ComputerSymbol
	case MarkHuman:
		return g.HumanSymbol()
	default:
		return ""
	}
}

// IsFinished returns true once the game has reached a terminal state
func (g *Game) IsFinished() bool {
	return g.State != GameStateInProgress
}

// StateForOutcome maps a position outcome onto the game state machine.
// Ongoing maps to in-progress; abandonment is not an outcome and is set
// directly by the controller.
func StateForOutcome(o Outcome) GameState {
	switch o {
	case OutcomeComputerWins:
		return GameStateComputerWon
	case OutcomeHumanWins:
		return GameStateHumanWon
	case OutcomeDraw:
		return GameStateDrawn
	default:
		return GameStateInProgress
	}
}

// Forecast is the coarse prediction of how a game in progress will end,
// derived from the minimax score of the current position
type Forecast string

const (
	ForecastComputerWin Forecast = "computer_win"
	ForecastHumanWin    Forecast = "human_win"
	ForecastDraw        Forecast = "draw"
)
