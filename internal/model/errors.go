package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game errors
	ErrGameNotFound        = errors.New("game not found")
	ErrNotYourGame         = errors.New("game belongs to another player")
	ErrNotHumanTurn        = errors.New("it is not the human's turn")
	ErrGameFinished        = errors.New("game is already finished")
	ErrInvalidCell         = errors.New("cell is out of bounds")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrInvalidSymbol       = errors.New("symbol must be X or O")
	ErrUnsupportedGridSize = errors.New("unsupported grid size")
	ErrUnknownStrategy     = errors.New("unknown bot strategy")
	ErrNoMoveAvailable     = errors.New("no move available")
)
