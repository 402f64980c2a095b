package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidCell         = "INVALID_CELL"
	CodeInvalidSymbol       = "INVALID_SYMBOL"
	CodeUnsupportedGridSize = "UNSUPPORTED_GRID_SIZE"
	CodeUnknownStrategy     = "UNKNOWN_STRATEGY"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNotYourGame         = "NOT_YOUR_GAME"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodeGameFinished        = "GAME_FINISHED"
	CodeCellOccupied        = "CELL_OCCUPIED"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrNotYourGame):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourGame, "Game belongs to another player"}}
	case errors.Is(err, model.ErrNotHumanTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "It is not your turn"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameFinished, "Game is already finished"}}
	case errors.Is(err, model.ErrInvalidCell):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCell, "Cell is outside the grid"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{CodeCellOccupied, "Cell is already occupied"}}
	case errors.Is(err, model.ErrInvalidSymbol):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSymbol, "Symbol must be X or O"}}
	case errors.Is(err, model.ErrUnsupportedGridSize):
		return &httpError{http.StatusBadRequest, APIError{CodeUnsupportedGridSize, "Grid size is not supported"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, "Unknown computer strategy"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
