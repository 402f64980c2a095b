package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/tictactoe-go/internal/api/middleware"
	"github.com/mcoot/tictactoe-go/internal/api/request"
	"github.com/mcoot/tictactoe-go/internal/api/response"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	opts := game.CreateOptions{
		GridSize:       req.GridSize,
		ComputerSymbol: model.Symbol(req.ComputerSymbol),
		ComputerFirst:  req.ComputerFirst,
		Strategy:       req.Strategy,
	}

	g, err := h.gameController.CreateGame(r.Context(), player.ID, opts)
	if err != nil {
		WriteError(w, err)
		return
	}

	score, forecast := h.gameController.Evaluate(g)
	response.JSON(w, http.StatusCreated, response.GameFromModel(g, score, forecast))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	gameID := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), gameID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	score, forecast := h.gameController.Evaluate(g)
	response.JSON(w, http.StatusOK, response.GameFromModel(g, score, forecast))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	games, err := h.gameController.ListGames(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GameList{Games: make([]response.Game, len(games))}
	for i, g := range games {
		score, forecast := h.gameController.Evaluate(g)
		resp.Games[i] = response.GameFromModel(g, score, forecast)
	}
	response.JSON(w, http.StatusOK, resp)
}

// PlayMove handles POST /api/v1/games/{id}/moves
func (h *GameHandler) PlayMove(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	gameID := model.GameID(mux.Vars(r)["id"])

	var req request.PlayMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	cell := model.Cell{Row: req.Row, Col: req.Col}
	result, err := h.gameController.PlayMove(r.Context(), gameID, player.ID, cell)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResponseFromResult(result))
}

// Abandon handles DELETE /api/v1/games/{id}
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	gameID := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.AbandonGame(r.Context(), gameID, player.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
