package response

import (
	"time"

	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/auth"
	"github.com/mcoot/tictactoe-go/internal/services/game"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Board represents a game grid. Empty cells are empty strings;
// occupied cells carry the display symbol ("X" or "O") for this game.
type Board struct {
	Cells [][]string `json:"cells"`
}

// BoardFromGame renders a game's position using its symbol assignment
func BoardFromGame(g *model.Game) Board {
	cells := make([][]string, g.Position.Size)
	for row := 0; row < g.Position.Size; row++ {
		cells[row] = make([]string, g.Position.Size)
		for col := 0; col < g.Position.Size; col++ {
			mark := g.Position.Get(model.Cell{Row: row, Col: col})
			cells[row][col] = string(g.SymbolFor(mark))
		}
	}
	return Board{Cells: cells}
}

// Game represents a game session in API responses
type Game struct {
	ID             string    `json:"id"`
	State          string    `json:"state"`
	GridSize       int       `json:"grid_size"`
	ComputerSymbol string    `json:"computer_symbol"`
	HumanSymbol    string    `json:"human_symbol"`
	Strategy       string    `json:"strategy"`
	Board          Board     `json:"board"`
	YourTurn       bool      `json:"your_turn"`
	MovesPlayed    int       `json:"moves_played"`
	Score          int       `json:"score"`
	Forecast       string    `json:"forecast,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GameFromModel converts a model.Game plus its evaluation
func GameFromModel(g *model.Game, score int, forecast model.Forecast) Game {
	resp := Game{
		ID:             string(g.ID),
		State:          string(g.State),
		GridSize:       g.GridSize,
		ComputerSymbol: string(g.ComputerSymbol),
		HumanSymbol:    string(g.HumanSymbol()),
		Strategy:       g.Strategy,
		Board:          BoardFromGame(g),
		YourTurn:       !g.IsFinished() && g.Position.ToMove == model.MarkHuman,
		MovesPlayed:    g.MovesPlayed,
		Score:          score,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
	if !g.IsFinished() {
		resp.Forecast = string(forecast)
	}
	return resp
}

// Cell identifies a board cell in responses
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveResponse is the response after playing a move. The computer's
// reply, when one was made, is included so clients see the full
// turn cycle from a single call.
type MoveResponse struct {
	Game         Game  `json:"game"`
	HumanMove    Cell  `json:"human_move"`
	ComputerMove *Cell `json:"computer_move,omitempty"`
}

// MoveResponseFromResult converts a game.MoveResult
func MoveResponseFromResult(r *game.MoveResult) MoveResponse {
	resp := MoveResponse{
		Game:      GameFromModel(r.Game, r.Score, r.Forecast),
		HumanMove: Cell{Row: r.HumanMove.Row, Col: r.HumanMove.Col},
	}
	if r.ComputerMove != nil {
		resp.ComputerMove = &Cell{Row: r.ComputerMove.Row, Col: r.ComputerMove.Col}
	}
	return resp
}

// GameList is the response for listing a player's games
type GameList struct {
	Games []Game `json:"games"`
}
