package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Game:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case MoveResult:
		o.printMoveResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Board response type
type Board struct {
	Cells [][]string `json:"cells"`
}

// Game response type
type Game struct {
	ID             string `json:"id"`
	State          string `json:"state"`
	GridSize       int    `json:"grid_size"`
	ComputerSymbol string `json:"computer_symbol"`
	HumanSymbol    string `json:"human_symbol"`
	Strategy       string `json:"strategy"`
	Board          Board  `json:"board"`
	YourTurn       bool   `json:"your_turn"`
	MovesPlayed    int    `json:"moves_played"`
	Score          int    `json:"score"`
	Forecast       string `json:"forecast,omitempty"`
}

// GameList response type
type GameList struct {
	Games []Game `json:"games"`
}

// Cell response type
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveResult response type
type MoveResult struct {
	Game         Game  `json:"game"`
	HumanMove    Cell  `json:"human_move"`
	ComputerMove *Cell `json:"computer_move,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("State: %s\n", g.State)
	fmt.Printf("You play %s, the computer plays %s (%s)\n", g.HumanSymbol, g.ComputerSymbol, g.Strategy)
	fmt.Println()
	o.printBoard(&g.Board)
	fmt.Println()

	if g.State == "in_progress" {
		if g.YourTurn {
			fmt.Println("Your turn")
		} else {
			fmt.Println("Waiting on the computer")
		}
		if g.Forecast != "" {
			fmt.Printf("Forecast: %s (score %d)\n", g.Forecast, g.Score)
		}
	} else {
		fmt.Printf("Result: %s after %d moves\n", g.State, g.MovesPlayed)
	}
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Println("No games")
		return
	}
	for _, g := range l.Games {
		fmt.Printf("%s  %-12s  you=%s  moves=%d\n", g.ID, g.State, g.HumanSymbol, g.MovesPlayed)
	}
}

func (o *Output) printMoveResult(m MoveResult) {
	fmt.Printf("You played (%d, %d)\n", m.HumanMove.Row, m.HumanMove.Col)
	if m.ComputerMove != nil {
		fmt.Printf("Computer played (%d, %d)\n", m.ComputerMove.Row, m.ComputerMove.Col)
	}
	fmt.Println()
	o.printGame(m.Game)
}

func (o *Output) printBoard(b *Board) {
	if b == nil || len(b.Cells) == 0 {
		return
	}

	size := len(b.Cells)

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf(" %d ", col)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	// Print rows
	for row := 0; row < size; row++ {
		fmt.Printf(" %d |", row)
		for col := 0; col < size; col++ {
			cell := b.Cells[row][col]
			if cell == "" {
				fmt.Print(" . ")
			} else {
				fmt.Printf(" %s ", cell)
			}
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
