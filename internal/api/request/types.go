package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateGameRequest is the request body for starting a game
type CreateGameRequest struct {
	GridSize       int    `json:"grid_size,omitempty"`
	ComputerSymbol string `json:"computer_symbol,omitempty"`
	ComputerFirst  bool   `json:"computer_first,omitempty"`
	Strategy       string `json:"strategy,omitempty"`
}

// PlayMoveRequest is the request body for playing a move
type PlayMoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
