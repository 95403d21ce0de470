package room

import (
	"diloti-server/pkg/game"
)

// Client message actions
const (
	// ActionStartGame starts the game from the lobby, or deals the next game
	// after one finished. Admin only.
	ActionStartGame = "startGame"

	// ActionSwapSeats swaps two seats while in the lobby. Admin only.
	ActionSwapSeats = "swapSeats"

	// ActionPlay performs a game action for the sender's seat
	ActionPlay = "play"
)

// Response keys
const (
	// KeyLobbyUpdate is sent to every connected player when the roster changes
	KeyLobbyUpdate = "lobbyUpdate"

	// KeyGameUpdate is sent to every connected player after a game state change
	KeyGameUpdate = "gameUpdate"

	// KeyInvalidAction is sent to the offending player only
	KeyInvalidAction = "invalidAction"
)

// ClientMessage is a message from a connected client
type ClientMessage struct {
	Action  string       `json:"action"`
	Swap    *SwapSeats   `json:"swap,omitempty"`
	Play    *game.Action `json:"play,omitempty"`
	Context string       `json:"context,omitempty"`
}

// SwapSeats asks for the players at two seats to trade places
type SwapSeats struct {
	A game.Seat `json:"a"`
	B game.Seat `json:"b"`
}

// Response is the envelope for every server-to-client message
type Response struct {
	Key     string      `json:"key"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// PlayerInfo is the roster entry for a single player
type PlayerInfo struct {
	Name      string    `json:"name"`
	Seat      game.Seat `json:"seat"`
	Admin     bool      `json:"admin"`
	Connected bool      `json:"connected"`
}

// LobbyInfo is the lobbyUpdate payload
type LobbyInfo struct {
	Players   []PlayerInfo `json:"players"`
	You       int          `json:"you"`
	SeatCount int          `json:"seatCount"`
}

// GameInfo is the gameUpdate payload: the seat-scoped view of the game plus
// the cumulative team scores
type GameInfo struct {
	*game.PlayerView
	TeamScores []int `json:"teamScores"`
}

func newInvalidActionResponse(ctx string, err error) *Response {
	return &Response{
		Key:     KeyInvalidAction,
		Data:    err.Error(),
		Context: ctx,
	}
}
