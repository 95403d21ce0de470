package mux

import (
	"net/http"

	"diloti-server/pkg/deck"
	"diloti-server/pkg/game"
	"diloti-server/pkg/room"
)

type postSessionRequest struct {
	SeatCount int               `json:"seatCount"`
	Debug     *postSessionDebug `json:"debug,omitempty"`
}

// postSessionDebug is an explicit starting deal using the textual encoding
type postSessionDebug struct {
	Hand  string `json:"hand"`
	Table string `json:"table"`
}

type postSessionResponse struct {
	SessionID string `json:"sessionId"`
}

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postSessionRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		config := room.Config{SeatCount: payload.SeatCount}
		payload.applyDebug(&config)

		session, err := m.registry.CreateSession(config)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusCreated, postSessionResponse{SessionID: session.ID()})
	}
}

// applyDebug fills in the debug deal. A deal that is incomplete, malformed,
// or not for a single-seat session is quietly dropped and the session starts
// from a random shuffle.
func (p *postSessionRequest) applyDebug(config *room.Config) {
	if p.Debug == nil || p.SeatCount != 1 {
		return
	}

	if p.Debug.Hand == "" || p.Debug.Table == "" {
		return
	}

	hand, err := deck.CardsFromString(p.Debug.Hand)
	if err != nil {
		return
	}

	table, err := game.ParseTable(p.Debug.Table)
	if err != nil {
		return
	}

	config.DebugHand = hand
	config.DebugTable = table
}
