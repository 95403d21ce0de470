package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"diloti-server/internal/config"
	"diloti-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version    string
	registry   *room.Registry
	sendBuffer int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	registry := room.NewRegistry()
	registry.Start()

	this := &Mux{
		Router:     gmux.NewRouter(),
		version:    version,
		registry:   registry,
		sendBuffer: config.Instance().SendBuffer,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())
	r.Methods(http.MethodGet).Path("/session/{id:[A-Za-z0-9]{16}}/ws").Handler(this.getSessionIDWS())

	return this
}
