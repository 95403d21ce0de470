package room

import (
	"github.com/gorilla/websocket"
)

// Sender delivers a message to a connected player without blocking.
// Send returns false when the message could not be queued; the session treats
// that as a disconnect.
type Sender interface {
	Send(msg interface{}) bool
}

// Client is a player connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, sendBuffer int) *Client {
	return &Client{
		Conn:  conn,
		send:  make(chan interface{}, sendBuffer),
		Close: make(chan string),
	}
}

// Send queues a message for the web client.
// Returns false if the client's buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel with the queued messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}
