package room

import (
	"github.com/sirupsen/logrus"

	"diloti-server/pkg/token"
)

// SessionIDLength is the length of the generated session identifiers
const SessionIDLength = 16

type createSession struct {
	config Config
	reply  chan createResult
}

type createResult struct {
	session *Session
	err     error
}

type lookupSession struct {
	id    string
	reply chan *Session
}

type sessionEnded struct {
	id string
}

// Registry tracks the live sessions by id.
// Like the sessions themselves, the registry is a single run loop owning its
// map; the exported methods go through the mailbox.
type Registry struct {
	sessions map[string]*Session
	mailbox  chan interface{}
}

// NewRegistry returns a new registry
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		mailbox:  make(chan interface{}, mailboxSize),
	}
}

// Start starts the registry run loop
func (r *Registry) Start() {
	go r.runLoop()
}

func (r *Registry) runLoop() {
	for req := range r.mailbox {
		switch q := req.(type) {
		case createSession:
			q.reply <- r.handleCreate(q.config)
		case lookupSession:
			q.reply <- r.sessions[q.id]
		case sessionEnded:
			logrus.WithField("session", q.id).Debug("session ended")
			delete(r.sessions, q.id)
		}
	}
}

// handleCreate spawns a new session under a fresh id, retrying on the off
// chance the generated id collides with a live one
func (r *Registry) handleCreate(config Config) createResult {
	var id string
	for {
		id = token.Generate(SessionIDLength)
		if _, taken := r.sessions[id]; !taken {
			break
		}
	}

	session, err := NewSession(id, config, r)
	if err != nil {
		return createResult{err: err}
	}

	r.sessions[id] = session
	session.Start()

	logrus.WithFields(logrus.Fields{
		"session":   id,
		"seatCount": config.SeatCount,
	}).Debug("session created")

	return createResult{session: session}
}

// CreateSession creates and starts a new session.
// It returns once the session's run loop is ready to take requests.
func (r *Registry) CreateSession(config Config) (*Session, error) {
	reply := make(chan createResult, 1)
	r.mailbox <- createSession{config: config, reply: reply}

	res := <-reply
	if res.err != nil {
		return nil, res.err
	}

	<-res.session.ready
	return res.session, nil
}

// Lookup returns the session with the given id, or nil
func (r *Registry) Lookup(id string) *Session {
	reply := make(chan *Session, 1)
	r.mailbox <- lookupSession{id: id, reply: reply}
	return <-reply
}

func (r *Registry) sessionEnded(id string) {
	r.mailbox <- sessionEnded{id: id}
}
