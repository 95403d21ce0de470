package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"diloti-server/pkg/deck"
	"diloti-server/pkg/game"
)

// TerminateTimeout bounds how long a disconnect notification waits for the
// session's mailbox before it is dropped
const TerminateTimeout = 5 * time.Second

const mailboxSize = 256

// Registration errors
var (
	// ErrSessionFull is returned when every seat is taken
	ErrSessionFull = errors.New("the session is full")

	// ErrGameInProgress is returned when registering after the game started
	ErrGameInProgress = errors.New("cannot join while the game is in progress")

	// ErrReconnectUnsupported is returned for reconnect attempts
	ErrReconnectUnsupported = errors.New("reconnecting is not supported yet")

	// ErrSessionEnded is returned when the session's run loop has exited
	ErrSessionEnded = errors.New("the session has ended")
)

// Config describes a session to be created.
// DebugTable and DebugHand set up an explicit starting deal; they are only
// honored for single-seat sessions.
type Config struct {
	SeatCount  int
	Seed       int64
	DebugTable game.Table
	DebugHand  []deck.Card
}

func (c Config) isDebug() bool {
	return c.SeatCount == 1 && c.DebugTable != nil && len(c.DebugHand) > 0
}

type sessionState int

const (
	stateLobby sessionState = iota
	stateInGame
)

// player is a registered player. Index in Session.players is the player id
// used in lobby updates. Players are never removed, only disconnected.
type player struct {
	name   string
	seat   game.Seat
	regID  string
	sender Sender
}

func (p *player) connected() bool {
	return p.sender != nil
}

// requests serialized through the session mailbox

type registerResult struct {
	RegID string
	Err   error
}

type registerPlayer struct {
	sender Sender
	name   string
	reply  chan registerResult
}

type reconnectPlayer struct {
	sender Sender
	name   string
	reply  chan registerResult
}

type clientRequest struct {
	regID string
	msg   *ClientMessage
}

type connectionTerminated struct {
	regID string
}

// Session is a single game session. All state is owned by the run loop
// goroutine; the exported methods only talk to the mailbox, so no locks are
// needed.
type Session struct {
	id        string
	registry  *Registry
	seatCount int
	state     sessionState
	game      *game.Game
	players   []*player

	mailbox chan interface{}
	ready   chan struct{}
	done    chan struct{}
	log     logrus.FieldLogger
}

// NewSession returns a new session for the given config.
// The session does not process requests until Start is called.
func NewSession(id string, config Config, registry *Registry) (*Session, error) {
	var g *game.Game
	if config.isDebug() {
		g = game.NewDebug(config.DebugTable.Clone(), config.DebugHand)
	} else {
		var err error
		if g, err = game.New(config.SeatCount, config.Seed); err != nil {
			return nil, err
		}
	}

	return &Session{
		id:        id,
		registry:  registry,
		seatCount: config.SeatCount,
		state:     stateLobby,
		game:      g,
		mailbox:   make(chan interface{}, mailboxSize),
		ready:     make(chan struct{}),
		done:      make(chan struct{}),
		log:       logrus.WithField("session", id),
	}, nil
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Start starts the session run loop
func (s *Session) Start() {
	go s.runLoop()
}

// Done returns a channel that is closed when the session ends
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Register adds a player to the session and returns their registration id.
// The id must accompany every subsequent request for this player.
func (s *Session) Register(sender Sender, name string) (string, error) {
	return s.register(registerPlayer{sender: sender, name: name, reply: make(chan registerResult, 1)})
}

// Reconnect re-attaches a sender to a disconnected player
func (s *Session) Reconnect(sender Sender, name string) (string, error) {
	return s.register(reconnectPlayer{sender: sender, name: name, reply: make(chan registerResult, 1)})
}

func (s *Session) register(req interface{}) (string, error) {
	var reply chan registerResult
	switch r := req.(type) {
	case registerPlayer:
		reply = r.reply
	case reconnectPlayer:
		reply = r.reply
	}

	select {
	case s.mailbox <- req:
	case <-s.done:
		return "", ErrSessionEnded
	}

	select {
	case res := <-reply:
		return res.RegID, res.Err
	case <-s.done:
		return "", ErrSessionEnded
	}
}

// ClientRequest forwards a client message to the session
func (s *Session) ClientRequest(regID string, msg *ClientMessage) {
	select {
	case s.mailbox <- clientRequest{regID: regID, msg: msg}:
	case <-s.done:
	}
}

// ConnectionTerminated tells the session that the player's connection is gone.
// The call gives up after TerminateTimeout so a wedged session cannot block
// the connection adapter forever.
func (s *Session) ConnectionTerminated(regID string) {
	select {
	case s.mailbox <- connectionTerminated{regID: regID}:
	case <-s.done:
	case <-time.After(TerminateTimeout):
		s.log.WithField("regID", regID).Warn("dropping disconnect notification")
	}
}

func (s *Session) runLoop() {
	s.log.Debug("starting session run loop")
	close(s.ready)

	for {
		req := <-s.mailbox

		switch r := req.(type) {
		case registerPlayer:
			s.handleRegister(r)
		case reconnectPlayer:
			r.reply <- registerResult{Err: ErrReconnectUnsupported}
		case clientRequest:
			s.handleClientRequest(r)
		case connectionTerminated:
			s.handleConnectionTerminated(r)
		}

		// the session ends once everyone who joined is gone
		if len(s.players) > 0 && s.allDisconnected() {
			break
		}
	}

	s.log.Debug("terminating session run loop")
	close(s.done)

	if s.registry != nil {
		s.registry.sessionEnded(s.id)
	}
}

func (s *Session) allDisconnected() bool {
	for _, p := range s.players {
		if p.connected() {
			return false
		}
	}

	return true
}

func (s *Session) connectedCount() int {
	n := 0
	for _, p := range s.players {
		if p.connected() {
			n++
		}
	}

	return n
}

// playersReady returns true once every seat is filled and connected
func (s *Session) playersReady() bool {
	return s.connectedCount() == s.seatCount
}

func (s *Session) playerByRegID(regID string) *player {
	for _, p := range s.players {
		if p.regID == regID {
			return p
		}
	}

	return nil
}

func (s *Session) playerBySeat(seat game.Seat) *player {
	for _, p := range s.players {
		if p.seat == seat {
			return p
		}
	}

	return nil
}

func (s *Session) handleRegister(req registerPlayer) {
	if s.state != stateLobby {
		req.reply <- registerResult{Err: ErrGameInProgress}
		return
	}

	if len(s.players) >= s.seatCount {
		req.reply <- registerResult{Err: ErrSessionFull}
		return
	}

	name := req.name
	for s.nameTaken(name) {
		name += "_"
	}

	p := &player{
		name:   name,
		seat:   game.Seat(len(s.players)),
		regID:  uuid.New().String(),
		sender: req.sender,
	}
	s.players = append(s.players, p)

	s.log.WithFields(logrus.Fields{
		"name": name,
		"seat": p.seat,
	}).Debug("player registered")

	req.reply <- registerResult{RegID: p.regID}
	s.broadcastLobby()
}

func (s *Session) nameTaken(name string) bool {
	for _, p := range s.players {
		if p.name == name {
			return true
		}
	}

	return false
}

func (s *Session) handleConnectionTerminated(req connectionTerminated) {
	p := s.playerByRegID(req.regID)
	if p == nil {
		s.log.WithField("regID", req.regID).Warn("disconnect for unknown registration")
		return
	}

	s.markDisconnected(p)
	s.broadcastLobby()
}

func (s *Session) markDisconnected(p *player) {
	if p.sender == nil {
		return
	}

	p.sender = nil
	s.log.WithField("name", p.name).Debug("player disconnected")
}

func (s *Session) handleClientRequest(req clientRequest) {
	p := s.playerByRegID(req.regID)
	if p == nil || !p.connected() {
		s.log.WithField("regID", req.regID).Warn("request from unknown or disconnected registration")
		return
	}

	msg := req.msg
	switch msg.Action {
	case ActionSwapSeats:
		s.handleSwapSeats(p, msg)
	case ActionStartGame:
		s.handleStartGame(p)
	case ActionPlay:
		s.handlePlay(p, msg)
	default:
		s.log.WithField("action", msg.Action).Warn("unknown message")
	}
}

// admin commands are silently ignored when unauthorized or mistimed; the
// sender only gets a warning in the server log
func (s *Session) isAdmin(p *player) bool {
	return p.seat == 0
}

func (s *Session) handleSwapSeats(p *player, msg *ClientMessage) {
	if !s.isAdmin(p) {
		s.log.Warn("non-admin player attempted to swap seats, ignoring")
		return
	}

	if s.state != stateLobby {
		s.log.Warn("attempted to swap seats outside the lobby, ignoring")
		return
	}

	if !s.playersReady() {
		s.log.Warn("attempted to swap seats while players are not ready, ignoring")
		return
	}

	if msg.Swap == nil {
		s.log.Warn("swap message without seats, ignoring")
		return
	}

	p1 := s.playerBySeat(msg.Swap.A)
	p2 := s.playerBySeat(msg.Swap.B)
	if p1 == nil || p2 == nil {
		s.log.WithFields(logrus.Fields{
			"a": msg.Swap.A,
			"b": msg.Swap.B,
		}).Warn("swap references an empty seat, ignoring")
		return
	}

	p1.seat, p2.seat = p2.seat, p1.seat
	s.broadcastLobby()
}

func (s *Session) handleStartGame(p *player) {
	if !s.isAdmin(p) {
		s.log.Warn("non-admin player attempted to start game, ignoring")
		return
	}

	if !s.playersReady() {
		s.log.Warn("attempted to start game while players are not ready, ignoring")
		return
	}

	switch {
	case s.state == stateLobby:
		s.state = stateInGame
		s.broadcastGame()
	case s.game.State().IsGameDone():
		if err := s.game.NextGame(); err != nil {
			s.log.WithError(err).Error("could not start next game")
			return
		}

		s.broadcastGame()
	default:
		s.log.Warn("attempted to start game while one is in progress, ignoring")
	}
}

func (s *Session) handlePlay(p *player, msg *ClientMessage) {
	if s.state != stateInGame {
		s.log.Warn("player action outside a game, ignoring")
		return
	}

	if msg.Play == nil {
		s.log.Warn("play message without an action, ignoring")
		return
	}

	next, err := s.game.ApplyAction(p.seat, *msg.Play)
	if err != nil {
		if !p.sender.Send(newInvalidActionResponse(msg.Context, err)) {
			s.markDisconnected(p)
			s.broadcastLobby()
		}

		return
	}

	s.game = next
	if next.State().IsRoundDone() {
		if err := s.game.NewRound(); err != nil {
			s.log.WithError(err).Error("could not deal new round")
		}
	}

	s.broadcastGame()
}

func (s *Session) roster() []PlayerInfo {
	players := make([]PlayerInfo, len(s.players))
	for i, p := range s.players {
		players[i] = PlayerInfo{
			Name:      p.name,
			Seat:      p.seat,
			Admin:     p.seat == 0,
			Connected: p.connected(),
		}
	}

	return players
}

// broadcastLobby sends the roster to every connected player.
// A failed send marks that player disconnected and restarts the pass, so the
// remaining players always end up with the final roster.
func (s *Session) broadcastLobby() {
outer:
	for {
		players := s.roster()
		for i, p := range s.players {
			if !p.connected() {
				continue
			}

			info := &LobbyInfo{
				Players:   players,
				You:       i,
				SeatCount: s.seatCount,
			}

			if !p.sender.Send(&Response{Key: KeyLobbyUpdate, Data: info}) {
				s.markDisconnected(p)
				continue outer
			}
		}

		return
	}
}

// broadcastGame sends each connected player their view of the game. If any
// send fails the roster changed, so a lobby update follows.
func (s *Session) broadcastGame() {
	failed := false
	for _, p := range s.players {
		if !p.connected() {
			continue
		}

		info := &GameInfo{
			PlayerView: s.game.PlayerView(p.seat),
			TeamScores: s.game.TeamScores(),
		}

		if !p.sender.Send(&Response{Key: KeyGameUpdate, Data: info}) {
			s.markDisconnected(p)
			failed = true
		}
	}

	if failed {
		s.broadcastLobby()
	}
}
