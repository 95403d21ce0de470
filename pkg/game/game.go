package game

import (
	"diloti-server/pkg/deck"
)

const (
	handSize      = 6
	tableDealSize = 4
)

// Phase is the coarse state of a game
type Phase string

// Phase constants
const (
	// PhaseNextTurn means the game is waiting for the current seat to act
	PhaseNextTurn Phase = "next-turn"
	// PhaseRoundDone means the hands are empty but the deck is not; a new round must be dealt
	PhaseRoundDone Phase = "round-done"
	// PhaseGameDone means both hands and deck are exhausted and the scores are final
	PhaseGameDone Phase = "game-done"
)

// State is the game state visible to every seat
type State struct {
	Phase  Phase        `json:"phase"`
	Turn   Seat         `json:"turn"`
	Sheets []ScoreSheet `json:"sheets,omitempty"`
}

// IsRoundDone returns true if the current round is over
func (s State) IsRoundDone() bool {
	return s.Phase == PhaseRoundDone
}

// IsGameDone returns true if the game is over
func (s State) IsGameDone() bool {
	return s.Phase == PhaseGameDone
}

// Game is a single hand of the card game.
// The zero value is not usable; use New or NewDebug.
type Game struct {
	seatCount        int
	table            Table
	mainDeck         *deck.Deck
	hands            [][]deck.Card
	teams            []*Team
	lastTeamCaptured int
	firstSeat        Seat
	state            State
	lastAction       *PerformedAction
}

// New returns a new game with a shuffled deck and dealt hands.
// seatCount must be 1, 2, or 4. A seed of 0 shuffles from the clock.
func New(seatCount int, seed int64) (*Game, error) {
	if seatCount != 1 && seatCount != 2 && seatCount != 4 {
		return nil, SeatCountError(seatCount)
	}

	teamCount := 2
	if seatCount == 1 {
		teamCount = 1
	}

	teams := make([]*Team, teamCount)
	for i := range teams {
		teams[i] = &Team{}
	}

	d := deck.New()
	d.Shuffle(seed)

	g := &Game{
		seatCount: seatCount,
		table:     Table{},
		mainDeck:  d,
		hands:     make([][]deck.Card, seatCount),
		teams:     teams,
		firstSeat: 0,
		state:     State{Phase: PhaseNextTurn, Turn: 0},
	}

	if err := g.dealHands(); err != nil {
		return nil, err
	}

	if err := g.dealTable(); err != nil {
		return nil, err
	}

	return g, nil
}

// NewDebug returns a single-seat game with an explicit table and hand and an
// empty main deck. Useful with the textual deal encoding.
func NewDebug(table Table, hand []deck.Card) *Game {
	// the hand arrives from the wire; deal our own copy
	return &Game{
		seatCount: 1,
		table:     table,
		mainDeck:  deck.Empty(),
		hands:     [][]deck.Card{deck.FromCards(hand).Cards},
		teams:     []*Team{{}},
		firstSeat: 0,
		state:     State{Phase: PhaseNextTurn, Turn: 0},
	}
}

// SeatCount returns the number of seats
func (g *Game) SeatCount() int {
	return g.seatCount
}

// State returns the current game state
func (g *Game) State() State {
	return g.state
}

// LastAction returns the last performed action, or nil
func (g *Game) LastAction() *PerformedAction {
	return g.lastAction
}

// Scores returns the current score sheet of every team
func (g *Game) Scores() []ScoreSheet {
	sheets := make([]ScoreSheet, len(g.teams))
	for i, team := range g.teams {
		sheets[i] = team.Captures.Score()
	}

	return sheets
}

// TeamScores returns the cumulative score of every team across games
func (g *Game) TeamScores() []int {
	scores := make([]int, len(g.teams))
	for i, team := range g.teams {
		scores[i] = team.Score
	}

	return scores
}

// PlayerView returns the seat-scoped snapshot of the game
func (g *Game) PlayerView(seat Seat) *PlayerView {
	handSizes := make([]int, g.seatCount)
	for i, hand := range g.hands {
		handSizes[i] = len(hand)
	}

	hand := make([]deck.Card, len(g.hands[seat]))
	copy(hand, g.hands[seat])

	return &PlayerView{
		Seat:       seat,
		Table:      g.table.Clone(),
		Hand:       hand,
		State:      g.state,
		LastAction: g.lastAction,
		DeckSize:   g.mainDeck.CardsLeft(),
		HandSizes:  handSizes,
	}
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	hands := make([][]deck.Card, len(g.hands))
	for i, hand := range g.hands {
		hands[i] = make([]deck.Card, len(hand))
		copy(hands[i], hand)
	}

	teams := make([]*Team, len(g.teams))
	for i, team := range g.teams {
		teams[i] = team.Clone()
	}

	clone := *g
	clone.table = g.table.Clone()
	clone.mainDeck = g.mainDeck.Clone()
	clone.hands = hands
	clone.teams = teams

	return &clone
}

// ApplyAction validates and applies an action for a seat.
// The receiver is never mutated: the whole game is cloned, the action is
// applied to the clone, and the clone is returned. On any error the clone is
// discarded, so a failed apply can never leave an inconsistent state behind.
func (g *Game) ApplyAction(seat Seat, action Action) (*Game, error) {
	if err := action.Validate(g.PlayerView(seat)); err != nil {
		return nil, err
	}

	clone := g.Clone()
	performed, err := clone.apply(seat, action)
	if err != nil {
		return nil, err
	}

	clone.lastAction = performed
	clone.nextTurn()

	return clone, nil
}

func (g *Game) apply(seat Seat, action Action) (*PerformedAction, error) {
	switch {
	case action.LayDown != nil:
		return g.applyLayDown(seat, action)
	case action.Declare != nil:
		return g.applyDeclare(seat, action)
	case action.Capture != nil:
		return g.applyCapture(seat, action)
	}

	return nil, ErrNoAction
}

func (g *Game) applyLayDown(seat Seat, action Action) (*PerformedAction, error) {
	if !g.removeHandCard(seat, action.LayDown.Card) {
		return nil, ErrCardNotInHand
	}

	g.table.AddCard(action.LayDown.Card)

	return &PerformedAction{
		Action: action,
		Seat:   seat,
	}, nil
}

func (g *Game) applyCapture(seat Seat, action Action) (*PerformedAction, error) {
	ca := action.Capture
	if !g.removeHandCard(seat, ca.HandCard) {
		return nil, ErrCardNotInHand
	}

	captured := []deck.Card{ca.HandCard}
	for _, group := range ca.Entries {
		for _, e := range group {
			switch {
			case e.IsCard():
				if !g.table.RemoveCard(*e.Card) {
					return nil, ErrCardNotOnTable
				}

				captured = append(captured, *e.Card)
			case e.IsDeclaration():
				if !g.table.RemoveDeclaration(e.Declaration) {
					return nil, ErrDeclarationNotOnTable
				}

				captured = append(captured, e.Declaration.Cards()...)
			}
		}
	}

	// a numeric capture sweeps every remaining same-value entry off the table.
	// figures are exempt: with two matching figures on the table only one may
	// be taken, so the second must stay behind.
	var forced []deck.Card
	if !ca.HandCard.IsFigure() {
		for {
			entry, ok := g.table.RemoveEntryWithValue(ca.Value())
			if !ok {
				break
			}

			if entry.IsCard() {
				forced = append(forced, *entry.Card)
			} else {
				forced = append(forced, entry.Declaration.Cards()...)
			}
		}
	}

	captured = append(captured, forced...)

	xeri := len(g.table) == 0
	g.updateCaptures(seat, captured, xeri)

	return &PerformedAction{
		Action:      action,
		Seat:        seat,
		ForcedCards: forced,
		Xeri:        xeri,
	}, nil
}

func (g *Game) applyDeclare(seat Seat, action Action) (*PerformedAction, error) {
	da := action.Declare

	var groups [][]deck.Card
	for i, entries := range da.Entries {
		var cards []deck.Card
		for j, e := range entries {
			switch {
			case i == 0 && j == 0:
				// the hand card leads the first group
				if !g.removeHandCard(seat, *e.Card) {
					return nil, ErrCardNotInHand
				}

				cards = append(cards, *e.Card)
			case e.IsCard():
				if !g.table.RemoveCard(*e.Card) {
					return nil, ErrCardNotOnTable
				}

				cards = append(cards, *e.Card)
			case !e.Declaration.IsGroup():
				// plain declarations dissolve into the group being built
				if !g.table.RemoveDeclaration(e.Declaration) {
					return nil, ErrDeclarationNotOnTable
				}

				cards = append(cards, e.Declaration.Groups[0]...)
			default:
				// group declarations are indivisible
				if len(entries) != 1 {
					return nil, ErrGroupDeclarationCombined
				}

				if !g.table.RemoveDeclaration(e.Declaration) {
					return nil, ErrDeclarationNotOnTable
				}

				groups = append(groups, e.Declaration.Groups...)
			}
		}

		// empty when the group was a group declaration
		if len(cards) > 0 {
			groups = append(groups, cards)
		}
	}

	// a new declaration magnetically absorbs every loose same-value table card
	var forced []deck.Card
	if !da.hasDeclaration() {
		for {
			card, ok := g.table.RemoveCardWithValue(da.Value())
			if !ok {
				break
			}

			forced = append(forced, card)
			groups = append(groups, []deck.Card{card})
		}
	}

	g.table.AddDeclaration(&Declaration{
		Seat:   seat,
		Groups: groups,
	})

	return &PerformedAction{
		Action:      action,
		Seat:        seat,
		ForcedCards: forced,
	}, nil
}

func (g *Game) removeHandCard(seat Seat, card deck.Card) bool {
	hand := g.hands[seat]
	for i, c := range hand {
		if c == card {
			g.hands[seat] = append(hand[:i], hand[i+1:]...)
			return true
		}
	}

	return false
}

func (g *Game) teamIndex(seat Seat) int {
	if g.seatCount == 1 {
		return 0
	}

	return int(seat) % 2
}

func (g *Game) updateCaptures(seat Seat, cards []deck.Card, isXeri bool) {
	idx := g.teamIndex(seat)
	g.teams[idx].Captures.AddCards(cards, isXeri)
	g.lastTeamCaptured = idx
}

// finalizeCaptures sweeps the remaining table cards to the team that captured last
func (g *Game) finalizeCaptures() {
	cards := g.table.RemoveAllCards()
	g.teams[g.lastTeamCaptured].Captures.AddCards(cards, false)
}

func (g *Game) nextTurn() {
	next := Seat((int(g.state.Turn) + 1) % g.seatCount)
	if len(g.hands[next]) > 0 {
		g.state = State{Phase: PhaseNextTurn, Turn: next}
		return
	}

	if g.mainDeck.CardsLeft() > 0 {
		g.state = State{Phase: PhaseRoundDone}
		return
	}

	g.finalizeCaptures()

	sheets := make([]ScoreSheet, len(g.teams))
	for i, team := range g.teams {
		sheets[i] = team.UpdateScore()
	}

	g.state = State{Phase: PhaseGameDone, Sheets: sheets}
}

// NewRound deals a fresh set of hands from the remaining deck and resumes play
// at the first seat
func (g *Game) NewRound() error {
	if !g.state.IsRoundDone() {
		return ErrRoundNotDone
	}

	if err := g.dealHands(); err != nil {
		return err
	}

	g.state = State{Phase: PhaseNextTurn, Turn: g.firstSeat}
	return nil
}

// NextGame starts a fresh hand: new shuffle, new deal, the first seat rotates
// by one, and the cumulative team scores carry over
func (g *Game) NextGame() error {
	if !g.state.IsGameDone() {
		return ErrGameNotDone
	}

	g.firstSeat = Seat((int(g.firstSeat) + 1) % g.seatCount)
	g.table = Table{}
	g.mainDeck = deck.New()
	g.mainDeck.Shuffle(0)
	g.lastTeamCaptured = 0
	g.lastAction = nil
	g.state = State{Phase: PhaseNextTurn, Turn: g.firstSeat}

	if err := g.dealHands(); err != nil {
		return err
	}

	return g.dealTable()
}

func (g *Game) dealHands() error {
	for i := 0; i < handSize; i++ {
		for seat := 0; seat < g.seatCount; seat++ {
			card, err := g.mainDeck.Draw()
			if err != nil {
				return err
			}

			g.hands[seat] = append(g.hands[seat], card)
		}
	}

	return nil
}

func (g *Game) dealTable() error {
	for i := 0; i < tableDealSize; i++ {
		card, err := g.mainDeck.Draw()
		if err != nil {
			return err
		}

		g.table.AddCard(card)
	}

	return nil
}

// PlayerView is a seat-scoped snapshot of the game.
// It contains only what the seat is allowed to see: their own hand, the table,
// and the sizes of everything else.
type PlayerView struct {
	Seat       Seat             `json:"seat"`
	Table      Table            `json:"table"`
	Hand       []deck.Card      `json:"hand"`
	State      State            `json:"state"`
	LastAction *PerformedAction `json:"lastAction,omitempty"`
	DeckSize   int              `json:"deckSize"`
	HandSizes  []int            `json:"handSizes"`
}

// IsMyTurn returns true if the view's seat is the current seat
func (v *PlayerView) IsMyTurn() bool {
	return v.State.Phase == PhaseNextTurn && v.State.Turn == v.Seat
}

// CardInHand returns true if the seat holds the card
func (v *PlayerView) CardInHand(card deck.Card) bool {
	for _, c := range v.Hand {
		if c == card {
			return true
		}
	}

	return false
}
