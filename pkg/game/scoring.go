package game

import (
	"diloti-server/pkg/deck"
)

const (
	// MostCardsScore is awarded to the team that collects more than half the deck
	MostCardsScore = 4

	// XeriScore is awarded for each capture that cleared the table
	XeriScore = 10

	totalCards = 52
)

// CardValue returns the points a captured card is worth on its own
func CardValue(c deck.Card) int {
	switch {
	case c.Rank == deck.Ace:
		return 1
	case c.Rank == deck.Ten && c.Suit == deck.Diamonds:
		return 2
	case c.Rank == 2 && c.Suit == deck.Clubs:
		return 1
	}

	return 0
}

// Capture is a single captured card, marked if it cleared the table
type Capture struct {
	Card deck.Card `json:"card"`
	Xeri bool      `json:"xeri"`
}

// Captures is the ordered pile of cards a team captured during a game
type Captures []Capture

// AddCards appends captured cards to the pile. If the capture cleared the
// table, the first card is marked as the xeri card.
func (c *Captures) AddCards(cards []deck.Card, isXeri bool) {
	for i, card := range cards {
		*c = append(*c, Capture{
			Card: card,
			Xeri: isXeri && i == 0,
		})
	}
}

// Score folds the pile into a score sheet
func (c Captures) Score() ScoreSheet {
	sheet := ScoreSheet{ScoreCards: []deck.Card{}}
	for _, capture := range c {
		sheet.addCapture(capture)
	}

	return sheet
}

// Clone returns a deep copy
func (c Captures) Clone() Captures {
	clone := make(Captures, len(c))
	copy(clone, c)
	return clone
}

// ScoreSheet summarizes a team's score for a single game
type ScoreSheet struct {
	NumCards   int         `json:"numCards"`
	NumXeres   int         `json:"numXeres"`
	ScoreCards []deck.Card `json:"scoreCards"`
	Score      int         `json:"score"`
}

// HasTheCards returns true if the team captured more than half the deck
func (ss ScoreSheet) HasTheCards() bool {
	return ss.NumCards > totalCards/2
}

func (ss *ScoreSheet) addCapture(capture Capture) {
	if capture.Xeri {
		ss.NumXeres++
		ss.Score += XeriScore
	}

	ss.NumCards++
	if ss.NumCards == totalCards/2+1 {
		ss.Score += MostCardsScore
	}

	if v := CardValue(capture.Card); v > 0 {
		ss.ScoreCards = append(ss.ScoreCards, capture.Card)
		ss.Score += v
	}
}

// Team is a scoring unit. In four-seat games, seats of the same parity share a
// team; in one- and two-seat games each seat is its own team.
type Team struct {
	Captures Captures `json:"captures"`
	Score    int      `json:"score"`
}

// UpdateScore folds the current captures into the running score and resets
// the pile for the next game
func (t *Team) UpdateScore() ScoreSheet {
	sheet := t.Captures.Score()
	t.Score += sheet.Score
	t.Captures = Captures{}
	return sheet
}

// Clone returns a deep copy
func (t *Team) Clone() *Team {
	return &Team{
		Captures: t.Captures.Clone(),
		Score:    t.Score,
	}
}
