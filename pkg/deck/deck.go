package deck

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents an ordered collection of cards.
// The order matters: Draw() takes from the top.
type Deck struct {
	Cards []Card
	seed  int64
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// Empty returns a deck with no cards
func Empty() *Deck {
	return &Deck{
		Cards: []Card{},
		seed:  -1,
	}
}

// FromCards returns a deck holding the given cards in order
func FromCards(cards []Card) *Deck {
	d := Empty()
	d.Cards = append(d.Cards, cards...)
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range []Suit{Spades, Clubs, Hearts, Diamonds} {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards.
// You can manually specify the seed for a deterministic order, or pass 0 to derive one
// from the clock.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.seed = seed
	rng := rand.New(rand.NewSource(seed))

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// HasCard returns true if the deck contains the specified card
func (d *Deck) HasCard(card Card) bool {
	for _, c := range d.Cards {
		if c == card {
			return true
		}
	}

	return false
}

// RemoveCard removes the specified card from the deck.
// Returns false if the card was not found.
func (d *Deck) RemoveCard(card Card) bool {
	for i, c := range d.Cards {
		if c == card {
			d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			return true
		}
	}

	return false
}

// AddCard adds a card to the bottom of the deck
func (d *Deck) AddCard(card Card) {
	d.Cards = append(d.Cards, card)
}

// Clone returns a deep copy of the deck
func (d *Deck) Clone() *Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)

	return &Deck{
		Cards: cards,
		seed:  d.seed,
	}
}

func (d *Deck) String() string {
	return CardsToString(d.Cards)
}
