package deck

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
)

// rank constants. Aces are low in diloti.
const (
	Ace   = 1
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
)

// Card is an individual playing card.
// Cards are plain values so they can be compared with == and used as map keys.
type Card struct {
	Rank int
	Suit Suit
}

// IsFigure returns true for jacks, queens, and kings
func (c Card) IsFigure() bool {
	return c.Rank >= Jack
}

// String returns the canonical two-character token for the card: suit first,
// then rank, e.g. "S4", "HT", "DA". This form round-trips with CardFromString.
func (c Card) String() string {
	return fmt.Sprintf("%c%c", suitChar(c.Suit), rankChar(c.Rank))
}

func suitChar(s Suit) byte {
	switch s {
	case Spades:
		return 'S'
	case Clubs:
		return 'C'
	case Hearts:
		return 'H'
	case Diamonds:
		return 'D'
	}

	panic(fmt.Sprintf("unknown suit: %s", string(s)))
}

func rankChar(rank int) byte {
	switch rank {
	case Ace:
		return 'A'
	case Ten:
		return 'T'
	case Jack:
		return 'J'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		if rank >= 2 && rank <= 9 {
			return byte('0' + rank)
		}
	}

	panic(fmt.Sprintf("unknown rank: %d", rank))
}

// CardFromString parses a two-character card token.
// The token is suit then rank: suit in [scdh], rank in [a1-9tjqk]. Parsing is
// case-insensitive.
func CardFromString(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("card token must be two characters, got %q", s)
	}

	var suit Suit
	switch s[0] {
	case 's', 'S':
		suit = Spades
	case 'c', 'C':
		suit = Clubs
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	default:
		return Card{}, fmt.Errorf("unknown suit in card token %q", s)
	}

	var rank int
	switch s[1] {
	case 'a', 'A', '1':
		rank = Ace
	case 't', 'T':
		rank = Ten
	case 'j', 'J':
		rank = Jack
	case 'q', 'Q':
		rank = Queen
	case 'k', 'K':
		rank = King
	default:
		if s[1] >= '2' && s[1] <= '9' {
			rank = int(s[1] - '0')
		} else {
			return Card{}, fmt.Errorf("unknown rank in card token %q", s)
		}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardsFromString parses a whitespace-separated list of card tokens
func CardsFromString(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, field := range fields {
		card, err := CardFromString(field)
		if err != nil {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, nil
}

// CardsToString converts a slice of cards to a whitespace-separated token list
func CardsToString(cards []Card) string {
	tokens := make([]string, len(cards))
	for i, card := range cards {
		tokens[i] = card.String()
	}

	return strings.Join(tokens, " ")
}

// MarshalJSON encodes the card as its canonical token
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a card from its canonical token
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	card, err := CardFromString(s)
	if err != nil {
		return err
	}

	*c = card
	return nil
}
