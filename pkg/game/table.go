package game

import (
	"diloti-server/pkg/deck"
)

// Seat identifies a player by their position around the table.
// Seat 0 is always the session admin.
type Seat int

// Declaration is a table entry built from a hand card and table cards.
// Each group sums to the declaration's value. The declaration is owned by the
// seat that created or last extended it.
type Declaration struct {
	Seat   Seat          `json:"seat"`
	Groups [][]deck.Card `json:"groups"`
}

// Value returns the declared value, the sum of the first group
func (d *Declaration) Value() int {
	sum := 0
	for _, card := range d.Groups[0] {
		sum += card.Rank
	}

	return sum
}

// IsGroup returns true when the declaration holds more than one group.
// Group declarations are indivisible: they cannot be raised or merged with
// loose cards.
func (d *Declaration) IsGroup() bool {
	return len(d.Groups) > 1
}

// Cards returns every card in the declaration
func (d *Declaration) Cards() []deck.Card {
	var cards []deck.Card
	for _, group := range d.Groups {
		cards = append(cards, group...)
	}

	return cards
}

// Equal returns true if the declarations hold the same groups for the same seat
func (d *Declaration) Equal(other *Declaration) bool {
	if d.Seat != other.Seat || len(d.Groups) != len(other.Groups) {
		return false
	}

	for i, group := range d.Groups {
		if len(group) != len(other.Groups[i]) {
			return false
		}

		for j, card := range group {
			if card != other.Groups[i][j] {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of the declaration
func (d *Declaration) Clone() *Declaration {
	groups := make([][]deck.Card, len(d.Groups))
	for i, group := range d.Groups {
		groups[i] = make([]deck.Card, len(group))
		copy(groups[i], group)
	}

	return &Declaration{
		Seat:   d.Seat,
		Groups: groups,
	}
}

func (d *Declaration) String() string {
	return FormatDeclaration(d)
}

// TableEntry is a single entry on the table: either a loose card or a declaration.
// Exactly one of the fields is set.
type TableEntry struct {
	Card        *deck.Card   `json:"card,omitempty"`
	Declaration *Declaration `json:"declaration,omitempty"`
}

// IsCard returns true if the entry is a loose card
func (e TableEntry) IsCard() bool {
	return e.Card != nil
}

// IsDeclaration returns true if the entry is a declaration
func (e TableEntry) IsDeclaration() bool {
	return e.Declaration != nil
}

// Value returns the value of the entry
func (e TableEntry) Value() int {
	if e.Card != nil {
		return e.Card.Rank
	}

	return e.Declaration.Value()
}

// Clone returns a deep copy of the entry
func (e TableEntry) Clone() TableEntry {
	if e.Card != nil {
		card := *e.Card
		return TableEntry{Card: &card}
	}

	return TableEntry{Declaration: e.Declaration.Clone()}
}

func cardEntry(card deck.Card) TableEntry {
	return TableEntry{Card: &card}
}

// Table is the ordered sequence of entries between the players
type Table []TableEntry

// AddCard appends a loose card to the table
func (t *Table) AddCard(card deck.Card) {
	*t = append(*t, cardEntry(card))
}

// AddDeclaration appends a declaration to the table
func (t *Table) AddDeclaration(d *Declaration) {
	*t = append(*t, TableEntry{Declaration: d})
}

// RemoveCard removes the specified loose card.
// Returns false if the card is not on the table.
func (t *Table) RemoveCard(card deck.Card) bool {
	for i, e := range *t {
		if e.Card != nil && *e.Card == card {
			*t = append((*t)[:i], (*t)[i+1:]...)
			return true
		}
	}

	return false
}

// RemoveDeclaration removes the specified declaration.
// Returns false if no equal declaration is on the table.
func (t *Table) RemoveDeclaration(d *Declaration) bool {
	for i, e := range *t {
		if e.Declaration != nil && e.Declaration.Equal(d) {
			*t = append((*t)[:i], (*t)[i+1:]...)
			return true
		}
	}

	return false
}

// RemoveCardWithValue removes the first loose card with the given value
func (t *Table) RemoveCardWithValue(value int) (deck.Card, bool) {
	for i, e := range *t {
		if e.Card != nil && e.Card.Rank == value {
			card := *e.Card
			*t = append((*t)[:i], (*t)[i+1:]...)
			return card, true
		}
	}

	return deck.Card{}, false
}

// RemoveEntryWithValue removes the first entry (card or declaration) with the given value
func (t *Table) RemoveEntryWithValue(value int) (TableEntry, bool) {
	for i, e := range *t {
		if e.Value() == value {
			entry := e
			*t = append((*t)[:i], (*t)[i+1:]...)
			return entry, true
		}
	}

	return TableEntry{}, false
}

// FindDeclarationBySeat returns the declaration owned by the seat, or nil
func (t Table) FindDeclarationBySeat(seat Seat) *Declaration {
	for _, e := range t {
		if e.Declaration != nil && e.Declaration.Seat == seat {
			return e.Declaration
		}
	}

	return nil
}

// CountCardsWithValue returns the number of loose cards with the given value
func (t Table) CountCardsWithValue(value int) int {
	count := 0
	for _, e := range t {
		if e.Card != nil && e.Card.Rank == value {
			count++
		}
	}

	return count
}

// HasValue returns true if any entry has the given value
func (t Table) HasValue(value int) bool {
	for _, e := range t {
		if e.Value() == value {
			return true
		}
	}

	return false
}

// Cards returns every card on the table, declarations included
func (t Table) Cards() []deck.Card {
	var cards []deck.Card
	for _, e := range t {
		if e.Card != nil {
			cards = append(cards, *e.Card)
		} else {
			cards = append(cards, e.Declaration.Cards()...)
		}
	}

	return cards
}

// RemoveAllCards empties the table and returns every card that was on it
func (t *Table) RemoveAllCards() []deck.Card {
	cards := t.Cards()
	*t = Table{}
	return cards
}

// Clone returns a deep copy of the table
func (t Table) Clone() Table {
	clone := make(Table, len(t))
	for i, e := range t {
		clone[i] = e.Clone()
	}

	return clone
}

func (t Table) String() string {
	return FormatTable(t)
}
