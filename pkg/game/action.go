package game

import (
	"diloti-server/pkg/deck"
)

// Action is a player action. Exactly one of the fields is set.
type Action struct {
	LayDown *LayDownAction `json:"layDown,omitempty"`
	Declare *DeclareAction `json:"declare,omitempty"`
	Capture *CaptureAction `json:"capture,omitempty"`
}

// LayDownAction moves a hand card to the table
type LayDownAction struct {
	Card deck.Card `json:"card"`
}

// DeclareAction builds or extends a declaration from a hand card and table entries.
// By convention, the first entry of the first group is the contributed hand card.
type DeclareAction struct {
	Entries [][]TableEntry `json:"entries"`
}

// CaptureAction captures table entries with a hand card.
// Each group must sum to the hand card's value.
type CaptureAction struct {
	HandCard deck.Card      `json:"handCard"`
	Entries  [][]TableEntry `json:"entries"`
}

// PerformedAction records an action the engine applied, including any cards it
// swept in beyond what the player selected.
type PerformedAction struct {
	Action      Action      `json:"action"`
	Seat        Seat        `json:"seat"`
	ForcedCards []deck.Card `json:"forcedCards,omitempty"`
	Xeri        bool        `json:"xeri"`
}

// Validate checks the action against a seat-scoped view of the game.
// It is side-effect free and safe to call from a client for optimistic feedback.
// It does not check that the referenced cards exist in the hand or on the table;
// that happens during apply.
func (a Action) Validate(view *PlayerView) error {
	if !view.IsMyTurn() {
		return ErrNotPlayersTurn
	}

	// a player with an open declaration may only capture or extend it
	ownDecl := view.Table.FindDeclarationBySeat(view.Seat)

	switch {
	case a.LayDown != nil:
		if ownDecl != nil {
			return ErrLayDownWithDeclaration
		}

		return validateLayDown(a.LayDown.Card, view.Table)
	case a.Capture != nil:
		return a.Capture.validate(view.Table)
	case a.Declare != nil:
		if ownDecl == nil {
			return a.Declare.validate(view.Hand)
		}

		return a.Declare.validateContinuation(ownDecl, view.Hand)
	}

	return ErrNoAction
}

// validateEntries rejects entries that could not have come from a real table.
// Entries arrive straight off the wire, so this must run before anything calls
// Value() on them.
func validateEntries(entries [][]TableEntry) error {
	for _, group := range entries {
		for _, e := range group {
			if e.IsCard() == e.IsDeclaration() {
				return ErrMalformedEntry
			}

			if !e.IsDeclaration() {
				continue
			}

			if len(e.Declaration.Groups) == 0 {
				return ErrMalformedEntry
			}

			for _, g := range e.Declaration.Groups {
				if len(g) == 0 {
					return ErrMalformedEntry
				}
			}
		}
	}

	return nil
}

func validateLayDown(card deck.Card, table Table) error {
	if table.HasValue(card.Rank) {
		return ErrLayDownValueOnTable
	}

	return nil
}

// Value returns the declared value, the sum of the first group
func (da *DeclareAction) Value() int {
	sum := 0
	for _, e := range da.Entries[0] {
		sum += e.Value()
	}

	return sum
}

// HandCard returns the contributed hand card (first entry of the first group)
func (da *DeclareAction) HandCard() deck.Card {
	return *da.Entries[0][0].Card
}

func (da *DeclareAction) sameValue() bool {
	value := da.Value()
	for _, group := range da.Entries[1:] {
		sum := 0
		for _, e := range group {
			sum += e.Value()
		}

		if sum != value {
			return false
		}
	}

	return true
}

func (da *DeclareAction) entryCount() int {
	count := 0
	for _, group := range da.Entries {
		count += len(group)
	}

	return count
}

func (da *DeclareAction) hasDeclaration() bool {
	for _, group := range da.Entries {
		for _, e := range group {
			if e.IsDeclaration() {
				return true
			}
		}
	}

	return false
}

// singleDeclaration returns the first referenced declaration and how many the
// action references in total (capped at two)
func (da *DeclareAction) singleDeclaration() (*Declaration, int) {
	var first *Declaration
	count := 0
	for _, group := range da.Entries {
		for _, e := range group {
			if e.IsDeclaration() {
				if first == nil {
					first = e.Declaration
				}

				if count++; count == 2 {
					return first, count
				}
			}
		}
	}

	return first, count
}

func (da *DeclareAction) validateBase(hand []deck.Card) error {
	if len(da.Entries) == 0 || len(da.Entries[0]) == 0 {
		return ErrEmptyDeclaration
	}

	if err := validateEntries(da.Entries); err != nil {
		return err
	}

	if !da.Entries[0][0].IsCard() {
		return ErrDeclarationFirstEntryNotCard
	}

	if !da.sameValue() {
		return ErrDeclarationGroupValues
	}

	if da.entryCount() < 2 {
		return ErrDeclarationTooSmall
	}

	value := da.Value()
	if value < 1 || value > 10 {
		return DeclarationValueError(value)
	}

	// the player must keep a card that can eventually capture the declaration
	handCard := da.HandCard()
	for _, c := range hand {
		if c != handCard && c.Rank == value {
			return nil
		}
	}

	return ErrNoMatchingHandCard
}

func (da *DeclareAction) validate(hand []deck.Card) error {
	if err := da.validateBase(hand); err != nil {
		return err
	}

	switch d, n := da.singleDeclaration(); {
	case n > 1:
		return ErrCombineDeclarations
	case n == 1 && d.Value() != da.Value() && d.IsGroup():
		return ErrRaiseGroupDeclaration
	}

	return nil
}

// validateContinuation enforces the rules for a player who already owns a
// declaration: they may add to it, but never raise it or open a second one.
func (da *DeclareAction) validateContinuation(own *Declaration, hand []deck.Card) error {
	if err := da.validateBase(hand); err != nil {
		return err
	}

	d, n := da.singleDeclaration()
	switch {
	case n == 0:
		return ErrSecondDeclaration
	case n > 1:
		return ErrCombineDeclarations
	case !d.Equal(own):
		return ErrNotYourDeclaration
	case d.Value() != da.Value():
		return ErrRaiseOwnDeclaration
	}

	return nil
}

// Value returns the capture value, the rank of the hand card
func (ca *CaptureAction) Value() int {
	return ca.HandCard.Rank
}

func (ca *CaptureAction) sameValue() bool {
	value := ca.Value()
	for _, group := range ca.Entries {
		sum := 0
		for _, e := range group {
			sum += e.Value()
		}

		if sum != value {
			return false
		}
	}

	return true
}

func (ca *CaptureAction) validate(table Table) error {
	if len(ca.Entries) == 0 || len(ca.Entries[0]) == 0 {
		return ErrEmptyCapture
	}

	if err := validateEntries(ca.Entries); err != nil {
		return err
	}

	if !ca.sameValue() {
		return ErrCaptureGroupValues
	}

	if ca.HandCard.IsFigure() {
		return ca.validateFigure(table)
	}

	return nil
}

// validateFigure enforces the figure obligations: one identical figure per
// group, no declarations, and the 1/2/3-on-table matrix.
func (ca *CaptureAction) validateFigure(table Table) error {
	for _, group := range ca.Entries {
		if len(group) > 1 {
			return ErrFigureCapturesMultiple
		}

		for _, e := range group {
			if e.IsDeclaration() {
				return ErrFigureCapturesDeclaration
			}
		}
	}

	captured := len(ca.Entries)
	onTable := table.CountCardsWithValue(ca.Value())

	switch {
	case captured == 1 && (onTable == 1 || onTable == 2):
		return nil
	case captured == 2 && onTable == 2:
		return ErrTwoFigures
	case (captured == 1 || captured == 2) && onTable == 3:
		// forcing the remaining figures in would be counter-intuitive for such
		// a special case, so the action is rejected instead
		return ErrThreeFigures
	case captured == 3 && onTable == 3:
		return nil
	}

	return ErrInvalidFigureCapture
}
