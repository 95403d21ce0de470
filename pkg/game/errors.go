package game

import (
	"errors"
	"fmt"
)

// ErrNotPlayersTurn is returned when it's not the player's turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrNoAction is returned when a player action does not specify exactly one action kind
var ErrNoAction = errors.New("no action specified")

// ErrCardNotInHand happens when the player references a card they don't hold
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrCardNotOnTable happens when the player references a table card that isn't there
var ErrCardNotOnTable = errors.New("card is not on the table")

// ErrDeclarationNotOnTable happens when the player references a declaration that isn't there
var ErrDeclarationNotOnTable = errors.New("declaration is not on the table")

// ErrLayDownValueOnTable prevents laying down a card when a card or declaration with the
// same value is on the table
var ErrLayDownValueOnTable = errors.New("a card or declaration with the same value is on the table")

// ErrLayDownWithDeclaration prevents laying down a card while the player's own declaration
// is still on the table
var ErrLayDownWithDeclaration = errors.New("cannot lay down a card while your declaration is on the table")

// ErrMalformedEntry is returned when a client-supplied table entry does not hold
// exactly one of a card or a declaration, or references a declaration with an
// empty group
var ErrMalformedEntry = errors.New("malformed table entry")

// ErrEmptyDeclaration is an error for a declaration with no entries
var ErrEmptyDeclaration = errors.New("declaration is empty")

// ErrDeclarationFirstEntryNotCard requires the contributed hand card to lead the declaration
var ErrDeclarationFirstEntryNotCard = errors.New("the first entry of a declaration must be the hand card")

// ErrDeclarationGroupValues is an error when the declaration groups don't share one value
var ErrDeclarationGroupValues = errors.New("not all declaration groups have the same value")

// ErrDeclarationTooSmall requires a declaration to combine the hand card with at least one
// table entry
var ErrDeclarationTooSmall = errors.New("declaration needs more than one card")

// ErrNoMatchingHandCard is an error when the player has no card left to eventually capture
// the declaration
var ErrNoMatchingHandCard = errors.New("no card with the declared value left in hand")

// ErrRaiseGroupDeclaration prevents raising a declaration that already holds multiple groups
var ErrRaiseGroupDeclaration = errors.New("group declarations cannot be raised")

// ErrRaiseOwnDeclaration prevents raising the value of the player's own declaration
var ErrRaiseOwnDeclaration = errors.New("you may not raise your declaration")

// ErrCombineDeclarations prevents merging more than one declaration into a new one
var ErrCombineDeclarations = errors.New("cannot combine more than one declaration")

// ErrSecondDeclaration prevents a player with an open declaration from opening another
var ErrSecondDeclaration = errors.New("cannot open a new declaration while yours is on the table")

// ErrNotYourDeclaration prevents extending a declaration owned by someone else
var ErrNotYourDeclaration = errors.New("cannot act on a declaration other than your own")

// ErrGroupDeclarationCombined prevents merging a multi-group declaration with loose cards
var ErrGroupDeclarationCombined = errors.New("group declarations cannot be combined with other cards")

// ErrEmptyCapture is an error for a capture with no targets
var ErrEmptyCapture = errors.New("capture has no targets")

// ErrCaptureGroupValues is an error when a capture group doesn't sum to the hand card's value
var ErrCaptureGroupValues = errors.New("not all capture groups sum to the hand card's value")

// ErrFigureCapturesMultiple prevents a figure from capturing more than one card per group
var ErrFigureCapturesMultiple = errors.New("figures cannot capture multiple cards at once")

// ErrFigureCapturesDeclaration prevents a figure from capturing a declaration
var ErrFigureCapturesDeclaration = errors.New("figures cannot capture declarations")

// ErrTwoFigures is an error when two matching figures are on the table and both are targeted
var ErrTwoFigures = errors.New("when two matching figures are on the table, only one may be captured")

// ErrThreeFigures is an error when three matching figures are on the table and fewer than
// three are targeted
var ErrThreeFigures = errors.New("when three matching figures are on the table, all three must be captured")

// ErrInvalidFigureCapture is a catch-all for a figure capture that doesn't match the table
var ErrInvalidFigureCapture = errors.New("invalid figure capture")

// ErrRoundNotDone is an error when a new round is dealt before the hands are exhausted
var ErrRoundNotDone = errors.New("the round is not done")

// ErrGameNotDone is an error when a new game is started before the current one finished
var ErrGameNotDone = errors.New("the game is not done")

// DeclarationValueError is an error on a declared value outside 1 to 10
type DeclarationValueError int

func (d DeclarationValueError) Error() string {
	return fmt.Sprintf("declared value must be between 1 and 10, got %d", int(d))
}

// SeatCountError is an error on the number of seats in the game
type SeatCountError int

func (s SeatCountError) Error() string {
	return fmt.Sprintf("expected 1, 2, or 4 seats, got %d", int(s))
}
