package game

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"diloti-server/pkg/deck"
)

func mustTable(t *testing.T, s string) Table {
	t.Helper()
	table, err := ParseTable(s)
	assert.NoError(t, err)
	return table
}

func mustHand(t *testing.T, s string) []deck.Card {
	t.Helper()
	hand, err := deck.CardsFromString(s)
	assert.NoError(t, err)
	return hand
}

func card(t *testing.T, s string) deck.Card {
	t.Helper()
	c, err := deck.CardFromString(s)
	assert.NoError(t, err)
	return c
}

func layDown(c deck.Card) Action {
	return Action{LayDown: &LayDownAction{Card: c}}
}

func captureSingle(handCard, target deck.Card) Action {
	return Action{Capture: &CaptureAction{
		HandCard: handCard,
		Entries:  [][]TableEntry{{cardEntry(target)}},
	}}
}

func TestNew(t *testing.T) {
	g, err := New(2, 42)
	assert.NoError(t, err)
	assert.NotNil(t, g)
	assert.Equal(t, 2, g.SeatCount())
	assert.Equal(t, PhaseNextTurn, g.State().Phase)
	assert.Equal(t, Seat(0), g.State().Turn)
	assert.Equal(t, 6, len(g.hands[0]))
	assert.Equal(t, 6, len(g.hands[1]))
	assert.Equal(t, 4, len(g.table))
	assert.Equal(t, 36, g.mainDeck.CardsLeft())
	assert.Equal(t, 2, len(g.teams))
}

func TestNew_seatCounts(t *testing.T) {
	for _, n := range []int{1, 2, 4} {
		g, err := New(n, 1)
		assert.NoError(t, err)
		assert.Equal(t, n, g.SeatCount())
	}

	for _, n := range []int{0, 3, 5, 8} {
		g, err := New(n, 1)
		assert.Nil(t, g)
		assert.Error(t, err)
	}

	assert.EqualError(t, SeatCountError(3), "expected 1, 2, or 4 seats, got 3")
}

func TestNew_teamCounts(t *testing.T) {
	g, _ := New(1, 1)
	assert.Equal(t, 1, len(g.teams))

	g, _ = New(4, 1)
	assert.Equal(t, 2, len(g.teams))
	assert.Equal(t, 0, g.teamIndex(0))
	assert.Equal(t, 1, g.teamIndex(1))
	assert.Equal(t, 0, g.teamIndex(2))
	assert.Equal(t, 1, g.teamIndex(3))
}

func TestNewDebug(t *testing.T) {
	hand := mustHand(t, "D5 D9 C3 C9")
	g := NewDebug(mustTable(t, "S4 HT H9"), hand)
	assert.Equal(t, 1, g.SeatCount())
	assert.Equal(t, 0, g.mainDeck.CardsLeft())
	assert.Equal(t, 3, len(g.table))
	assert.Equal(t, 4, len(g.hands[0]))

	// the game must not alias the caller's slice
	hand[0] = card(t, "SK")
	assert.Equal(t, card(t, "D5"), g.hands[0][0])
}

func TestGame_applyActionDoesNotMutateReceiver(t *testing.T) {
	g := NewDebug(mustTable(t, "S4 HT H9"), mustHand(t, "D5 D9 C3 C9"))

	next, err := g.ApplyAction(0, layDown(card(t, "C3")))
	assert.NoError(t, err)
	assert.NotNil(t, next)

	assert.Equal(t, 3, len(g.table))
	assert.Equal(t, 4, len(g.hands[0]))
	assert.Nil(t, g.LastAction())

	assert.Equal(t, 4, len(next.table))
	assert.Equal(t, 3, len(next.hands[0]))
	assert.NotNil(t, next.LastAction())
}

func TestGame_turnLegality(t *testing.T) {
	g, err := New(2, 7)
	assert.NoError(t, err)

	action := layDown(g.hands[1][0])
	next, err := g.ApplyAction(1, action)
	assert.Nil(t, next)
	assert.Equal(t, ErrNotPlayersTurn, err)
}

func TestGame_layDown(t *testing.T) {
	g := NewDebug(mustTable(t, "S4 HT"), mustHand(t, "D5 D4 C3"))

	// value already on the table
	next, err := g.ApplyAction(0, layDown(card(t, "D4")))
	assert.Nil(t, next)
	assert.Equal(t, ErrLayDownValueOnTable, err)

	// card not in hand
	next, err = g.ApplyAction(0, layDown(card(t, "S9")))
	assert.Nil(t, next)
	assert.Equal(t, ErrCardNotInHand, err)

	next, err = g.ApplyAction(0, layDown(card(t, "D5")))
	assert.NoError(t, err)
	assert.Equal(t, "S4 HT D5", FormatTable(next.table))
}

func TestGame_captureSingle(t *testing.T) {
	g := NewDebug(mustTable(t, "S4 HT H9"), mustHand(t, "D4 D9 C3 C9"))

	next, err := g.ApplyAction(0, captureSingle(card(t, "D4"), card(t, "S4")))
	assert.NoError(t, err)
	assert.Equal(t, "HT H9", FormatTable(next.table))

	pa := next.LastAction()
	assert.Equal(t, Seat(0), pa.Seat)
	assert.False(t, pa.Xeri)
	assert.Empty(t, pa.ForcedCards)
	assert.Equal(t, 2, len(next.teams[0].Captures))
}

func TestGame_captureGroupSum(t *testing.T) {
	g := NewDebug(mustTable(t, "S4 H5 C2 H7"), mustHand(t, "D9 C9 S3"))

	// {S4 H5} and {C2 H7} both sum to nine
	action := Action{Capture: &CaptureAction{
		HandCard: card(t, "D9"),
		Entries: [][]TableEntry{
			{cardEntry(card(t, "S4")), cardEntry(card(t, "H5"))},
			{cardEntry(card(t, "C2")), cardEntry(card(t, "H7"))},
		},
	}}

	next, err := g.ApplyAction(0, action)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(next.table))
	assert.True(t, next.LastAction().Xeri)
	assert.Equal(t, 5, len(next.teams[0].Captures))
}

func TestGame_captureBadGroupSum(t *testing.T) {
	g := NewDebug(mustTable(t, "S4 H5"), mustHand(t, "D9 C8"))

	action := Action{Capture: &CaptureAction{
		HandCard: card(t, "C8"),
		Entries:  [][]TableEntry{{cardEntry(card(t, "S4")), cardEntry(card(t, "H5"))}},
	}}

	_, err := g.ApplyAction(0, action)
	assert.Equal(t, ErrCaptureGroupValues, err)
}

func TestGame_captureForcedSweep(t *testing.T) {
	g := NewDebug(mustTable(t, "S4 H5 D5 HT"), mustHand(t, "C5 C9"))

	next, err := g.ApplyAction(0, captureSingle(card(t, "C5"), card(t, "H5")))
	assert.NoError(t, err)

	// the other five is swept in with the capture
	assert.Equal(t, "S4 HT", FormatTable(next.table))
	assert.Equal(t, []deck.Card{card(t, "D5")}, next.LastAction().ForcedCards)
	assert.Equal(t, 3, len(next.teams[0].Captures))
}

func TestGame_captureFigureNoSweep(t *testing.T) {
	g := NewDebug(mustTable(t, "SK HK S3"), mustHand(t, "CK C9"))

	next, err := g.ApplyAction(0, captureSingle(card(t, "CK"), card(t, "SK")))
	assert.NoError(t, err)

	// the second king stays behind
	assert.Equal(t, "HK S3", FormatTable(next.table))
	assert.Empty(t, next.LastAction().ForcedCards)
}

func TestGame_captureTwoFigures(t *testing.T) {
	g := NewDebug(mustTable(t, "SK HK S3"), mustHand(t, "CK C9"))

	action := Action{Capture: &CaptureAction{
		HandCard: card(t, "CK"),
		Entries: [][]TableEntry{
			{cardEntry(card(t, "SK"))},
			{cardEntry(card(t, "HK"))},
		},
	}}

	_, err := g.ApplyAction(0, action)
	assert.Equal(t, ErrTwoFigures, err)
}

func TestGame_captureThreeFigures(t *testing.T) {
	g := NewDebug(mustTable(t, "SK HK DK S3"), mustHand(t, "CK C9"))

	// fewer than all three is rejected
	_, err := g.ApplyAction(0, captureSingle(card(t, "CK"), card(t, "SK")))
	assert.Equal(t, ErrThreeFigures, err)

	action := Action{Capture: &CaptureAction{
		HandCard: card(t, "CK"),
		Entries: [][]TableEntry{
			{cardEntry(card(t, "SK"))},
			{cardEntry(card(t, "HK"))},
			{cardEntry(card(t, "DK"))},
		},
	}}

	next, err := g.ApplyAction(0, action)
	assert.NoError(t, err)
	assert.Equal(t, "S3", FormatTable(next.table))
}

func TestGame_captureFigureRejections(t *testing.T) {
	g := NewDebug(mustTable(t, "SK S3 HT"), mustHand(t, "CK C9"))

	// figures cannot capture multiple cards in one group
	action := Action{Capture: &CaptureAction{
		HandCard: card(t, "CK"),
		Entries:  [][]TableEntry{{cardEntry(card(t, "S3")), cardEntry(card(t, "HT"))}},
	}}
	_, err := g.ApplyAction(0, action)
	assert.Equal(t, ErrFigureCapturesMultiple, err)
}

func TestGame_captureDeclaration(t *testing.T) {
	table := mustTable(t, "0:[ S2 C3 ][ H5 ]: HT")
	g := NewDebug(table, mustHand(t, "D5 C9"))

	d := table.FindDeclarationBySeat(0)
	assert.NotNil(t, d)

	action := Action{Capture: &CaptureAction{
		HandCard: card(t, "D5"),
		Entries:  [][]TableEntry{{{Declaration: d}}},
	}}

	next, err := g.ApplyAction(0, action)
	assert.NoError(t, err)
	assert.Equal(t, "HT", FormatTable(next.table))
	assert.Equal(t, 4, len(next.teams[0].Captures))
}

func TestGame_malformedEntries(t *testing.T) {
	emptyDecl := &Declaration{Seat: 1}
	emptyGroupDecl := &Declaration{Seat: 1, Groups: [][]deck.Card{{}}}

	tests := []struct {
		name   string
		action Action
	}{
		{
			name: "capture empty entry",
			action: Action{Capture: &CaptureAction{
				HandCard: card(t, "D5"),
				Entries:  [][]TableEntry{{{}}},
			}},
		},
		{
			name: "capture card and declaration in one entry",
			action: Action{Capture: &CaptureAction{
				HandCard: card(t, "D5"),
				Entries: [][]TableEntry{{
					{Card: &deck.Card{Rank: 5, Suit: deck.Spades}, Declaration: emptyDecl},
				}},
			}},
		},
		{
			name: "capture declaration without groups",
			action: Action{Capture: &CaptureAction{
				HandCard: card(t, "D5"),
				Entries:  [][]TableEntry{{{Declaration: emptyDecl}}},
			}},
		},
		{
			name: "capture declaration with an empty group",
			action: Action{Capture: &CaptureAction{
				HandCard: card(t, "D5"),
				Entries:  [][]TableEntry{{{Declaration: emptyGroupDecl}}},
			}},
		},
		{
			name: "declare empty entry",
			action: Action{Declare: &DeclareAction{
				Entries: [][]TableEntry{{cardEntry(card(t, "D5")), {}}},
			}},
		},
		{
			name: "declare declaration without groups",
			action: Action{Declare: &DeclareAction{
				Entries: [][]TableEntry{{cardEntry(card(t, "D5")), {Declaration: emptyDecl}}},
			}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := NewDebug(mustTable(t, "S4 HT"), mustHand(t, "D5 C5 C9"))

			_, err := g.ApplyAction(0, test.action)
			assert.Equal(t, ErrMalformedEntry, err)
		})
	}
}

func TestGame_declareMagnetism(t *testing.T) {
	g := NewDebug(mustTable(t, "S4 HT H9"), mustHand(t, "D5 D9 C3 C9"))

	// declaring nine from D5+S4 drags the loose H9 into the declaration
	action := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{{cardEntry(card(t, "D5")), cardEntry(card(t, "S4"))}},
	}}

	next, err := g.ApplyAction(0, action)
	assert.NoError(t, err)
	assert.Equal(t, []deck.Card{card(t, "H9")}, next.LastAction().ForcedCards)

	d := next.table.FindDeclarationBySeat(0)
	assert.NotNil(t, d)
	assert.Equal(t, 9, d.Value())
	assert.True(t, d.IsGroup())
	assert.Equal(t, "HT 0:[ D5 S4 ][ H9 ]:", FormatTable(next.table))
}

func TestGame_declareRejections(t *testing.T) {
	g := NewDebug(mustTable(t, "S4 HT H9"), mustHand(t, "D5 D9 C3 C9"))

	tests := []struct {
		name    string
		entries [][]TableEntry
		err     error
	}{
		{
			name:    "empty",
			entries: nil,
			err:     ErrEmptyDeclaration,
		},
		{
			name: "uneven group sums",
			entries: [][]TableEntry{
				{cardEntry(card(t, "D5")), cardEntry(card(t, "S4"))},
				{cardEntry(card(t, "C3"))},
			},
			err: ErrDeclarationGroupValues,
		},
		{
			name:    "hand card alone",
			entries: [][]TableEntry{{cardEntry(card(t, "D9"))}},
			err:     ErrDeclarationTooSmall,
		},
		{
			name:    "no matching hand card left",
			entries: [][]TableEntry{{cardEntry(card(t, "C3")), cardEntry(card(t, "S4"))}},
			err:     ErrNoMatchingHandCard,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := g.ApplyAction(0, Action{Declare: &DeclareAction{Entries: test.entries}})
			assert.Equal(t, test.err, err)
		})
	}
}

func TestGame_declareValueBounds(t *testing.T) {
	g := NewDebug(mustTable(t, "S8 HT"), mustHand(t, "D5 C4 D4"))

	// five plus eight is out of range
	action := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{{cardEntry(card(t, "D5")), cardEntry(card(t, "S8"))}},
	}}

	_, err := g.ApplyAction(0, action)
	assert.EqualError(t, err, "declared value must be between 1 and 10, got 13")
}

func TestGame_declareContinuation(t *testing.T) {
	g := NewDebug(mustTable(t, "S4 S3 H9 C6"), mustHand(t, "D5 D9 C9 H2 S9"))

	declare := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{{cardEntry(card(t, "D5")), cardEntry(card(t, "S4"))}},
	}}
	g2, err := g.ApplyAction(0, declare)
	assert.NoError(t, err)

	d := g2.table.FindDeclarationBySeat(0)
	assert.NotNil(t, d)

	// laying down is forbidden while the declaration is open
	_, err = g2.ApplyAction(0, layDown(card(t, "H2")))
	assert.Equal(t, ErrLayDownWithDeclaration, err)

	// opening a second declaration is forbidden
	second := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{{cardEntry(card(t, "C6")), cardEntry(card(t, "S3"))}},
	}}
	_, err = g2.ApplyAction(0, second)
	assert.Equal(t, ErrSecondDeclaration, err)

	// adding a same-value group from the hand is allowed
	extend := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{
			{cardEntry(card(t, "S9"))},
			{{Declaration: d}},
		},
	}}
	g3, err := g2.ApplyAction(0, extend)
	assert.NoError(t, err)

	d3 := g3.table.FindDeclarationBySeat(0)
	assert.NotNil(t, d3)
	assert.Equal(t, 9, d3.Value())
	assert.Equal(t, 3, len(d3.Groups))
	assert.Equal(t, "S3 C6 0:[ S9 ][ D5 S4 ][ H9 ]:", FormatTable(g3.table))

}

func TestGame_declareContinuationRejections(t *testing.T) {
	table := mustTable(t, "0:[ S2 C3 ]: 1:[ H2 D3 ]: D8")
	g := NewDebug(table, mustHand(t, "D1 C6 D6 S5 H5"))

	own := table.FindDeclarationBySeat(0)
	other := table.FindDeclarationBySeat(1)

	// raising your own declaration
	raise := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{{cardEntry(card(t, "D1")), {Declaration: own}}},
	}}
	_, err := g.ApplyAction(0, raise)
	assert.Equal(t, ErrRaiseOwnDeclaration, err)

	// extending someone else's declaration while yours is open
	extend := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{{cardEntry(card(t, "S5"))}, {{Declaration: other}}},
	}}
	_, err = g.ApplyAction(0, extend)
	assert.Equal(t, ErrNotYourDeclaration, err)

	// merging both declarations into a new one
	combine := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{
			{cardEntry(card(t, "S5"))},
			{{Declaration: own}},
			{{Declaration: other}},
		},
	}}
	_, err = g.ApplyAction(0, combine)
	assert.Equal(t, ErrCombineDeclarations, err)
}

func TestGame_declareRaise(t *testing.T) {
	table := mustTable(t, "1:[ S2 C5 ]: HT")
	g := NewDebug(table, mustHand(t, "D2 C9 D9"))

	d := table.FindDeclarationBySeat(1)

	// raising a plain declaration from seven to nine
	action := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{{cardEntry(card(t, "D2")), {Declaration: d}}},
	}}

	next, err := g.ApplyAction(0, action)
	assert.NoError(t, err)

	raised := next.table.FindDeclarationBySeat(0)
	assert.NotNil(t, raised)
	assert.Equal(t, 9, raised.Value())
	assert.Nil(t, next.table.FindDeclarationBySeat(1))
}

func TestGame_declareRaiseGroupRejected(t *testing.T) {
	table := mustTable(t, "1:[ S2 C5 ][ H7 ]: HT")
	g := NewDebug(table, mustHand(t, "D2 C9 D9"))

	d := table.FindDeclarationBySeat(1)
	assert.True(t, d.IsGroup())

	action := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{{cardEntry(card(t, "D2")), {Declaration: d}}},
	}}

	_, err := g.ApplyAction(0, action)
	assert.Equal(t, ErrRaiseGroupDeclaration, err)
}

func TestGame_declareGroupCombinedRejected(t *testing.T) {
	table := mustTable(t, "1:[ S3 C4 ][ D7 ]: S2 HT")
	g := NewDebug(table, mustHand(t, "C9 D9"))

	d := table.FindDeclarationBySeat(1)

	// a group declaration sharing a group with a loose card never passes
	// validation, but apply still guards against it
	action := Action{Declare: &DeclareAction{
		Entries: [][]TableEntry{
			{cardEntry(card(t, "C9"))},
			{{Declaration: d}, cardEntry(card(t, "S2"))},
		},
	}}

	_, err := g.Clone().apply(0, action)
	assert.Equal(t, ErrGroupDeclarationCombined, err)
}

// collectCards gathers every card in the game for the conservation check
func collectCards(g *Game) []string {
	var all []deck.Card
	all = append(all, g.mainDeck.Cards...)
	for _, hand := range g.hands {
		all = append(all, hand...)
	}
	all = append(all, g.table.Cards()...)
	for _, team := range g.teams {
		for _, c := range team.Captures {
			all = append(all, c.Card)
		}
	}

	tokens := make([]string, len(all))
	for i, c := range all {
		tokens[i] = c.String()
	}
	sort.Strings(tokens)

	return tokens
}

// greedyAction picks a legal action for the current seat: capture when the
// table offers a match, lay down otherwise
func greedyAction(g *Game, seat Seat) Action {
	hand := g.hands[seat]
	for _, c := range hand {
		if !g.table.HasValue(c.Rank) {
			return layDown(c)
		}
	}

	for _, c := range hand {
		if !g.table.HasValue(c.Rank) {
			continue
		}

		if c.IsFigure() {
			n := g.table.CountCardsWithValue(c.Rank)
			entries := make([][]TableEntry, 0, n)
			matched := 0
			for _, e := range g.table {
				if e.IsCard() && e.Card.Rank == c.Rank {
					entries = append(entries, []TableEntry{e})
					matched++
				}
			}

			if n == 2 {
				entries = entries[:1]
			}

			return Action{Capture: &CaptureAction{HandCard: c, Entries: entries}}
		}

		for _, e := range g.table {
			if e.Value() == c.Rank {
				return Action{Capture: &CaptureAction{HandCard: c, Entries: [][]TableEntry{{e}}}}
			}
		}
	}

	// unreachable: a card either matches the table or it doesn't
	panic("no playable action")
}

func TestGame_fullGameConservation(t *testing.T) {
	g, err := New(2, 12345)
	assert.NoError(t, err)

	want := collectCards(g)
	assert.Equal(t, 52, len(want))

	for rounds := 0; ; rounds++ {
		assert.Less(t, rounds, 10)

		for g.State().Phase == PhaseNextTurn {
			seat := g.State().Turn
			next, err := g.ApplyAction(seat, greedyAction(g, seat))
			assert.NoError(t, err)

			g = next

			// once the game is done the capture piles have been folded into
			// the score sheets, so only the sheet totals can be checked
			if !g.State().IsGameDone() {
				assert.Equal(t, want, collectCards(g))
			}
		}

		if g.State().IsGameDone() {
			break
		}

		assert.True(t, g.State().IsRoundDone())
		assert.NoError(t, g.NewRound())
	}

	sheets := g.State().Sheets
	assert.Equal(t, 2, len(sheets))
	assert.Equal(t, 52, sheets[0].NumCards+sheets[1].NumCards)

	// aces, ten of diamonds, and two of clubs always score
	total := sheets[0].Score + sheets[1].Score
	assert.GreaterOrEqual(t, total, 4+2+1)
}

func TestGame_newRound(t *testing.T) {
	g, err := New(1, 99)
	assert.NoError(t, err)

	assert.Equal(t, ErrRoundNotDone, g.NewRound())

	for g.State().Phase == PhaseNextTurn {
		next, err := g.ApplyAction(0, greedyAction(g, 0))
		assert.NoError(t, err)
		g = next
	}

	assert.True(t, g.State().IsRoundDone())
	assert.Equal(t, ErrGameNotDone, g.NextGame())

	assert.NoError(t, g.NewRound())
	assert.Equal(t, PhaseNextTurn, g.State().Phase)
	assert.Equal(t, Seat(0), g.State().Turn)
	assert.Equal(t, 6, len(g.hands[0]))
}

func TestGame_nextGame(t *testing.T) {
	g, err := New(2, 4)
	assert.NoError(t, err)

	assert.Equal(t, ErrGameNotDone, g.NextGame())

	for !g.State().IsGameDone() {
		for g.State().Phase == PhaseNextTurn {
			seat := g.State().Turn
			next, err := g.ApplyAction(seat, greedyAction(g, seat))
			assert.NoError(t, err)
			g = next
		}

		if g.State().IsRoundDone() {
			assert.NoError(t, g.NewRound())
		}
	}

	scores := g.TeamScores()
	assert.Equal(t, scores[0]+scores[1], g.State().Sheets[0].Score+g.State().Sheets[1].Score)

	assert.NoError(t, g.NextGame())
	assert.Equal(t, PhaseNextTurn, g.State().Phase)
	assert.Equal(t, Seat(1), g.State().Turn)
	assert.Equal(t, 6, len(g.hands[0]))
	assert.Equal(t, 4, len(g.table))
	assert.Equal(t, scores, g.TeamScores())
	assert.Empty(t, g.teams[0].Captures)
	assert.Nil(t, g.LastAction())
}

func TestGame_playerView(t *testing.T) {
	g, err := New(2, 8)
	assert.NoError(t, err)

	view := g.PlayerView(1)
	assert.Equal(t, Seat(1), view.Seat)
	assert.Equal(t, 6, len(view.Hand))
	assert.Equal(t, []int{6, 6}, view.HandSizes)
	assert.Equal(t, 36, view.DeckSize)
	assert.False(t, view.IsMyTurn())
	assert.True(t, g.PlayerView(0).IsMyTurn())
	assert.True(t, view.CardInHand(view.Hand[0]))

	// mutating the view must not touch the game
	view.Hand[0] = deck.Card{Rank: deck.Ace, Suit: deck.Spades}
	view.Table.AddCard(deck.Card{Rank: 5, Suit: deck.Hearts})
	assert.Equal(t, 4, len(g.table))
}
