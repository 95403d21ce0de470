package game

import (
	"errors"
	"fmt"
	"strings"

	"diloti-server/pkg/deck"
)

// Textual encoding for tables and declarations, used for debug deals and as
// the canonical round-trip form in tests. Cards are two-character tokens
// (suit then rank); a declaration owned by seat 1 with groups {S2 C3} and {H5}
// reads `1:[ S2 C3 ][ H5 ]:`.

// ErrBadTableString is an error for a table string that cannot be parsed
var ErrBadTableString = errors.New("malformed table string")

// ParseTable parses the textual encoding of a table
func ParseTable(s string) (Table, error) {
	tokens := strings.Fields(s)
	table := Table{}

	for len(tokens) > 0 {
		tok := tokens[0]

		if seat, ok := parseDeclStart(tok); ok {
			d, rest, err := parseDeclBody(seat, tokens[1:])
			if err != nil {
				return nil, err
			}

			table.AddDeclaration(d)
			tokens = rest
			continue
		}

		card, err := deck.CardFromString(tok)
		if err != nil {
			return nil, err
		}

		table.AddCard(card)
		tokens = tokens[1:]
	}

	return table, nil
}

// ParseDeclaration parses the textual encoding of a single declaration
func ParseDeclaration(s string) (*Declaration, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return nil, ErrBadTableString
	}

	seat, ok := parseDeclStart(tokens[0])
	if !ok {
		return nil, ErrBadTableString
	}

	d, rest, err := parseDeclBody(seat, tokens[1:])
	if err != nil {
		return nil, err
	}

	if len(rest) > 0 {
		return nil, ErrBadTableString
	}

	return d, nil
}

func parseDeclStart(tok string) (Seat, bool) {
	if len(tok) == 3 && tok[1] == ':' && tok[2] == '[' && tok[0] >= '0' && tok[0] <= '3' {
		return Seat(tok[0] - '0'), true
	}

	return 0, false
}

// parseDeclBody consumes tokens up to and including the closing "]:" and
// returns the remaining tokens
func parseDeclBody(seat Seat, tokens []string) (*Declaration, []string, error) {
	var groups [][]deck.Card
	var group []deck.Card

	for i, tok := range tokens {
		switch tok {
		case "][":
			groups = append(groups, group)
			group = nil
		case "]:":
			groups = append(groups, group)
			return &Declaration{Seat: seat, Groups: groups}, tokens[i+1:], nil
		default:
			card, err := deck.CardFromString(tok)
			if err != nil {
				return nil, nil, err
			}

			group = append(group, card)
		}
	}

	return nil, nil, ErrBadTableString
}

// FormatTable returns the textual encoding of a table
func FormatTable(t Table) string {
	parts := make([]string, len(t))
	for i, e := range t {
		if e.IsCard() {
			parts[i] = e.Card.String()
		} else {
			parts[i] = FormatDeclaration(e.Declaration)
		}
	}

	return strings.Join(parts, " ")
}

// FormatDeclaration returns the textual encoding of a declaration
func FormatDeclaration(d *Declaration) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:", d.Seat)
	for _, group := range d.Groups {
		sb.WriteString("[")
		for _, card := range group {
			sb.WriteString(" ")
			sb.WriteString(card.String())
		}
		sb.WriteString(" ]")
	}
	sb.WriteString(":")

	return sb.String()
}
