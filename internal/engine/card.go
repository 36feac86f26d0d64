package engine

import (
	"errors"
	"fmt"
	"strings"
)

type Suit int

type Symbol int

const (
	Heart Suit = iota
	Diamond
	Club
	Spade
)

const (
	Seven Symbol = iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits and Symbols list every value in declaration order.
var (
	Suits   = []Suit{Heart, Diamond, Club, Spade}
	Symbols = []Symbol{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

var errBadCard = errors.New("invalid card notation")

func (s Suit) String() string {
	switch s {
	case Heart:
		return "H"
	case Diamond:
		return "D"
	case Club:
		return "C"
	case Spade:
		return "S"
	default:
		return "?"
	}
}

func (s Symbol) String() string {
	switch s {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

type Card struct {
	Suit   Suit
	Symbol Symbol
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Symbol.String(), c.Suit.String())
}

// ParseSuit accepts the one-letter suit shortcut (H, D, C, S).
func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(s) {
	case "H":
		return Heart, nil
	case "D":
		return Diamond, nil
	case "C":
		return Club, nil
	case "S":
		return Spade, nil
	default:
		return Heart, fmt.Errorf("%w: suit %q", errBadCard, s)
	}
}

// ParseSymbol accepts 7, 8, 9, 10, J, Q, K and A.
func ParseSymbol(s string) (Symbol, error) {
	switch strings.ToUpper(s) {
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	default:
		return Seven, fmt.Errorf("%w: symbol %q", errBadCard, s)
	}
}

// ParseCard reads the suit-first shortcut notation, e.g. "D10" or "HJ".
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", errBadCard, s)
	}
	suit, err := ParseSuit(s[:1])
	if err != nil {
		return Card{}, err
	}
	sym, err := ParseSymbol(s[1:])
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Symbol: sym}, nil
}

// MustParseCard is ParseCard for literals known to be valid.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseCards parses a space separated list of cards.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		out = append(out, MustParseCard(f))
	}
	return out
}
