package engine

import (
	"fmt"
	"strings"
)

type ContextKind int

const (
	KindToutAtout ContextKind = iota
	KindSansAtout
	KindAtout
)

// GameContext is the trump regime of a deal. It is fixed once the deal starts.
type GameContext struct {
	kind  ContextKind
	trump Suit
}

func ToutAtout() GameContext { return GameContext{kind: KindToutAtout} }

func SansAtout() GameContext { return GameContext{kind: KindSansAtout} }

func Atout(s Suit) GameContext { return GameContext{kind: KindAtout, trump: s} }

func (g GameContext) Kind() ContextKind { return g.kind }

// TrumpSuit returns the designated trump, only set for Atout.
func (g GameContext) TrumpSuit() (Suit, bool) {
	if g.kind != KindAtout {
		return Heart, false
	}
	return g.trump, true
}

func (g GameContext) String() string {
	switch g.kind {
	case KindToutAtout:
		return "tout"
	case KindSansAtout:
		return "sans"
	case KindAtout:
		return "atout:" + g.trump.String()
	default:
		return "?"
	}
}

// ParseGameContext reads "tout", "sans", "atout:H" or a bare suit letter.
func ParseGameContext(s string) (GameContext, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "tout", "toutatout", "tout-atout":
		return ToutAtout(), nil
	case "sans", "sansatout", "sans-atout":
		return SansAtout(), nil
	}
	v = strings.TrimPrefix(v, "atout:")
	suit, err := ParseSuit(v)
	if err != nil {
		return GameContext{}, fmt.Errorf("game context %q: %w", s, err)
	}
	return Atout(suit), nil
}
