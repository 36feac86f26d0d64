package engine

import "fmt"

// Rule decides whether a card may be played. Implementations are pure: the
// fold and hand are only read, so a rejected play can be retried freely.
// The set of rules is closed to NoRule and DefaultRule.
type Rule interface {
	IsPlayValid(ctx GameContext, card Card, fold *Fold, hand *Hand) bool
	Name() string
	sealed()
}

// NoRule accepts every play, including cards the player does not hold.
type NoRule struct{}

func (NoRule) IsPlayValid(GameContext, Card, *Fold, *Hand) bool { return true }

func (NoRule) Name() string { return "none" }

func (NoRule) sealed() {}

// DefaultRule enforces follow-suit and the trump obligations of an Atout
// deal. SansAtout and ToutAtout deals only require the card to be held.
type DefaultRule struct {
	TrumpOrder Ranking
	PlainOrder Ranking
}

func (DefaultRule) Name() string { return "default" }

func (DefaultRule) sealed() {}

func (r DefaultRule) IsPlayValid(ctx GameContext, card Card, fold *Fold, hand *Hand) bool {
	if hand == nil || !hand.Contains(card) {
		return false
	}
	trump, ok := ctx.TrumpSuit()
	if !ok {
		return true
	}
	if fold == nil {
		return true
	}
	led, err := fold.MainSuit()
	if err != nil {
		return true
	}

	if hand.ContainsSuit(led) {
		if card.Suit != led {
			return false
		}
		if led == trump {
			return r.raisesTrump(trump, card, fold, hand)
		}
		return true
	}

	if hand.ContainsSuit(trump) {
		if card.Suit != trump {
			return r.PartnerIsMaster(ctx, fold, fold.Len())
		}
		return r.raisesTrump(trump, card, fold, hand)
	}
	return true
}

// raisesTrump checks a trump card goes over every trump already in the fold.
// Playing under is tolerated only when no held trump could go over.
func (r DefaultRule) raisesTrump(trump Suit, card Card, fold *Fold, hand *Hand) bool {
	best := -1
	for _, c := range fold.cards {
		if c.Suit == trump {
			if s := r.TrumpOrder.Strength(c.Symbol); s > best {
				best = s
			}
		}
	}
	if best < 0 {
		return true
	}
	if r.TrumpOrder.Strength(card.Symbol) > best {
		return true
	}
	for _, c := range hand.cards {
		if c.Suit == trump && r.TrumpOrder.Strength(c.Symbol) > best {
			return false
		}
	}
	return true
}

// Winner is the fold position currently holding the trick.
func (r DefaultRule) Winner(ctx GameContext, fold *Fold) int {
	return TrickWinner(ctx, fold, r.TrumpOrder, r.PlainOrder)
}

// PartnerIsMaster reports whether the partner of the player about to play at
// fold position seat currently holds the trick. Partners sit two positions
// apart; when the partner has not played yet the answer is false.
func (r DefaultRule) PartnerIsMaster(ctx GameContext, fold *Fold, seat int) bool {
	if fold == nil {
		return false
	}
	partner := seat - 2
	if partner < 0 || partner >= fold.Len() {
		return false
	}
	return r.Winner(ctx, fold) == partner
}

// RuleByName builds a rule from configuration. Orders only apply to the
// default rule.
func RuleByName(name string, trumpOrder, plainOrder Ranking) (Rule, error) {
	switch name {
	case "none", "no", "norule":
		return NoRule{}, nil
	case "", "default":
		return DefaultRule{TrumpOrder: trumpOrder, PlainOrder: plainOrder}, nil
	default:
		return nil, fmt.Errorf("unknown rule %q", name)
	}
}
