package bots

import (
	"fmt"
	"math/rand"

	"github.com/samsja/belote-libre-v2/internal/engine"
)

// Bot picks the hand id of the card to play. The fold and hand must only be
// read.
type Bot interface {
	ChooseCard(ctx engine.GameContext, fold *engine.Fold, hand *engine.Hand) int
}

// FirstCardBot always offers its first card, whatever the rule says.
type FirstCardBot struct{}

func (FirstCardBot) ChooseCard(engine.GameContext, *engine.Fold, *engine.Hand) int {
	return 0
}

type EasyBot struct {
	Rule engine.Rule
	RNG  *rand.Rand
}

func NewEasy(rule engine.Rule, seed int64) *EasyBot {
	return &EasyBot{Rule: rule, RNG: rand.New(rand.NewSource(seed))}
}

func (b *EasyBot) ChooseCard(ctx engine.GameContext, fold *engine.Fold, hand *engine.Hand) int {
	legal := engine.LegalCards(b.Rule, ctx, fold, hand)
	if len(legal) == 0 {
		if hand.Len() == 0 {
			return 0
		}
		return b.RNG.Intn(hand.Len())
	}
	return legal[b.RNG.Intn(len(legal))]
}

// NormalBot leads its strongest card, takes the fold with the cheapest
// winning card when it can and otherwise sheds its weakest card.
type NormalBot struct {
	Rule       engine.Rule
	TrumpOrder engine.Ranking
	PlainOrder engine.Ranking
}

func NewNormal(rule engine.Rule, rules engine.Rules) *NormalBot {
	return &NormalBot{Rule: rule, TrumpOrder: rules.TrumpOrder, PlainOrder: rules.PlainOrder}
}

func (b *NormalBot) ChooseCard(ctx engine.GameContext, fold *engine.Fold, hand *engine.Hand) int {
	legal := engine.LegalCards(b.Rule, ctx, fold, hand)
	if len(legal) == 0 {
		return 0
	}
	cards := hand.Cards()
	if fold.Len() == 0 {
		best := legal[0]
		for _, id := range legal {
			if b.strength(ctx, cards[id]) > b.strength(ctx, cards[best]) {
				best = id
			}
		}
		return best
	}

	partnerHolds := fold.Len() >= 2 &&
		engine.TrickWinner(ctx, fold, b.TrumpOrder, b.PlainOrder) == fold.Len()-2
	if !partnerHolds {
		bestWinning := -1
		for _, id := range legal {
			if !b.winsIfPlayed(ctx, fold, cards[id]) {
				continue
			}
			if bestWinning < 0 || b.strength(ctx, cards[id]) < b.strength(ctx, cards[bestWinning]) {
				bestWinning = id
			}
		}
		if bestWinning >= 0 {
			return bestWinning
		}
	}

	lowest := legal[0]
	for _, id := range legal {
		if b.strength(ctx, cards[id]) < b.strength(ctx, cards[lowest]) {
			lowest = id
		}
	}
	return lowest
}

func (b *NormalBot) strength(ctx engine.GameContext, c engine.Card) int {
	if trump, ok := ctx.TrumpSuit(); ok && c.Suit == trump {
		return 100 + b.TrumpOrder.Strength(c.Symbol)
	}
	return b.PlainOrder.Strength(c.Symbol)
}

func (b *NormalBot) winsIfPlayed(ctx engine.GameContext, fold *engine.Fold, card engine.Card) bool {
	next := engine.NewFoldOf(append(fold.Cards(), card)...)
	return engine.TrickWinner(ctx, next, b.TrumpOrder, b.PlainOrder) == fold.Len()
}

// New builds a bot by name: "first", "easy" or "normal".
func New(kind string, rule engine.Rule, rules engine.Rules, seed int64) (Bot, error) {
	switch kind {
	case "first":
		return FirstCardBot{}, nil
	case "easy":
		return NewEasy(rule, seed), nil
	case "", "normal":
		return NewNormal(rule, rules), nil
	default:
		return nil, fmt.Errorf("unknown bot %q", kind)
	}
}

// Table builds one bot per seat from their names.
func Table(kinds []string, rule engine.Rule, rules engine.Rules, seed int64) ([]Bot, error) {
	if len(kinds) != rules.Players {
		return nil, fmt.Errorf("need %d bots, got %d", rules.Players, len(kinds))
	}
	out := make([]Bot, 0, len(kinds))
	for i, k := range kinds {
		b, err := New(k, rule, rules, seed+int64(i)*10)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
