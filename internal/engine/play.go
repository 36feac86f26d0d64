package engine

import "fmt"

// LegalCards lists the hand ids the rule accepts, in hand order.
func LegalCards(rule Rule, ctx GameContext, fold *Fold, hand *Hand) []int {
	out := []int{}
	for i, c := range hand.cards {
		if rule.IsPlayValid(ctx, c, fold, hand) {
			out = append(out, i)
		}
	}
	return out
}

// Play validates the card at id and, only when it is accepted, moves it from
// the hand to the fold. On error neither the hand nor the fold is changed.
func Play(rule Rule, ctx GameContext, fold *Fold, hand *Hand, id int) (Card, error) {
	card, err := hand.Peek(id)
	if err != nil {
		return Card{}, err
	}
	if fold.IsOver() {
		return Card{}, ErrFoldOver
	}
	if !rule.IsPlayValid(ctx, card, fold, hand) {
		return Card{}, fmt.Errorf("%w: %s under %s", ErrInvalidPlay, card, ctx)
	}
	if _, err := hand.Play(id); err != nil {
		return Card{}, err
	}
	fold.Push(card)
	return card, nil
}
