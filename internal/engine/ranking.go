package engine

import "fmt"

// Ranking gives each Symbol a strength, higher wins. The zero Ranking is
// the declaration order Seven < Eight < ... < Ace.
type Ranking [8]int

var (
	DeclarationOrder = Ranking{0, 1, 2, 3, 4, 5, 6, 7}

	// Belote trump order: 7 8 Q K 10 A 9 J.
	BeloteTrumpOrder = Ranking{
		Seven: 0, Eight: 1, Queen: 2, King: 3, Ten: 4, Ace: 5, Nine: 6, Jack: 7,
	}

	// Belote plain order: 7 8 9 J Q K 10 A.
	BelotePlainOrder = Ranking{
		Seven: 0, Eight: 1, Nine: 2, Jack: 3, Queen: 4, King: 5, Ten: 6, Ace: 7,
	}
)

func (r Ranking) Strength(s Symbol) int {
	if s < Seven || s > Ace {
		return -1
	}
	if r == (Ranking{}) {
		return int(s)
	}
	return r[s]
}

// ParseRanking maps a configuration name to a ranking.
func ParseRanking(name string) (Ranking, error) {
	switch name {
	case "", "declaration":
		return DeclarationOrder, nil
	case "belote-trump":
		return BeloteTrumpOrder, nil
	case "belote-plain":
		return BelotePlainOrder, nil
	default:
		return Ranking{}, fmt.Errorf("unknown ranking %q", name)
	}
}

// TrickWinner returns the fold position currently holding the trick, or -1
// for an empty fold. A trump beats any other suit; otherwise the highest
// card of the led suit wins.
func TrickWinner(ctx GameContext, fold *Fold, trumpOrder, plainOrder Ranking) int {
	if fold == nil || fold.Len() == 0 {
		return -1
	}
	cards := fold.cards
	trump, hasTrump := ctx.TrumpSuit()
	leadSuit := cards[0].Suit
	bestIdx := 0
	for i := 1; i < len(cards); i++ {
		c := cards[i]
		best := cards[bestIdx]

		if hasTrump {
			if c.Suit == trump && best.Suit != trump {
				bestIdx = i
				continue
			}
			if c.Suit != trump && best.Suit == trump {
				continue
			}
			if c.Suit == trump && best.Suit == trump {
				if trumpOrder.Strength(c.Symbol) > trumpOrder.Strength(best.Symbol) {
					bestIdx = i
				}
				continue
			}
		}

		if c.Suit == best.Suit {
			if plainOrder.Strength(c.Symbol) > plainOrder.Strength(best.Symbol) {
				bestIdx = i
			}
			continue
		}

		if best.Suit != leadSuit && c.Suit == leadSuit {
			bestIdx = i
		}
	}
	return bestIdx
}
