package engine

import "fmt"

// Rules parameterizes a deal.
type Rules struct {
	Players     int
	HandSize    int
	DealPattern []int
	// MaxRetries bounds the invalid choices a player may make for one play.
	MaxRetries int
	TrumpOrder Ranking
	PlainOrder Ranking
}

// ClassicPreset ranks every suit Seven to Ace, trump included.
func ClassicPreset() Rules {
	return Rules{
		Players:     4,
		HandSize:    8,
		DealPattern: []int{3, 2, 3},
		MaxRetries:  8,
		TrumpOrder:  DeclarationOrder,
		PlainOrder:  DeclarationOrder,
	}
}

// BelotePreset uses the Belote card strengths: J 9 A 10 K Q 8 7 in trump,
// A 10 K Q J 9 8 7 elsewhere.
func BelotePreset() Rules {
	r := ClassicPreset()
	r.TrumpOrder = BeloteTrumpOrder
	r.PlainOrder = BelotePlainOrder
	return r
}

func (r Rules) Validate() error {
	if r.Players != MaxFoldCards {
		return fmt.Errorf("belote is played by %d players, got %d", MaxFoldCards, r.Players)
	}
	if r.HandSize*r.Players != MaxDeckCards {
		return fmt.Errorf("hands of %d do not exhaust a %d card deck", r.HandSize, MaxDeckCards)
	}
	total := 0
	for _, p := range r.DealPattern {
		if p <= 0 {
			return fmt.Errorf("deal packet must be positive, got %d", p)
		}
		total += p
	}
	if len(r.DealPattern) > 0 && total != r.HandSize {
		return fmt.Errorf("deal pattern %v does not add up to %d", r.DealPattern, r.HandSize)
	}
	if r.MaxRetries <= 0 {
		return fmt.Errorf("max retries must be positive, got %d", r.MaxRetries)
	}
	return nil
}

// DefaultRule returns the trump-following rule with these card orders.
func (r Rules) DefaultRule() DefaultRule {
	return DefaultRule{TrumpOrder: r.TrumpOrder, PlainOrder: r.PlainOrder}
}

// PresetByName resolves "classic" or "belote". An empty name is classic.
func PresetByName(name string) (Rules, error) {
	switch name {
	case "", "classic":
		return ClassicPreset(), nil
	case "belote":
		return BelotePreset(), nil
	default:
		return Rules{}, fmt.Errorf("unknown preset %q", name)
	}
}
