package engine

import "fmt"

const MaxDeckCards = 32

type Deck struct {
	cards []Card
}

// NewOrderedDeck returns the 32 cards, suit by suit, each suit from Seven to Ace.
func NewOrderedDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, MaxDeckCards)}
	for _, s := range Suits {
		for _, sym := range Symbols {
			d.cards = append(d.cards, Card{Suit: s, Symbol: sym})
		}
	}
	return d
}

// NewDeck builds a deck from arbitrary cards, typically drained folds.
func NewDeck(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, 0, MaxDeckCards)}
	d.cards = append(d.cards, cards...)
	return d
}

func (d *Deck) Push(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Shuffle applies a uniform random permutation.
func (d *Deck) Shuffle(src Source) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Cut rotates the deck around a random point that is neither the first nor
// the last card: the cards above the point go to the bottom. Decks smaller
// than three cards are left untouched.
func (d *Deck) Cut(src Source) {
	n := len(d.cards)
	if n < 3 {
		return
	}
	d.CutAt(1 + src.Intn(n-2))
}

// CutAt rotates the deck so that the card at k comes first.
func (d *Deck) CutAt(k int) {
	n := len(d.cards)
	if n == 0 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	rotated := make([]Card, 0, cap(d.cards))
	rotated = append(rotated, d.cards[k:]...)
	rotated = append(rotated, d.cards[:k]...)
	d.cards = rotated
}

// Deal splits the whole deck into one hand per player, handing out the
// packet sizes of pattern in turn to every player. An empty pattern deals
// each hand in one packet. The deck is empty afterwards.
func (d *Deck) Deal(players int, pattern []int) ([]*Hand, error) {
	if players <= 0 || len(d.cards)%players != 0 {
		return nil, fmt.Errorf("%w: %d cards for %d players", ErrDeckSize, len(d.cards), players)
	}
	perHand := len(d.cards) / players
	if len(pattern) == 0 {
		pattern = []int{perHand}
	}
	total := 0
	for _, p := range pattern {
		if p <= 0 {
			return nil, fmt.Errorf("%w: packet of %d", ErrDeckSize, p)
		}
		total += p
	}
	if total != perHand {
		return nil, fmt.Errorf("%w: pattern %v does not make hands of %d", ErrDeckSize, pattern, perHand)
	}

	hands := make([]*Hand, players)
	for i := range hands {
		hands[i] = NewHand()
	}
	idx := 0
	for _, packet := range pattern {
		for p := 0; p < players; p++ {
			for _, c := range d.cards[idx : idx+packet] {
				hands[p].Push(c)
			}
			idx += packet
		}
	}
	d.cards = make([]Card, 0, MaxDeckCards)
	return hands, nil
}
