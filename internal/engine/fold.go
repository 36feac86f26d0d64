package engine

const MaxFoldCards = 4

// Fold is the trick in progress. Position 0 is the card of the player who
// led; positions follow seating order.
type Fold struct {
	cards []Card
}

func NewFold() *Fold {
	return &Fold{cards: make([]Card, 0, MaxFoldCards)}
}

// NewFoldOf builds a fold already holding the given cards, at most four.
func NewFoldOf(cards ...Card) *Fold {
	f := NewFold()
	for _, c := range cards {
		f.Push(c)
	}
	return f
}

// Push appends c unless the fold is over. It reports whether c was added.
func (f *Fold) Push(c Card) bool {
	if f.IsOver() {
		return false
	}
	f.cards = append(f.cards, c)
	return true
}

func (f *Fold) IsOver() bool {
	return len(f.cards) >= MaxFoldCards
}

func (f *Fold) Len() int {
	return len(f.cards)
}

// MainSuit is the suit led by the first card.
func (f *Fold) MainSuit() (Suit, error) {
	if len(f.cards) == 0 {
		return Heart, ErrEmptyFold
	}
	return f.cards[0].Suit, nil
}

func (f *Fold) Card(i int) Card {
	return f.cards[i]
}

func (f *Fold) Cards() []Card {
	return append([]Card(nil), f.cards...)
}

// Drain hands the played cards over to the caller and leaves the fold empty.
func (f *Fold) Drain() []Card {
	out := f.cards
	f.cards = make([]Card, 0, MaxFoldCards)
	return out
}
