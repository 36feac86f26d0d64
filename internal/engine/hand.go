package engine

import (
	"fmt"
	"strings"
)

const MaxHandCards = 8

// Hand holds the cards of one player for a deal. Order is not meaningful:
// Play swaps the last card into the removed slot.
type Hand struct {
	cards []Card
}

func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, MaxHandCards)}
	h.cards = append(h.cards, cards...)
	return h
}

// Push appends a card. Duplicates are the caller's concern.
func (h *Hand) Push(c Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Peek(id int) (Card, error) {
	if id < 0 || id >= len(h.cards) {
		return Card{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, id, len(h.cards))
	}
	return h.cards[id], nil
}

func (h *Hand) Play(id int) (Card, error) {
	c, err := h.Peek(id)
	if err != nil {
		return Card{}, err
	}
	last := len(h.cards) - 1
	h.cards[id] = h.cards[last]
	h.cards = h.cards[:last]
	return c, nil
}

func (h *Hand) Contains(c Card) bool {
	_, ok := h.IndexOf(c)
	return ok
}

func (h *Hand) IndexOf(c Card) (int, bool) {
	for i, hc := range h.cards {
		if hc == c {
			return i, true
		}
	}
	return -1, false
}

func (h *Hand) ContainsSuit(s Suit) bool {
	for _, c := range h.cards {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// Cards returns a copy of the hand content.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

func (h *Hand) String() string {
	parts := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		parts = append(parts, c.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
