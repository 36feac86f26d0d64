package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandPushAndPlay(t *testing.T) {
	h := NewHand()
	card := Card{Diamond, Ten}
	h.Push(card)
	assert.Equal(t, 1, h.Len())

	played, err := h.Play(0)
	require.NoError(t, err)
	assert.Equal(t, card, played)
	assert.Equal(t, 0, h.Len())
}

func TestHandPlaySwapsLastIn(t *testing.T) {
	h := NewHand(MustParseCards("H7 D8 C9 S10")...)
	played, err := h.Play(1)
	require.NoError(t, err)
	assert.Equal(t, MustParseCard("D8"), played)
	assert.Equal(t, MustParseCards("H7 S10 C9"), h.Cards())
}

func TestHandOutOfRange(t *testing.T) {
	h := NewHand(MustParseCards("H7 D8")...)
	for _, id := range []int{-1, 2, 10} {
		_, err := h.Play(id)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "play %d", id)
		_, err = h.Peek(id)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "peek %d", id)
	}
	assert.Equal(t, 2, h.Len(), "failed play must not shrink the hand")
}

func TestHandPeekDoesNotMutate(t *testing.T) {
	h := NewHand(MustParseCards("H7 D8")...)
	c, err := h.Peek(1)
	require.NoError(t, err)
	assert.Equal(t, MustParseCard("D8"), c)
	assert.Equal(t, 2, h.Len())
}

func TestHandMembership(t *testing.T) {
	h := NewHand(MustParseCards("S7 DJ D7")...)
	assert.True(t, h.Contains(MustParseCard("DJ")))
	assert.False(t, h.Contains(MustParseCard("DA")))
	assert.True(t, h.ContainsSuit(Spade))
	assert.False(t, h.ContainsSuit(Heart))

	id, ok := h.IndexOf(MustParseCard("D7"))
	assert.True(t, ok)
	assert.Equal(t, 2, id)
	assert.Equal(t, "[7S JD 7D]", h.String())
}

func TestParseCard(t *testing.T) {
	cases := []struct {
		in   string
		want Card
		ok   bool
	}{
		{"H7", Card{Heart, Seven}, true},
		{"d10", Card{Diamond, Ten}, true},
		{"CJ", Card{Club, Jack}, true},
		{"SA", Card{Spade, Ace}, true},
		{"X7", Card{}, false},
		{"H6", Card{}, false},
		{"H", Card{}, false},
	}
	for _, tc := range cases {
		got, err := ParseCard(tc.in)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	assert.Equal(t, "10D", Card{Diamond, Ten}.String())
	assert.Panics(t, func() { MustParseCard("Z9") })
}
