package sim

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samsja/belote-libre-v2/internal/bots"
	"github.com/samsja/belote-libre-v2/internal/engine"
)

type recorder struct {
	cards []engine.Card
	folds []FoldRecord
	deals []Deal
}

func (r *recorder) CardPlayed(_ string, _ int, _ int, card engine.Card) {
	r.cards = append(r.cards, card)
}

func (r *recorder) FoldCompleted(rec FoldRecord) { r.folds = append(r.folds, rec) }

func (r *recorder) DealCompleted(deal Deal) { r.deals = append(r.deals, deal) }

func newDriver(rule engine.Rule, ctx engine.GameContext) (*Driver, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return &Driver{Rules: engine.ClassicPreset(), Rule: rule, Context: ctx, Log: logger}, hook
}

func normalTable(rule engine.Rule) []bots.Bot {
	rules := engine.ClassicPreset()
	return []bots.Bot{
		bots.NewNormal(rule, rules), bots.NewNormal(rule, rules),
		bots.NewNormal(rule, rules), bots.NewNormal(rule, rules),
	}
}

func TestPlayFoldInSeatOrder(t *testing.T) {
	d, _ := newDriver(engine.NoRule{}, engine.SansAtout())
	hands := []*engine.Hand{
		engine.NewHand(engine.MustParseCards("H7")...),
		engine.NewHand(engine.MustParseCards("H8")...),
		engine.NewHand(engine.MustParseCards("H9")...),
		engine.NewHand(engine.MustParseCards("H10")...),
	}
	players := []bots.Bot{bots.FirstCardBot{}, bots.FirstCardBot{}, bots.FirstCardBot{}, bots.FirstCardBot{}}
	fold := engine.NewFold()

	require.NoError(t, d.PlayFold(fold, players, hands, 2))
	assert.True(t, fold.IsOver())
	assert.Equal(t, engine.MustParseCards("H9 H10 H7 H8"), fold.Cards())
}

func TestPlayFoldExhaustsRetries(t *testing.T) {
	d, hook := newDriver(engine.DefaultRule{}, engine.Atout(engine.Diamond))
	hands := []*engine.Hand{
		engine.NewHand(engine.MustParseCards("D7")...),
		// first card is a spade while diamonds are led
		engine.NewHand(engine.MustParseCards("S7 DJ")...),
		engine.NewHand(engine.MustParseCards("D9")...),
		engine.NewHand(engine.MustParseCards("D10")...),
	}
	players := []bots.Bot{bots.FirstCardBot{}, bots.FirstCardBot{}, bots.FirstCardBot{}, bots.FirstCardBot{}}
	fold := engine.NewFold()

	err := d.PlayFold(fold, players, hands, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExhaustedRetries))
	assert.Equal(t, 1, fold.Len(), "refused plays never reach the fold")
	assert.Equal(t, 2, hands[1].Len(), "refused plays never leave the hand")

	refused := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "play refused" {
			refused++
			assert.Equal(t, 1, e.Data["seat"])
		}
	}
	assert.Equal(t, d.Rules.MaxRetries, refused)
}

func TestPlayFoldRetriesUntilValid(t *testing.T) {
	d, hook := newDriver(engine.DefaultRule{}, engine.Atout(engine.Diamond))
	hands := []*engine.Hand{
		engine.NewHand(engine.MustParseCards("D7")...),
		engine.NewHand(engine.MustParseCards("S7 DJ")...),
		engine.NewHand(engine.MustParseCards("D9")...),
		engine.NewHand(engine.MustParseCards("D10")...),
	}
	players := []bots.Bot{bots.FirstCardBot{}, &sequenceBot{ids: []int{0, 7, 1}}, bots.FirstCardBot{}, bots.FirstCardBot{}}
	fold := engine.NewFold()

	require.NoError(t, d.PlayFold(fold, players, hands, 0))
	assert.Equal(t, engine.MustParseCards("D7 DJ D9 D10"), fold.Cards())

	refused := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "play refused" {
			refused++
		}
	}
	assert.Equal(t, 2, refused)
}

type sequenceBot struct {
	ids []int
	n   int
}

func (b *sequenceBot) ChooseCard(engine.GameContext, *engine.Fold, *engine.Hand) int {
	id := b.ids[b.n%len(b.ids)]
	b.n++
	return id
}

func TestPlayDealEightFolds(t *testing.T) {
	rule := engine.DefaultRule{}
	d, _ := newDriver(rule, engine.Atout(engine.Heart))
	obs := &recorder{}
	d.Observer = obs

	deck := engine.NewOrderedDeck()
	deck.Shuffle(engine.NewSeededSource(7))
	deal, err := d.PlayDeal(deck, normalTable(rule), 3)
	require.NoError(t, err)

	require.Len(t, deal.Folds, 8)
	assert.NotEmpty(t, deal.ID)
	assert.Equal(t, 0, deal.Folds[0].Leader, "seat after the dealer leads")
	for i, f := range deal.Folds {
		assert.Len(t, f.Cards, 4)
		assert.Equal(t, i, f.Number)
		if i > 0 {
			assert.Equal(t, deal.Folds[i-1].Winner, f.Leader, "winner leads the next fold")
		}
	}
	assert.Len(t, obs.cards, 32)
	assert.Len(t, obs.folds, 8)
	require.Len(t, obs.deals, 1)
	assert.Equal(t, deal.ID, obs.deals[0].ID)
}

func TestPlayDealFirstCardBotsUnderNoRule(t *testing.T) {
	d, _ := newDriver(engine.NoRule{}, engine.ToutAtout())
	players := []bots.Bot{bots.FirstCardBot{}, bots.FirstCardBot{}, bots.FirstCardBot{}, bots.FirstCardBot{}}
	deal, err := d.PlayDeal(engine.NewOrderedDeck(), players, 0)
	require.NoError(t, err)
	assert.Len(t, deal.Folds, 8)
}

func TestPlayDealRejectsBadSetup(t *testing.T) {
	d, _ := newDriver(engine.DefaultRule{}, engine.SansAtout())
	_, err := d.PlayDeal(engine.NewOrderedDeck(), []bots.Bot{bots.FirstCardBot{}}, 0)
	assert.Error(t, err)

	d.Rule = nil
	_, err = d.PlayDeal(engine.NewOrderedDeck(), normalTable(engine.DefaultRule{}), 0)
	assert.Error(t, err)

	d, _ = newDriver(engine.DefaultRule{}, engine.SansAtout())
	_, err = d.PlayDeal(engine.NewDeck(engine.MustParseCards("H7 H8")...), normalTable(engine.DefaultRule{}), 0)
	assert.True(t, errors.Is(err, engine.ErrDeckSize))
}

func TestFoldRecordSeat(t *testing.T) {
	rec := FoldRecord{Leader: 3}
	assert.Equal(t, 3, rec.Seat(0))
	assert.Equal(t, 0, rec.Seat(1))
	assert.Equal(t, 2, rec.Seat(3))
}

func TestRunChainConservesCards(t *testing.T) {
	rule := engine.DefaultRule{}
	logger, _ := test.NewNullLogger()
	obs := &recorder{}
	deals, err := RunChain(ChainConfig{
		Seed:     11,
		Deals:    6,
		Rules:    engine.ClassicPreset(),
		Rule:     rule,
		Context:  engine.Atout(engine.Club),
		Bots:     normalTable(rule),
		Log:      logger,
		Observer: obs,
	})
	require.NoError(t, err)
	require.Len(t, deals, 6)
	for i, deal := range deals {
		assert.Equal(t, i%4, deal.Dealer)
		seen := map[engine.Card]bool{}
		for _, f := range deal.Folds {
			for _, c := range f.Cards {
				assert.False(t, seen[c], "duplicate %v", c)
				seen[c] = true
			}
		}
		assert.Len(t, seen, engine.MaxDeckCards)
	}
	assert.Len(t, obs.deals, 6)
}

func TestRunChainWithStreamSource(t *testing.T) {
	rule := engine.DefaultRule{}
	logger, _ := test.NewNullLogger()
	deals, err := RunChain(ChainConfig{
		Deals:   2,
		Rules:   engine.ClassicPreset(),
		Rule:    rule,
		Context: engine.SansAtout(),
		Bots:    normalTable(rule),
		Source:  engine.NewStreamSource(),
		Log:     logger,
	})
	require.NoError(t, err)
	assert.Len(t, deals, 2)
}

func TestRunChainReportsExhaustedRetries(t *testing.T) {
	logger, _ := test.NewNullLogger()
	players := []bots.Bot{bots.FirstCardBot{}, bots.FirstCardBot{}, bots.FirstCardBot{}, bots.FirstCardBot{}}
	var err error
	// first-card players break the rule on some seed sooner or later
	for seed := int64(1); seed <= 50 && err == nil; seed++ {
		_, err = RunChain(ChainConfig{
			Seed:    seed,
			Deals:   1,
			Rules:   engine.ClassicPreset(),
			Rule:    engine.DefaultRule{},
			Context: engine.Atout(engine.Spade),
			Bots:    players,
			Log:     logger,
		})
	}
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExhaustedRetries))
	assert.Contains(t, err.Error(), "last folds")
}
