package sim

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/samsja/belote-libre-v2/internal/bots"
	"github.com/samsja/belote-libre-v2/internal/engine"
)

// ErrExhaustedRetries means a player kept choosing cards the rule refuses.
// It points at a broken player policy, not at the engine.
var ErrExhaustedRetries = errors.New("player exhausted its retries")

// FoldRecord is a completed fold. Seats are absolute, 0 to 3.
type FoldRecord struct {
	DealID string
	Number int
	Leader int
	Cards  []engine.Card
	Winner int
}

// Seat returns who played the i-th card of the fold.
func (r FoldRecord) Seat(i int) int {
	return (r.Leader + i) % engine.MaxFoldCards
}

type Deal struct {
	ID      string
	Context engine.GameContext
	Dealer  int
	Folds   []FoldRecord
}

// Observer is told about every accepted card and every finished fold.
type Observer interface {
	CardPlayed(dealID string, fold int, seat int, card engine.Card)
	FoldCompleted(rec FoldRecord)
	DealCompleted(deal Deal)
}

type Driver struct {
	Rules    engine.Rules
	Rule     engine.Rule
	Context  engine.GameContext
	Log      logrus.FieldLogger
	Observer Observer
}

func (d *Driver) logger() logrus.FieldLogger {
	if d.Log == nil {
		return logrus.StandardLogger()
	}
	return d.Log
}

// PlayFold asks every seat, starting with leader, for a card until the fold
// is complete.
func (d *Driver) PlayFold(fold *engine.Fold, players []bots.Bot, hands []*engine.Hand, leader int) error {
	return d.playFold("", 0, fold, players, hands, leader)
}

func (d *Driver) playFold(dealID string, number int, fold *engine.Fold, players []bots.Bot, hands []*engine.Hand, leader int) error {
	if len(players) != len(hands) || len(players) == 0 {
		return fmt.Errorf("%d players for %d hands", len(players), len(hands))
	}
	for i := 0; i < len(players); i++ {
		seat := (leader + i) % len(players)
		card, err := d.playSeat(fold, players[seat], hands[seat], seat)
		if err != nil {
			return err
		}
		if d.Observer != nil {
			d.Observer.CardPlayed(dealID, number, seat, card)
		}
	}
	return nil
}

func (d *Driver) playSeat(fold *engine.Fold, bot bots.Bot, hand *engine.Hand, seat int) (engine.Card, error) {
	log := d.logger().WithFields(logrus.Fields{"seat": seat, "position": fold.Len()})
	for attempt := 1; attempt <= d.Rules.MaxRetries; attempt++ {
		id := bot.ChooseCard(d.Context, fold, hand)
		card, err := engine.Play(d.Rule, d.Context, fold, hand, id)
		if err == nil {
			log.WithField("card", card.String()).Debug("card played")
			return card, nil
		}
		if !errors.Is(err, engine.ErrInvalidPlay) && !errors.Is(err, engine.ErrIndexOutOfRange) {
			return engine.Card{}, err
		}
		log.WithFields(logrus.Fields{"attempt": attempt, "id": id}).WithError(err).Debug("play refused")
	}
	return engine.Card{}, fmt.Errorf("seat %d after %d attempts: %w", seat, d.Rules.MaxRetries, ErrExhaustedRetries)
}

// PlayDeal deals the deck and plays folds until the hands are empty. The seat
// after the dealer leads the first fold, then each fold winner leads the next.
func (d *Driver) PlayDeal(deck *engine.Deck, players []bots.Bot, dealer int) (Deal, error) {
	if err := d.Rules.Validate(); err != nil {
		return Deal{}, err
	}
	if d.Rule == nil {
		return Deal{}, errors.New("no rule configured")
	}
	if len(players) != d.Rules.Players {
		return Deal{}, fmt.Errorf("need %d players, got %d", d.Rules.Players, len(players))
	}
	hands, err := deck.Deal(d.Rules.Players, d.Rules.DealPattern)
	if err != nil {
		return Deal{}, err
	}

	deal := Deal{ID: uuid.NewString(), Context: d.Context, Dealer: dealer}
	log := d.logger().WithFields(logrus.Fields{"deal": deal.ID, "context": d.Context.String(), "rule": d.Rule.Name()})
	log.Debug("deal started")

	trumpOrder, plainOrder := d.Rules.TrumpOrder, d.Rules.PlainOrder
	leader := (dealer + 1) % d.Rules.Players
	fold := engine.NewFold()
	for number := 0; hands[leader].Len() > 0; number++ {
		if err := d.playFold(deal.ID, number, fold, players, hands, leader); err != nil {
			return deal, fmt.Errorf("fold %d: %w", number, err)
		}
		winner := (leader + engine.TrickWinner(d.Context, fold, trumpOrder, plainOrder)) % d.Rules.Players
		rec := FoldRecord{DealID: deal.ID, Number: number, Leader: leader, Cards: fold.Drain(), Winner: winner}
		deal.Folds = append(deal.Folds, rec)
		log.WithFields(logrus.Fields{"fold": number, "winner": winner}).Debug("fold completed")
		if d.Observer != nil {
			d.Observer.FoldCompleted(rec)
		}
		leader = winner
	}
	for seat, h := range hands {
		if h.Len() != 0 {
			return deal, fmt.Errorf("seat %d still holds %d cards", seat, h.Len())
		}
	}
	log.WithField("folds", len(deal.Folds)).Info("deal completed")
	if d.Observer != nil {
		d.Observer.DealCompleted(deal)
	}
	return deal, nil
}

type ChainConfig struct {
	Seed    int64
	Deals   int
	Rules   engine.Rules
	Rule    engine.Rule
	Context engine.GameContext
	Bots    []bots.Bot
	// Source overrides the seeded randomness used for the initial shuffle and the cuts.
	Source   engine.Source
	Log      logrus.FieldLogger
	Observer Observer
}

// RunChain plays consecutive deals. The first deck is shuffled; later decks
// are the previous deal's folds stacked in play order and cut, as at a real
// table. The 32 cards are checked before every deal.
func RunChain(cfg ChainConfig) ([]Deal, error) {
	src := cfg.Source
	if src == nil {
		src = engine.NewSeededSource(cfg.Seed)
	}
	driver := &Driver{
		Rules:    cfg.Rules,
		Rule:     cfg.Rule,
		Context:  cfg.Context,
		Log:      cfg.Log,
		Observer: cfg.Observer,
	}

	deck := engine.NewOrderedDeck()
	deck.Shuffle(src)
	deals := []Deal{}
	dealer := 0
	for n := 0; n < cfg.Deals; n++ {
		deck.Cut(src)
		if err := checkDeck(deck); err != nil {
			return deals, failure(cfg.Seed, n, deals, err)
		}
		deal, err := driver.PlayDeal(deck, cfg.Bots, dealer)
		if err != nil {
			return deals, failure(cfg.Seed, n, append(deals, deal), err)
		}
		deals = append(deals, deal)

		deck = engine.NewDeck()
		for _, f := range deal.Folds {
			deck.Push(f.Cards...)
		}
		dealer = (dealer + 1) % cfg.Rules.Players
	}
	if err := checkDeck(deck); err != nil {
		return deals, failure(cfg.Seed, cfg.Deals, deals, err)
	}
	return deals, nil
}

func checkDeck(deck *engine.Deck) error {
	cards := deck.Cards()
	if len(cards) != engine.MaxDeckCards {
		return fmt.Errorf("card count mismatch: %d", len(cards))
	}
	seen := map[engine.Card]bool{}
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("duplicate card detected: %v", c)
		}
		seen[c] = true
	}
	return nil
}

func failure(seed int64, dealNo int, deals []Deal, err error) error {
	var folds []FoldRecord
	for _, d := range deals {
		folds = append(folds, d.Folds...)
	}
	start := 0
	if len(folds) > 8 {
		start = len(folds) - 8
	}
	log := ""
	for _, f := range folds[start:] {
		log += fmt.Sprintf("[fold %d leader %d winner %d] %v\n", f.Number, f.Leader, f.Winner, f.Cards)
	}
	return fmt.Errorf("seed=%d deal=%d: %w\nlast folds:\n%s", seed, dealNo, err, log)
}
