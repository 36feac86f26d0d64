package server

import (
	"errors"
	"fmt"

	"github.com/samsja/belote-libre-v2/internal/bots"
	"github.com/samsja/belote-libre-v2/internal/engine"
	"github.com/samsja/belote-libre-v2/internal/engine/sim"
)

const maxDeals = 50

type CardDTO struct {
	Suit   string `json:"suit"`
	Symbol string `json:"symbol"`
}

type ClientMessage struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId,omitempty"`

	// start_deal and check_play
	Context string `json:"context,omitempty"`
	Rule    string `json:"rule,omitempty"`
	Preset  string `json:"preset,omitempty"`

	// start_deal
	Seed  int64    `json:"seed,omitempty"`
	Deals int      `json:"deals,omitempty"`
	Bots  []string `json:"bots,omitempty"`

	// check_play
	Fold []CardDTO `json:"fold,omitempty"`
	Hand []CardDTO `json:"hand,omitempty"`
	Card *CardDTO  `json:"card,omitempty"`
}

type ServerMessage struct {
	Type      string       `json:"type"`
	RequestID string       `json:"requestId,omitempty"`
	DealID    string       `json:"dealId,omitempty"`
	Events    []Event      `json:"events,omitempty"`
	Deals     []DealView   `json:"deals,omitempty"`
	Verdict   *VerdictView `json:"verdict,omitempty"`
	Error     *ErrorView   `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c CardDTO) toEngine() (engine.Card, error) {
	s, err := engine.ParseSuit(c.Suit)
	if err != nil {
		return engine.Card{}, err
	}
	sym, err := engine.ParseSymbol(c.Symbol)
	if err != nil {
		return engine.Card{}, err
	}
	return engine.Card{Suit: s, Symbol: sym}, nil
}

func cardToDTO(c engine.Card) CardDTO {
	return CardDTO{Suit: c.Suit.String(), Symbol: c.Symbol.String()}
}

func cardsToDTO(cards []engine.Card) []CardDTO {
	out := make([]CardDTO, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToDTO(c))
	}
	return out
}

func cardsToEngine(dtos []CardDTO) ([]engine.Card, error) {
	out := make([]engine.Card, 0, len(dtos))
	for _, d := range dtos {
		c, err := d.toEngine()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ruleSetup resolves the preset, context and rule shared by every request.
func (m ClientMessage) ruleSetup() (engine.Rules, engine.GameContext, engine.Rule, error) {
	rules, err := engine.PresetByName(m.Preset)
	if err != nil {
		return engine.Rules{}, engine.GameContext{}, nil, err
	}
	ctx := engine.SansAtout()
	if m.Context != "" {
		if ctx, err = engine.ParseGameContext(m.Context); err != nil {
			return engine.Rules{}, engine.GameContext{}, nil, err
		}
	}
	name := m.Rule
	if name == "" {
		name = "default"
	}
	rule, err := engine.RuleByName(name, rules.TrumpOrder, rules.PlainOrder)
	if err != nil {
		return engine.Rules{}, engine.GameContext{}, nil, err
	}
	return rules, ctx, rule, nil
}

// chainConfig turns a start_deal request into a driver configuration. Seed 0
// asks for an unpredictable deck.
func (m ClientMessage) chainConfig() (sim.ChainConfig, error) {
	rules, ctx, rule, err := m.ruleSetup()
	if err != nil {
		return sim.ChainConfig{}, err
	}
	deals := m.Deals
	if deals == 0 {
		deals = 1
	}
	if deals < 0 || deals > maxDeals {
		return sim.ChainConfig{}, fmt.Errorf("deals must be between 1 and %d", maxDeals)
	}
	kinds := m.Bots
	if len(kinds) == 0 {
		kinds = []string{"normal", "easy", "normal", "easy"}
	}
	table, err := bots.Table(kinds, rule, rules, m.Seed)
	if err != nil {
		return sim.ChainConfig{}, err
	}
	cfg := sim.ChainConfig{
		Seed:    m.Seed,
		Deals:   deals,
		Rules:   rules,
		Rule:    rule,
		Context: ctx,
		Bots:    table,
	}
	if m.Seed == 0 {
		cfg.Source = engine.NewStreamSource()
	}
	return cfg, nil
}

// verdict answers a check_play request without touching any game.
func (m ClientMessage) verdict() (*VerdictView, error) {
	_, ctx, rule, err := m.ruleSetup()
	if err != nil {
		return nil, err
	}
	if m.Card == nil {
		return nil, errors.New("card required")
	}
	card, err := m.Card.toEngine()
	if err != nil {
		return nil, err
	}
	foldCards, err := cardsToEngine(m.Fold)
	if err != nil {
		return nil, err
	}
	if len(foldCards) >= engine.MaxFoldCards {
		return nil, engine.ErrFoldOver
	}
	handCards, err := cardsToEngine(m.Hand)
	if err != nil {
		return nil, err
	}
	fold := engine.NewFoldOf(foldCards...)
	hand := engine.NewHand(handCards...)

	legal := []CardDTO{}
	for _, id := range engine.LegalCards(rule, ctx, fold, hand) {
		c, _ := hand.Peek(id)
		legal = append(legal, cardToDTO(c))
	}
	return &VerdictView{
		Valid: rule.IsPlayValid(ctx, card, fold, hand),
		Legal: legal,
	}, nil
}
