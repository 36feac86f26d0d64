package server

import (
	"github.com/samsja/belote-libre-v2/internal/engine"
	"github.com/samsja/belote-libre-v2/internal/engine/sim"
)

const (
	EventCardPlayed    = "card_played"
	EventFoldCompleted = "fold_completed"
	EventDealCompleted = "deal_completed"
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type CardPlayedPayload struct {
	Fold int     `json:"fold"`
	Seat int     `json:"seat"`
	Card CardDTO `json:"card"`
}

func cardPlayedEvent(fold, seat int, card engine.Card) Event {
	return Event{Type: EventCardPlayed, Data: CardPlayedPayload{Fold: fold, Seat: seat, Card: cardToDTO(card)}}
}

func foldCompletedEvent(rec sim.FoldRecord) Event {
	return Event{Type: EventFoldCompleted, Data: buildFoldView(rec)}
}

func dealCompletedEvent(deal sim.Deal) Event {
	return Event{Type: EventDealCompleted, Data: buildDealView(deal)}
}
