package server

import "github.com/samsja/belote-libre-v2/internal/engine/sim"

type FoldView struct {
	Number int       `json:"number"`
	Leader int       `json:"leader"`
	Winner int       `json:"winner"`
	Cards  []CardDTO `json:"cards"`
	// Seats[i] played Cards[i].
	Seats []int `json:"seats"`
}

type DealView struct {
	ID      string     `json:"id"`
	Context string     `json:"context"`
	Dealer  int        `json:"dealer"`
	Folds   []FoldView `json:"folds"`
	// Tricks counts folds won per seat.
	Tricks []int `json:"tricks"`
}

type VerdictView struct {
	Valid bool      `json:"valid"`
	Legal []CardDTO `json:"legal"`
}

func buildFoldView(rec sim.FoldRecord) FoldView {
	seats := make([]int, 0, len(rec.Cards))
	for i := range rec.Cards {
		seats = append(seats, rec.Seat(i))
	}
	return FoldView{
		Number: rec.Number,
		Leader: rec.Leader,
		Winner: rec.Winner,
		Cards:  cardsToDTO(rec.Cards),
		Seats:  seats,
	}
}

func buildDealView(deal sim.Deal) DealView {
	view := DealView{
		ID:      deal.ID,
		Context: deal.Context.String(),
		Dealer:  deal.Dealer,
		Folds:   make([]FoldView, 0, len(deal.Folds)),
		Tricks:  make([]int, 4),
	}
	for _, f := range deal.Folds {
		view.Folds = append(view.Folds, buildFoldView(f))
		if f.Winner >= 0 && f.Winner < len(view.Tricks) {
			view.Tricks[f.Winner]++
		}
	}
	return view
}
