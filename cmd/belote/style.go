package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/samsja/belote-libre-v2/internal/engine"
	"github.com/samsja/belote-libre-v2/internal/engine/sim"
)

var seatNames = []string{"North", "East", "South", "West"}

// cardString colors red suits like a printed deck.
func cardString(c engine.Card) string {
	if c.Suit == engine.Heart || c.Suit == engine.Diamond {
		return pterm.LightRed(c.String())
	}
	return pterm.LightWhite(c.String())
}

// foldTable lays a deal out as one row per fold and one column per seat.
func foldTable(deal sim.Deal) pterm.TableData {
	data := pterm.TableData{{"#", seatNames[0], seatNames[1], seatNames[2], seatNames[3], "Winner"}}
	for _, f := range deal.Folds {
		row := []string{strconv.Itoa(f.Number + 1), "", "", "", "", seatNames[f.Winner]}
		for i, c := range f.Cards {
			cell := cardString(c)
			if i == 0 {
				cell = pterm.Bold.Sprint(cell) + "*"
			}
			row[1+f.Seat(i)] = cell
		}
		data = append(data, row)
	}
	return data
}

// summaryPanel counts folds won by each side of the table.
func summaryPanel(deal sim.Deal) pterm.Panel {
	tricks := make([]int, len(seatNames))
	for _, f := range deal.Folds {
		tricks[f.Winner]++
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	text := pterm.Sprintfln("North/South %s folds", pterm.LightCyan(tricks[0]+tricks[2]))
	text += pterm.Sprintfln("East/West   %s folds", pterm.LightCyan(tricks[1]+tricks[3]))
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|FOLDS|")).WithTitleTopCenter().Sprint(text)}
}

func printDeal(n int, deal sim.Deal) error {
	pterm.DefaultSection.Printfln("Deal %d  %s  dealer %s", n+1, deal.Context, seatNames[deal.Dealer])
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(foldTable(deal)).Render(); err != nil {
		return err
	}
	return pterm.DefaultPanel.WithPanels([][]pterm.Panel{{summaryPanel(deal)}}).Render()
}
