package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/lox/pokerable/poker"
)

// CompareCmd ranks several hands against each other
type CompareCmd struct {
	Hands []string `arg:"" help:"Hands to compare, each quoted, e.g. 'Kh Kd Kc 9s 9h' '9c Tc Jd Qh Ks'"`
}

func (c *CompareCmd) Run(g *Globals) error {
	if len(c.Hands) < 2 {
		return fmt.Errorf("need at least two hands to compare, got %d", len(c.Hands))
	}

	hands := make([][]poker.Card, len(c.Hands))
	ranks := make([]poker.HandRank, len(c.Hands))
	for i, notation := range c.Hands {
		cards, err := parseHand(notation)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands[i] = cards
		ranks[i] = poker.EvaluateCards(cards)
	}

	winners := poker.Winners(ranks)
	tie := len(winners) > 1

	w := tabwriter.NewWriter(g.stdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("#"), headerStyle.Render("Hand"), headerStyle.Render("Strength"), headerStyle.Render("Result"))
	for i, cards := range hands {
		result := ""
		if slices.Contains(winners, i) {
			if tie {
				result = tieStyle.Render("tie")
			} else {
				result = winStyle.Render("wins")
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%d %s\t%s\n",
			i+1, handStyle.Render(renderCards(cards)), ranks[i], categoryStyle.Render(ranks[i].Type().Name()), result)
	}
	return w.Flush()
}
