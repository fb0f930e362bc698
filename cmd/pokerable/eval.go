package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/pokerable/poker"
)

// EvalCmd evaluates a single hand
type EvalCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'As Ks Qs Js Ts' or AsKsQsJsTs"`
	Words bool     `short:"w" help:"Show the encoded card words"`
}

func (c *EvalCmd) Run(g *Globals) error {
	cards, err := parseHand(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}

	hr := poker.EvaluateCards(cards)

	w := tabwriter.NewWriter(g.stdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Hand"), handStyle.Render(renderCards(cards)))
	fmt.Fprintf(w, "%s\t%d / %d\n", headerStyle.Render("Strength"), hr, poker.MaxHighCard)
	fmt.Fprintf(w, "%s\t%s (%s)\n", headerStyle.Render("Category"), categoryStyle.Render(hr.Type().Name()), hr.Type())
	if c.Words {
		for _, card := range cards {
			e := card.Encode()
			fmt.Fprintf(w, "%s\t%08x  prime=%d rank=%d suit=%s\n", card, uint32(e), e.Prime(), e.Rank(), e.Suit())
		}
	}
	return w.Flush()
}

// parseHand parses and validates a five-card hand.
func parseHand(notation string) ([]poker.Card, error) {
	cards, err := poker.ParseCards(notation)
	if err != nil {
		return nil, err
	}
	if err := poker.CheckHand(cards); err != nil {
		return nil, fmt.Errorf("%q: %w", notation, err)
	}
	return cards, nil
}
