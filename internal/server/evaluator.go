package server

import (
	"errors"
	"fmt"

	"github.com/lox/pokerable/poker"
)

var ErrNoHands = errors.New("no hands to compare")

// Evaluator validates card notation and scores hands against a table set.
// The core evaluator trusts its input; this is the layer that rejects
// short hands and repeated cards.
type Evaluator struct {
	tables *poker.Tables
}

// NewEvaluator creates an evaluator over t, or the default tables if t is nil.
func NewEvaluator(t *poker.Tables) *Evaluator {
	if t == nil {
		t = poker.DefaultTables()
	}
	return &Evaluator{tables: t}
}

// Evaluate scores a single five-card hand.
func (e *Evaluator) Evaluate(notation string) (*ResultData, error) {
	cards, err := poker.ParseCards(notation)
	if err != nil {
		return nil, err
	}
	if err := poker.CheckHand(cards); err != nil {
		return nil, err
	}

	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}

	hr := e.tables.Evaluate(cards[0].Encode(), cards[1].Encode(), cards[2].Encode(), cards[3].Encode(), cards[4].Encode())
	return &ResultData{
		Cards:    names,
		Strength: uint16(hr),
		Category: hr.Type().String(),
		Name:     hr.Type().Name(),
	}, nil
}

// Compare scores several hands and reports which of them win.
func (e *Evaluator) Compare(hands []string) (*ComparisonData, error) {
	if len(hands) == 0 {
		return nil, ErrNoHands
	}

	out := &ComparisonData{Results: make([]ResultData, len(hands))}
	ranks := make([]poker.HandRank, len(hands))
	for i, h := range hands {
		res, err := e.Evaluate(h)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		out.Results[i] = *res
		ranks[i] = poker.HandRank(res.Strength)
	}
	out.Winners = poker.Winners(ranks)
	return out, nil
}
