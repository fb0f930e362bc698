package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerable/poker"
)

func TestEvaluatorEvaluate(t *testing.T) {
	t.Parallel()

	e := NewEvaluator(nil)

	tests := []struct {
		cards    string
		strength uint16
		category string
	}{
		{"As Ks Qs Js Ts", 1, "straight-flush"},
		{"5h 4h 3h 2h Ah", 10, "straight-flush"},
		{"Ah Ad Ac As Kd", 11, "four-of-a-kind"},
		{"7c 5d 4h 3s 2c", 7462, "high-card"},
		{"A♠ K♥ Q♦ J♣ 10♠", 1600, "straight"},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			t.Parallel()
			res, err := e.Evaluate(tt.cards)
			require.NoError(t, err)
			assert.Equal(t, tt.strength, res.Strength)
			assert.Equal(t, tt.category, res.Category)
			assert.Len(t, res.Cards, 5)
		})
	}
}

func TestEvaluatorRejectsBadHands(t *testing.T) {
	t.Parallel()

	e := NewEvaluator(poker.DefaultTables())

	_, err := e.Evaluate("As Ks Qs Js")
	assert.ErrorIs(t, err, poker.ErrHandSize)
	assert.Equal(t, "invalid_hand_size", errorCode(err))

	_, err = e.Evaluate("As As Qs Js Ts")
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
	assert.Equal(t, "duplicate_card", errorCode(err))

	_, err = e.Evaluate("As Ks Qs Js Xx")
	assert.ErrorIs(t, err, poker.ErrInvalidCard)
	assert.Equal(t, "invalid_cards", errorCode(err))
}

func TestEvaluatorCompare(t *testing.T) {
	t.Parallel()

	e := NewEvaluator(nil)

	res, err := e.Compare([]string{
		"Kh Kd Kc 9s 9h", // full house
		"9c Tc Jd Qh Ks", // straight
		"9d Th Js Qc Kc", // same straight
	})
	require.NoError(t, err)
	require.Len(t, res.Results, 3)
	assert.Equal(t, []int{0}, res.Winners)
	assert.Equal(t, res.Results[1].Strength, res.Results[2].Strength)

	res, err = e.Compare([]string{"9c Tc Jd Qh Ks", "9d Th Js Qc Kc"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Winners)

	_, err = e.Compare(nil)
	assert.ErrorIs(t, err, ErrNoHands)

	_, err = e.Compare([]string{"As Ks Qs Js Ts", "2c"})
	require.ErrorIs(t, err, poker.ErrHandSize)
	assert.Contains(t, err.Error(), "hand 2")
}
