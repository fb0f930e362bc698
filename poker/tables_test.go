package poker

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTablesVerify(t *testing.T) {
	t.Parallel()

	tables, err := BuildTables()
	require.NoError(t, err)
	require.NoError(t, tables.Verify())
}

func TestDefaultTablesShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, DefaultTables(), DefaultTables())
	assert.Equal(t, [NumRanks]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}, DefaultTables().Primes)
}

func TestTablesCopiesAreIndependent(t *testing.T) {
	t.Parallel()

	royal := MustParseCards("As Ks Qs Js Ts")
	built, err := BuildTables()
	require.NoError(t, err)
	assert.NotSame(t, DefaultTables(), built)

	tests := []struct {
		name   string
		tables *Tables
	}{
		{"copy of default", func() *Tables { c := *DefaultTables(); return &c }()},
		{"freshly built", built},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.tables.Flushes[0x1F00] = 42
			clear(tt.tables.HashAdjust[:])

			assert.Equal(t, HandRank(42), tt.tables.Evaluate(royal[0].Encode(), royal[1].Encode(), royal[2].Encode(), royal[3].Encode(), royal[4].Encode()))
			assert.Equal(t, HandRank(1), EvaluateCards(royal))
			assert.Equal(t, uint16(1), DefaultTables().Flushes[0x1F00])
		})
	}
}

func TestTableStats(t *testing.T) {
	t.Parallel()

	s := DefaultTables().Stats()
	assert.Equal(t, distinctRankCombos, s.Flushes)
	assert.Equal(t, distinctRankCombos, s.Unique5)
	assert.Equal(t, repeatedRankClasses, s.HashValues)
	assert.LessOrEqual(t, s.HashSpan, hashValuesSize)
	assert.GreaterOrEqual(t, s.HashSpan, repeatedRankClasses)
	assert.Positive(t, s.UsedBuckets)
	assert.LessOrEqual(t, s.UsedBuckets, hashAdjustSize)
	assert.Positive(t, s.LargestBucket)
}

func TestVerifyDetectsCorruption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		corrupt func(*Tables)
		wantMsg string
	}{
		{"duplicate flush strength", func(t *Tables) { t.Flushes[0x0F80] = 1 }, "assigned twice"},
		{"flush in wrong band", func(t *Tables) { t.Flushes[0x1E80] = 5 }, "classifies"},
		{"populated four-rank mask", func(t *Tables) { t.Unique5[0x000F] = 7000 }, "not five ranks"},
		{"wrong primes", func(t *Tables) { t.Primes[0] = 3 }, "primes"},
		{"cleared hash adjust", func(t *Tables) { clear(t.HashAdjust[:]) }, ""},
		{"hash adjust past the end", func(t *Tables) {
			_, b := mix(rankPrimes[Ace] * rankPrimes[Ace] * rankPrimes[King] * rankPrimes[Queen] * rankPrimes[Jack])
			t.HashAdjust[b] = 0xFFFF
		}, "exceeds"},
		{"stray hash value", func(t *Tables) {
			for slot, v := range t.HashValues {
				if v == 0 {
					t.HashValues[slot] = 5000
					return
				}
			}
		}, "unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bad := *DefaultTables()
			tt.corrupt(&bad)

			err := bad.Verify()
			require.ErrorIs(t, err, ErrTableMismatch)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestStraightMasks(t *testing.T) {
	t.Parallel()

	assert.True(t, isStraightMask(0x1F00))
	assert.True(t, isStraightMask(0x100F))
	assert.False(t, isStraightMask(0x1E01))
	for _, m := range straightMasks {
		assert.Equal(t, StraightFlush, HandRank(DefaultTables().Flushes[m]).Type())
		assert.Equal(t, Straight, HandRank(DefaultTables().Unique5[m]).Type())
	}
}

func TestSaveReadTables(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, DefaultTables().Save(&buf))
	assert.Equal(t, 4+binary.Size(Tables{}), buf.Len())

	loaded, err := ReadTables(&buf)
	require.NoError(t, err)
	assert.Equal(t, *DefaultTables(), *loaded)
}

func TestReadTablesRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := ReadTables(strings.NewReader("nope"))
	assert.ErrorIs(t, err, ErrTableFormat)

	_, err = ReadTables(strings.NewReader("CKT1short"))
	assert.ErrorIs(t, err, ErrTableFormat)

	var buf bytes.Buffer
	bad := *DefaultTables()
	bad.Flushes[0x1F00] = 9
	require.NoError(t, bad.Save(&buf))
	_, err = ReadTables(&buf)
	assert.ErrorIs(t, err, ErrTableMismatch)

	// An out-of-range displacement must be rejected on load rather than
	// panicking on the first evaluation that lands in its bucket.
	for _, d := range []uint16{hashValuesSize, 0xFFFF} {
		buf.Reset()
		bad = *DefaultTables()
		_, b := mix(rankPrimes[Ace] * rankPrimes[Ace] * rankPrimes[King] * rankPrimes[Queen] * rankPrimes[Jack])
		bad.HashAdjust[b] = d
		require.NoError(t, bad.Save(&buf))
		_, err = ReadTables(&buf)
		assert.ErrorIs(t, err, ErrTableMismatch)
	}
}
