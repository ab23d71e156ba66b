package survey

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponseSetValidation(t *testing.T) {
	_, err := NewResponseSet()
	assert.ErrorIs(t, err, ErrNoCategories)

	_, err = NewResponseSet(Response{"A", 1}, Response{"A", 2})
	var dup *DuplicateLabelError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "A", dup.Label)

	_, err = NewResponseSet(Response{" ", 1})
	require.True(t, errors.As(err, &dup))

	_, err = NewResponseSet(Response{"A", -1})
	var neg *InvalidCountError
	require.True(t, errors.As(err, &neg))
	assert.Equal(t, -1, neg.Count)
	assert.False(t, neg.Overflow)
}

func TestNewResponseSetRejectsOverflowingTotal(t *testing.T) {
	_, err := NewResponseSet(Response{"A", math.MaxInt}, Response{"B", 1})
	var ice *InvalidCountError
	require.True(t, errors.As(err, &ice))
	assert.True(t, ice.Overflow)
	assert.Equal(t, "B", ice.Label)
	assert.Contains(t, err.Error(), "overflows")

	rs, err := NewResponseSet(Response{"A", math.MaxInt - 1}, Response{"B", 1}, Response{"C", 0})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, rs.Total())
}

func TestResponseSetCopies(t *testing.T) {
	in := []Response{{"A", 1}, {"B", 2}}
	rs, err := NewResponseSet(in...)
	require.NoError(t, err)
	in[0].Count = 99
	assert.Equal(t, 1, rs.At(0).Count, "input slice must not alias the set")

	out := rs.Responses()
	out[1].Count = 42
	c, ok := rs.Count("B")
	require.True(t, ok)
	assert.Equal(t, 2, c)

	assert.Equal(t, []string{"A", "B"}, rs.Labels())
	assert.Equal(t, []int{1, 2}, rs.Counts())
	assert.Equal(t, 1, rs.Index("B"))
	assert.Equal(t, -1, rs.Index("C"))
}

func TestReorderedErrors(t *testing.T) {
	rs := MustResponseSet(Response{"A", 1}, Response{"B", 2})
	_, err := rs.Reordered("A")
	var short *InsufficientLabelsError
	require.True(t, errors.As(err, &short))

	_, err = rs.Reordered("A", "C")
	var unknown *UnknownLabelError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "C", unknown.Label)
}

func TestParseOrdinal(t *testing.T) {
	cases := []struct {
		label string
		want  int
		ok    bool
	}{
		{"4 (Good)", 4, true},
		{"1 (Poor)", 1, true},
		{"10", 10, true},
		{"3(Average)", 3, true},
		{"Yes", 0, false},
		{"5th", 0, false},
		{"(4) Good", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseOrdinal(c.label)
		if !c.ok {
			assert.Error(t, err, c.label)
			continue
		}
		require.NoError(t, err, c.label)
		assert.Equal(t, c.want, got, c.label)
	}
}

func TestInsights(t *testing.T) {
	rs := ratingSet(t)
	most, ok := MostCommon(rs)
	require.True(t, ok)
	assert.Equal(t, "4 (Good)", most.Label)
	least, ok := LeastCommon(rs)
	require.True(t, ok)
	assert.Equal(t, "1 (Poor)", least.Label)

	pos, err := OrdinalRange(rs, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"4 (Good)", "5 (Excellent)"}, pos)
	sum, err := GroupTotal(rs, pos...)
	require.NoError(t, err)
	assert.Equal(t, 189, sum)

	_, err = GroupTotal(rs, "6 (Sublime)")
	assert.Error(t, err)

	tie := MustResponseSet(Response{"A", 3}, Response{"B", 3})
	first, _ := MostCommon(tie)
	assert.Equal(t, "A", first.Label)
}

func TestShares(t *testing.T) {
	rs := MustResponseSet(Response{"English", 737}, Response{"Health", 14})
	shares, err := Shares(rs, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 73.7, shares[0], 1e-9)
	assert.InDelta(t, 1.4, shares[1], 1e-9)

	_, err = Shares(rs, 0)
	assert.Error(t, err)
	_, err = Shares(rs, 500)
	assert.Error(t, err)
}
