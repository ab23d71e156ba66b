// Package survey holds the categorical response data of a single survey question and
// the metrics derived from it.
//
// A ResponseSet is ordered: category order is chosen by the caller and carried through
// every derived value (cumulative sums, chart series, colors). Nothing here sorts by
// count.
package survey

import (
	"math"
	"strings"
)

// Response is one category of a question with the number of respondents who picked it.
type Response struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// ResponseSet is an ordered label -> count mapping. The zero value is empty and
// invalid; build one with NewResponseSet.
type ResponseSet struct {
	entries []Response
	index   map[string]int
}

// NewResponseSet validates and copies the given responses. At least one category is
// required, counts must be non-negative and labels unique and non-empty. The total of
// all counts must fit in an int.
func NewResponseSet(responses ...Response) (ResponseSet, error) {
	if len(responses) == 0 {
		return ResponseSet{}, ErrNoCategories
	}
	rs := ResponseSet{
		entries: make([]Response, len(responses)),
		index:   make(map[string]int, len(responses)),
	}
	sum := 0
	for i, r := range responses {
		if strings.TrimSpace(r.Label) == "" {
			return ResponseSet{}, &DuplicateLabelError{}
		}
		if _, dup := rs.index[r.Label]; dup {
			return ResponseSet{}, &DuplicateLabelError{Label: r.Label}
		}
		if r.Count < 0 {
			return ResponseSet{}, &InvalidCountError{Label: r.Label, Count: r.Count}
		}
		if r.Count > math.MaxInt-sum {
			return ResponseSet{}, &InvalidCountError{Label: r.Label, Count: r.Count, Overflow: true}
		}
		sum += r.Count
		rs.entries[i] = r
		rs.index[r.Label] = i
	}
	return rs, nil
}

// MustResponseSet is NewResponseSet for fixed datasets known to be valid.
func MustResponseSet(responses ...Response) ResponseSet {
	rs, err := NewResponseSet(responses...)
	if err != nil {
		panic(err)
	}
	return rs
}

// Len returns the number of categories.
func (rs ResponseSet) Len() int { return len(rs.entries) }

// At returns the i-th category in caller order.
func (rs ResponseSet) At(i int) Response { return rs.entries[i] }

// Responses returns a copy of the categories in order.
func (rs ResponseSet) Responses() []Response {
	out := make([]Response, len(rs.entries))
	copy(out, rs.entries)
	return out
}

// Labels returns the category labels in order.
func (rs ResponseSet) Labels() []string {
	out := make([]string, len(rs.entries))
	for i, r := range rs.entries {
		out[i] = r.Label
	}
	return out
}

// Counts returns the category counts in order.
func (rs ResponseSet) Counts() []int {
	out := make([]int, len(rs.entries))
	for i, r := range rs.entries {
		out[i] = r.Count
	}
	return out
}

// Index returns the position of label, or -1.
func (rs ResponseSet) Index(label string) int {
	if i, ok := rs.index[label]; ok {
		return i
	}
	return -1
}

// Count returns the count stored for label.
func (rs ResponseSet) Count(label string) (int, bool) {
	i, ok := rs.index[label]
	if !ok {
		return 0, false
	}
	return rs.entries[i].Count, true
}

// Total returns the sum of all counts.
func (rs ResponseSet) Total() int {
	t := 0
	for _, r := range rs.entries {
		t += r.Count
	}
	return t
}

// Reordered returns a new set with the same categories in the given label order.
// Every existing label must be named exactly once.
func (rs ResponseSet) Reordered(labels ...string) (ResponseSet, error) {
	if len(labels) != len(rs.entries) {
		return ResponseSet{}, &InsufficientLabelsError{Want: len(rs.entries), Got: len(labels)}
	}
	out := make([]Response, 0, len(labels))
	for _, l := range labels {
		i, ok := rs.index[l]
		if !ok {
			return ResponseSet{}, &UnknownLabelError{Label: l}
		}
		out = append(out, rs.entries[i])
	}
	return NewResponseSet(out...)
}
