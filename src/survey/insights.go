package survey

import "fmt"

// MostCommon returns the category with the highest count; the earliest wins ties.
func MostCommon(rs ResponseSet) (Response, bool) {
	if rs.Len() == 0 {
		return Response{}, false
	}
	best := rs.entries[0]
	for _, r := range rs.entries[1:] {
		if r.Count > best.Count {
			best = r
		}
	}
	return best, true
}

// LeastCommon returns the category with the lowest count; the earliest wins ties.
func LeastCommon(rs ResponseSet) (Response, bool) {
	if rs.Len() == 0 {
		return Response{}, false
	}
	least := rs.entries[0]
	for _, r := range rs.entries[1:] {
		if r.Count < least.Count {
			least = r
		}
	}
	return least, true
}

// GroupTotal sums the counts of the named categories.
func GroupTotal(rs ResponseSet, labels ...string) (int, error) {
	sum := 0
	for _, l := range labels {
		c, ok := rs.Count(l)
		if !ok {
			return 0, &UnknownLabelError{Label: l}
		}
		sum += c
	}
	return sum, nil
}

// OrdinalRange returns, in order, the labels whose ordinal prefix lies in [lo, hi].
func OrdinalRange(rs ResponseSet, lo, hi int) ([]string, error) {
	var out []string
	for _, r := range rs.entries {
		ord, err := ParseOrdinal(r.Label)
		if err != nil {
			return nil, err
		}
		if ord >= lo && ord <= hi {
			out = append(out, r.Label)
		}
	}
	return out, nil
}

// Shares returns count/base*100 per category for multi-select questions, where base is
// the number of respondents and the shares need not sum to 100.
func Shares(rs ResponseSet, base int) ([]float64, error) {
	if base <= 0 {
		return nil, fmt.Errorf("respondent base must be positive, got %d", base)
	}
	out := make([]float64, rs.Len())
	for i, r := range rs.entries {
		if r.Count > base {
			return nil, fmt.Errorf("category %q count %d exceeds respondent base %d", r.Label, r.Count, base)
		}
		out[i] = float64(r.Count) / float64(base) * 100
	}
	return out, nil
}
