package survey

// Metrics is the derived summary of a ResponseSet. It is computed once and not
// modified afterwards; slices are aligned with Labels.
type Metrics struct {
	Total       int       `json:"total"`
	Labels      []string  `json:"labels"`
	Percentages []float64 `json:"percentages"`
	Cumulative  []int     `json:"cumulative"`
	// Average is the ordinal-weighted mean, set only when every label carries an
	// ordinal prefix ("4 (Good)").
	Average    *float64 `json:"weighted_average,omitempty"`
	MaxOrdinal int      `json:"max_ordinal,omitempty"`
}

// Compute derives total, percentages, cumulative prefix sums and, when the labels are
// ordinal, the weighted average.
func Compute(rs ResponseSet) (Metrics, error) {
	if rs.Len() == 0 {
		return Metrics{}, ErrNoCategories
	}
	total := rs.Total()
	if total == 0 {
		return Metrics{}, &EmptyDatasetError{Categories: rs.Len()}
	}
	m := Metrics{
		Total:       total,
		Labels:      rs.Labels(),
		Percentages: make([]float64, rs.Len()),
		Cumulative:  make([]int, rs.Len()),
	}
	running := 0
	for i, r := range rs.entries {
		m.Percentages[i] = float64(r.Count) / float64(total) * 100
		running += r.Count
		m.Cumulative[i] = running
	}
	if avg, maxOrd, err := weightedAverage(rs, total); err == nil {
		m.Average = &avg
		m.MaxOrdinal = maxOrd
	}
	return m, nil
}

// WeightedAverage returns the count-weighted mean of the ordinal label prefixes. Unlike
// Compute it fails loudly when a label is not ordinal.
func WeightedAverage(rs ResponseSet) (float64, error) {
	if rs.Len() == 0 {
		return 0, ErrNoCategories
	}
	total := rs.Total()
	if total == 0 {
		return 0, &EmptyDatasetError{Categories: rs.Len()}
	}
	avg, _, err := weightedAverage(rs, total)
	return avg, err
}

func weightedAverage(rs ResponseSet, total int) (float64, int, error) {
	sum := 0
	maxOrd := 0
	for i, r := range rs.entries {
		ord, err := ParseOrdinal(r.Label)
		if err != nil {
			return 0, 0, err
		}
		if i == 0 || ord > maxOrd {
			maxOrd = ord
		}
		sum += ord * r.Count
	}
	return float64(sum) / float64(total), maxOrd, nil
}

// WeightedAverage reports the ordinal-weighted mean when it was computable.
func (m Metrics) WeightedAverage() (float64, bool) {
	if m.Average == nil {
		return 0, false
	}
	return *m.Average, true
}

// Percentage returns the stored percentage for label.
func (m Metrics) Percentage(label string) (float64, bool) {
	for i, l := range m.Labels {
		if l == label {
			return m.Percentages[i], true
		}
	}
	return 0, false
}

// PercentageMap returns percentages keyed by label.
func (m Metrics) PercentageMap() map[string]float64 {
	out := make(map[string]float64, len(m.Labels))
	for i, l := range m.Labels {
		out[l] = m.Percentages[i]
	}
	return out
}

// Describes reports whether m was computed from a set with the same categories and
// total as rs.
func (m Metrics) Describes(rs ResponseSet) bool {
	if len(m.Labels) != rs.Len() || m.Total != rs.Total() {
		return false
	}
	for i, r := range rs.entries {
		if m.Labels[i] != r.Label {
			return false
		}
	}
	return true
}

// PreviousCumulative returns the running total before category i (0 for the first).
func (m Metrics) PreviousCumulative(i int) int {
	if i <= 0 {
		return 0
	}
	return m.Cumulative[i-1]
}
