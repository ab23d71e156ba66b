package layout

import (
	"fmt"
	"strings"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

// Group is a named set of categories whose counts are reported together, e.g.
// "Positive ratings (4-5)".
type Group struct {
	Name   string   `json:"name" yaml:"name"`
	Labels []string `json:"labels" yaml:"labels"`
}

// OrdinalGroup collects the categories of rs whose ordinal prefix is in [lo, hi].
func OrdinalGroup(name string, lo, hi int, rs survey.ResponseSet) (Group, error) {
	labels, err := survey.OrdinalRange(rs, lo, hi)
	if err != nil {
		return Group{}, err
	}
	return Group{Name: name, Labels: labels}, nil
}

// SummaryInput feeds the figure's key-insights block.
type SummaryInput struct {
	Responses survey.ResponseSet
	Metrics   survey.Metrics
	// Noun names a category in the text, e.g. "rating". Defaults to "response".
	Noun   string
	Groups []Group
	// Anchor overrides the default FigurePoint(0.5, 0.35).
	Anchor *chartspec.Anchor
}

// SummaryText formats the key-insights block:
//
//	Key Insights:
//	• Total responses: 329
//	• Average rating: 3.45/5
//	• Most common rating: 4 (Good) - 142 responses (43.2%)
//	• Least common rating: 1 (Poor) - 26 responses (7.9%)
//	• Positive ratings (4-5): 189 (57.4%)
//
// The average line appears only for ordinal labels.
func SummaryText(in SummaryInput) (string, error) {
	rs, m := in.Responses, in.Metrics
	if rs.Len() == 0 {
		return "", survey.ErrNoCategories
	}
	if !m.Describes(rs) {
		return "", fmt.Errorf("layout: summary metrics do not describe the responses")
	}
	noun := in.Noun
	if noun == "" {
		noun = "response"
	}

	var b strings.Builder
	b.WriteString("Key Insights:\n")
	fmt.Fprintf(&b, "• Total responses: %d", m.Total)
	if avg, ok := m.WeightedAverage(); ok {
		fmt.Fprintf(&b, "\n• Average %s: %.2f/%d", noun, avg, m.MaxOrdinal)
	}
	if top, ok := survey.MostCommon(rs); ok {
		fmt.Fprintf(&b, "\n• Most common %s: %s - %s", noun, top.Label, countLine(top, m))
	}
	if low, ok := survey.LeastCommon(rs); ok && rs.Len() > 1 {
		fmt.Fprintf(&b, "\n• Least common %s: %s - %s", noun, low.Label, countLine(low, m))
	}
	for _, g := range in.Groups {
		sum, err := survey.GroupTotal(rs, g.Labels...)
		if err != nil {
			return "", fmt.Errorf("group %q: %w", g.Name, err)
		}
		fmt.Fprintf(&b, "\n• %s: %d (%.1f%%)", g.Name, sum, float64(sum)/float64(m.Total)*100)
	}
	return b.String(), nil
}

func countLine(r survey.Response, m survey.Metrics) string {
	p, _ := m.Percentage(r.Label)
	return fmt.Sprintf("%d responses (%.1f%%)", r.Count, p)
}
