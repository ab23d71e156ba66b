// Package report wires the survey, chartspec and layout packages into the three
// figure layouts: the adoption donut, the rating dashboard and the subject bar chart.
package report

import (
	"fmt"
	"strings"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/layout"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

// Kind names a report layout.
type Kind string

const (
	Adoption Kind = "adoption"
	Ratings  Kind = "ratings"
	Subjects Kind = "subjects"
)

// Kinds lists every report in a stable order.
func Kinds() []Kind { return []Kind{Adoption, Ratings, Subjects} }

// ParseKind maps a name to a report kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Adoption, Ratings, Subjects:
		return k, nil
	}
	return "", &UnsupportedReportError{Name: s}
}

// UnsupportedReportError is returned for an unknown report name.
type UnsupportedReportError struct {
	Name string
}

func (e *UnsupportedReportError) Error() string {
	return fmt.Sprintf("unsupported report %q (want adoption, ratings or subjects)", e.Name)
}

// Input is what every report is generated from. Zero fields take the report's own
// defaults.
type Input struct {
	Title     string
	Responses survey.ResponseSet
	// Respondents is the number of people asked; the subjects report divides by it.
	Respondents int
	// Groups replace the default positive/negative groups of the ratings summary.
	Groups  []layout.Group
	Palette []string
	// Explode replaces the ratings pie offsets; it must have one value per category.
	Explode  []float64
	ValueMax float64
	Size     layout.Size
	Footer   string
}

// Generate builds the named report. It is a pure function of its arguments.
func Generate(kind Kind, in Input) (layout.PanelLayout, error) {
	if in.Responses.Len() == 0 {
		return layout.PanelLayout{}, survey.ErrNoCategories
	}
	var (
		out layout.PanelLayout
		err error
	)
	switch kind {
	case Adoption:
		out, err = adoption(in)
	case Ratings:
		out, err = ratings(in)
	case Subjects:
		out, err = subjects(in)
	default:
		return layout.PanelLayout{}, &UnsupportedReportError{Name: string(kind)}
	}
	if err != nil {
		return layout.PanelLayout{}, fmt.Errorf("%s report: %w", kind, err)
	}
	return out, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func sizeOr(s, def layout.Size) layout.Size {
	if s.Width <= 0 || s.Height <= 0 {
		return def
	}
	return s
}
