package chartspec

import (
	"encoding/json"
	"strings"
)

// Kind selects the chart shape.
type Kind int

const (
	Donut Kind = iota + 1
	Pie
	HorizontalBar
	StackedArea
)

var kindNames = map[Kind]string{
	Donut:         "donut",
	Pie:           "pie",
	HorizontalBar: "horizontal_bar",
	StackedArea:   "stacked_area",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether k is one of the supported chart kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind accepts the names produced by String plus a few spellings used in
// report definitions ("bar", "hbar", "area", "stacked").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "donut", "doughnut":
		return Donut, nil
	case "pie":
		return Pie, nil
	case "horizontal_bar", "hbar", "bar", "barh":
		return HorizontalBar, nil
	case "stacked_area", "area", "stacked", "cumulative":
		return StackedArea, nil
	}
	return 0, &UnsupportedKindError{Name: s}
}

// minCategories is the smallest category count each kind can draw.
func (k Kind) minCategories() int {
	if k == StackedArea {
		return 2
	}
	return 1
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
