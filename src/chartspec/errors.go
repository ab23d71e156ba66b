package chartspec

import "fmt"

// UnsupportedKindError is returned for a chart kind outside Donut, Pie, HorizontalBar
// and StackedArea.
type UnsupportedKindError struct {
	Kind Kind
	Name string
}

func (e *UnsupportedKindError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unsupported chart kind %q", e.Name)
	}
	return fmt.Sprintf("unsupported chart kind %d", int(e.Kind))
}

// InsufficientDataError is returned when the responses do not fit the structure a
// chart kind or its style requires. Nothing is padded or truncated.
type InsufficientDataError struct {
	Kind   Kind
	Reason string
	Want   int
	Got    int
}

func (e *InsufficientDataError) Error() string {
	if e.Want != 0 || e.Got != 0 {
		return fmt.Sprintf("%s chart: %s (want %d, got %d)", e.Kind, e.Reason, e.Want, e.Got)
	}
	return fmt.Sprintf("%s chart: %s", e.Kind, e.Reason)
}
