package survey

import (
	"errors"
	"fmt"
)

// ErrNoCategories is returned when a ResponseSet is built without any category.
var ErrNoCategories = errors.New("response set has no categories")

// EmptyDatasetError reports a ResponseSet whose counts sum to zero, which leaves
// percentages and averages undefined.
type EmptyDatasetError struct {
	Categories int
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("empty dataset: %d categories with a total count of 0", e.Categories)
}

// UnparsableOrdinalError is returned when a weighted average is requested and a label
// does not start with an integer token.
type UnparsableOrdinalError struct {
	Label string
}

func (e *UnparsableOrdinalError) Error() string {
	return fmt.Sprintf("label %q has no leading ordinal token", e.Label)
}

// InvalidCountError rejects negative counts, and counts that push the total past the
// int range.
type InvalidCountError struct {
	Label    string
	Count    int
	Overflow bool
}

func (e *InvalidCountError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("category %q count %d overflows the response total", e.Label, e.Count)
	}
	return fmt.Sprintf("category %q has negative count %d", e.Label, e.Count)
}

// DuplicateLabelError rejects repeated or empty labels.
type DuplicateLabelError struct {
	Label string
}

func (e *DuplicateLabelError) Error() string {
	if e.Label == "" {
		return "category label must not be empty"
	}
	return fmt.Sprintf("category %q appears more than once", e.Label)
}

// UnknownLabelError is returned when a lookup names a label outside the set.
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Label)
}

// InsufficientLabelsError is returned by Reordered when the label list does not name
// every category.
type InsufficientLabelsError struct {
	Want, Got int
}

func (e *InsufficientLabelsError) Error() string {
	return fmt.Sprintf("reorder needs %d labels, got %d", e.Want, e.Got)
}
