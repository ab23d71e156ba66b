package chartspec

import "fmt"

// FormatPercent renders a percentage with one decimal, e.g. "89.6%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatCountPercent renders "329 (89.6%)".
func FormatCountPercent(count int, p float64) string {
	return fmt.Sprintf("%d (%.1f%%)", count, p)
}
