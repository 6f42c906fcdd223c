package utils

// Ellipsis is appended to labels that were cut short
const Ellipsis = "…"

// TruncateWithEllipsis shortens s to at most maxLen characters and appends
// Ellipsis when anything was cut. The ellipsis does not count toward maxLen.
func TruncateWithEllipsis(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + Ellipsis
}
