package utils

// DefaultDescriptionLimit is the card display cutoff for destination
// descriptions.
const DefaultDescriptionLimit = 150

// TruncateDescription cuts s down to max runes and appends "..." when it had
// to cut. Strings at or under the limit come back unchanged.
func TruncateDescription(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
