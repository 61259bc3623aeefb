package homes

import "strings"

// NoneValue is printed in place of a field that was not found.
const NoneValue = "None"

// separatorWidth is the width of the dashed line between listings.
const separatorWidth = 40

// FormatListings formats listings for console display. Each listing is
// preceded by a dashed separator and printed as "field: value" lines.
func FormatListings(listings []FlatListing) string {
	if len(listings) == 0 {
		return ""
	}

	separator := strings.Repeat("-", separatorWidth)

	var b strings.Builder
	for _, l := range listings {
		b.WriteString(separator)
		b.WriteString("\n\n")
		for i, v := range l.Values() {
			b.WriteString(FlatFields[i])
			b.WriteString(": ")
			b.WriteString(ValueOrNone(v))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// ValueOrNone dereferences v, returning NoneValue for nil.
func ValueOrNone(v *string) string {
	if v == nil {
		return NoneValue
	}
	return *v
}
