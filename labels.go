package dialmesh

import "strconv"

// LabelStyle selects how hour labels are written.
type LabelStyle string

const (
	// StyleDecimal writes hours as decimal numbers ("1".."12").
	StyleDecimal LabelStyle = "decimal"

	// StyleRoman writes hours as Roman numerals ("I".."XII").
	StyleRoman LabelStyle = "roman"
)

// LabelSet selects which hour positions receive labels.
type LabelSet string

const (
	// SetAll labels every hour position 1..12.
	SetAll LabelSet = "all"

	// SetCardinals labels only 12, 3, 6 and 9.
	SetCardinals LabelSet = "cardinals"
)

var romanNumerals = map[int]string{
	1: "I", 2: "II", 3: "III", 4: "IV", 5: "V", 6: "VI",
	7: "VII", 8: "VIII", 9: "IX", 10: "X", 11: "XI", 12: "XII",
}

// DialLabels returns the label strings for a style and set, ordered by
// their hour slots (12,3,6,9 for cardinals, 1..12 otherwise) so they
// line up with the placements from ComputeSectors.
func DialLabels(style LabelStyle, set LabelSet) []string {
	var hours []int
	if set == SetCardinals {
		hours = []int{12, 3, 6, 9}
	} else {
		hours = make([]int, 12)
		for i := range hours {
			hours[i] = i + 1
		}
	}

	labels := make([]string, len(hours))
	for i, h := range hours {
		if style == StyleRoman {
			labels[i] = romanNumerals[h]
		} else {
			labels[i] = strconv.Itoa(h)
		}
	}
	return labels
}
