package schema

import "regexp"

// CutoffSet ends whichever table is active when one of its patterns matches.
type CutoffSet []*regexp.Regexp

// Matches reports whether line ends the active table.
func (c CutoffSet) Matches(line string) bool {
	for _, re := range c {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// DefaultCutoff returns the cutoff patterns shared by every registry:
// subtotal lines, the 24-hour phone footer, period totals and the APR
// footnote.
func DefaultCutoff() CutoffSet {
	return CutoffSet{
		regexp.MustCompile(`^\s+Subtotal:\s+[\d,.]*\s*$`),
		regexp.MustCompile(`Call 1-800-937-2000 for 24-hour`),
		regexp.MustCompile(`TOTAL \w+ FOR THIS PERIOD\s*[$0-9.]+$`),
		regexp.MustCompile(`is based on a full calendar year and does not`),
	}
}
