package directory

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Initials returns the upper-cased first letter of each word of name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// FormatDistance renders a distance in km, switching to metres below 1 km.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm away", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm away", km)
}

// ResultsHeadline is the "N providers found" line above the results.
func ResultsHeadline(n int) string {
	if n == 1 {
		return "1 provider found"
	}
	return fmt.Sprintf("%d providers found", n)
}
