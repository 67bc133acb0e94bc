package energy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ninefold/novena/pkg/principle"
)

var annotationPattern = regexp.MustCompile(`\[[0-9]\]`)

// Annotate interleaves each rune with its energy marker, turning "AB"
// into "A[1]B[2]". Whitespace carries energy 0 and is marked the same way.
func Annotate(text string, p *principle.Principle) string {
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		fmt.Fprintf(&b, "[%d]", CharEnergy(r, p))
	}
	return b.String()
}

// StripAnnotations removes the [n] markers produced by Annotate.
func StripAnnotations(text string) string {
	return annotationPattern.ReplaceAllString(text, "")
}
