package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"collab-assistant/internal/router"
)

var reQuotedTitle = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)

// orphanParticles are single-syllable case markers that survive keyword
// stripping when their host word was removed ("일정을" leaves "을").
var orphanParticles = map[string]struct{}{
	"에": {}, "의": {}, "을": {}, "를": {}, "은": {},
	"는": {}, "이": {}, "가": {}, "도": {}, "로": {},
}

// extractTitle derives a short label for the object being created. The first
// quoted span wins verbatim; otherwise the message is reduced to its free-text
// residue. A residue under three runes is too short to be a meaningful label
// and yields no title.
func (uc *implUseCase) extractTitle(message string) string {
	if m := reQuotedTitle.FindStringSubmatch(message); m != nil {
		if m[1] != "" {
			return m[1]
		}
		return m[2]
	}

	residue := uc.stripToResidue(message)
	if utf8.RuneCountInString(residue) < minTitleRunes {
		return ""
	}
	return residue
}

// stripToResidue removes temporal expressions, classification keywords, and
// orphaned particles, then collapses whitespace.
func (uc *implUseCase) stripToResidue(message string) string {
	stripped := router.StripKeywords(uc.parser.StripTemporal(message))

	fields := strings.Fields(stripped)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := orphanParticles[f]; ok {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
