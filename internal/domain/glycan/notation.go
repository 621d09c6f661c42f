package glycan

import (
	"regexp"
	"strings"
)

// NotationKind tags which glycan notation an identifier appears to use.
type NotationKind int

const (
	// NotationFreeText is the fallback for identifiers matching no
	// structured notation; such inputs go to fuzzy search.
	NotationFreeText NotationKind = iota
	NotationGlyTouCan
	NotationIUPAC
	NotationGLYCAM
	NotationWURCS
)

func (k NotationKind) String() string {
	switch k {
	case NotationGlyTouCan:
		return "glytoucan"
	case NotationIUPAC:
		return "iupac"
	case NotationGLYCAM:
		return "glycam"
	case NotationWURCS:
		return "wurcs"
	default:
		return "freetext"
	}
}

var glytoucanPattern = regexp.MustCompile(`^G[0-9]{5}[A-Z]{2}$`)

// IsGlyTouCanID reports whether s has the shape of a GlyTouCan accession:
// 8 characters, leading G, five digits, two uppercase letters.
func IsGlyTouCanID(s string) bool {
	return len(s) == 8 && glytoucanPattern.MatchString(s)
}

// DetectNotation classifies an identifier by shape. The checks run in
// order and the first hit wins: the WURCS= prefix, then the GlyTouCan
// accession shape, then parenthesized linkages (IUPAC), then square-bracket
// branches plus a known monosaccharide code without parentheses (GLYCAM).
// Anything else is free text. The rules are deliberately permissive and can
// misread unusual inputs; downstream resolution tolerates that by falling
// through its channels.
func DetectNotation(identifier string) NotationKind {
	s := strings.TrimSpace(identifier)
	switch {
	case strings.HasPrefix(s, WURCSPrefix):
		return NotationWURCS
	case IsGlyTouCanID(s):
		return NotationGlyTouCan
	case strings.Contains(s, "("):
		return NotationIUPAC
	case strings.Contains(s, "[") && strings.Contains(s, "]") &&
		!strings.Contains(s, ")") && containsSugarCode(s):
		return NotationGLYCAM
	default:
		return NotationFreeText
	}
}

func containsSugarCode(s string) bool {
	for sugar := range defaultStereochemistry {
		if strings.Contains(s, sugar) {
			return true
		}
	}
	return false
}
