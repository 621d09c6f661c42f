package glycan

import (
	"regexp"
	"strings"
)

// defaultStereochemistry maps monosaccharide codes to their conventional
// stereochemistry descriptor. A GLYCAM token whose descriptor matches the
// default drops it in IUPAC; a non-default descriptor is kept as an explicit
// D-/L- prefix.
var defaultStereochemistry = map[string]string{
	"4eLeg": "D", "6dAlt": "L", "6dAltNAc": "L", "6dGul": "D",
	"6dTal": "D", "6dTalNAc": "D", "8eAci": "D", "8eLeg": "L",
	"Abe": "D", "Aci": "L", "All": "D", "AllA": "D", "AllN": "D",
	"AllNAc": "D", "Alt": "L", "AltA": "L", "AltN": "L", "AltNAc": "L",
	"Api": "L", "Ara": "L", "Bac": "D", "Col": "L", "DDmanHep": "D",
	"Dha": "D", "Dig": "D", "Fru": "D", "Fuc": "L", "FucNAc": "L",
	"Gal": "D", "GalA": "D", "GalN": "D", "GalNAc": "D", "Glc": "D",
	"GlcA": "D", "GlcN": "D", "GlcNAc": "D", "Gul": "D", "GulA": "D",
	"GulN": "D", "GulNAc": "D", "Ido": "L", "IdoA": "L", "IdoN": "L",
	"IdoNAc": "L", "Kdn": "D", "Kdo": "D", "Leg": "D", "LDmanHep": "L",
	"Lyx": "D", "Man": "D", "ManA": "D", "ManN": "D", "ManNAc": "D",
	"Mur": "D", "MurNAc": "D", "MurNGc": "D", "Neu": "D", "Neu5Ac": "D",
	"Neu5Gc": "D", "Oli": "D", "Par": "D", "Pse": "L", "Psi": "D",
	"Qui": "D", "QuiNAc": "D", "Rha": "L", "RhaNAc": "L", "Rib": "D",
	"Sia": "D", "Sor": "L", "Tag": "D", "Tal": "D", "TalA": "D",
	"TalN": "D", "TalNAc": "D", "Tyv": "D", "Xyl": "D",
}

// modifierRewrites maps GLYCAM substituent bracket markers to their IUPAC
// spelling. Applied in order; content not in the table passes through
// unchanged. The rewrites are idempotent since no output reintroduces
// brackets.
var modifierRewrites = []struct{ from, to string }{
	{"[2S]", "2S"},
	{"[3S]", "3S"},
	{"[4S]", "4S"},
	{"[6S]", "6S"},
	{"[3S-6S]", "3S6S"},
	{"[3S,6S]", "3S6S"},
	{"[2Me]", "2Me"},
	{"[2Me-3Me]", "2Me3Me"},
	{"[2Me,3Me]", "2Me3Me"},
	{"[2Me-4Me]", "2Me4Me"},
	{"[2Me,4Me]", "2Me4Me"},
	{"[2Me-6Me]", "2Me6Me"},
	{"[2Me,6Me]", "2Me6Me"},
	{"[2Me-3Me-4Me]", "2Me3Me4Me"},
	{"[2Me,3Me,4Me]", "2Me3Me4Me"},
	{"[3Me]", "3Me"},
	{"[4Me]", "4Me"},
	{"[9Me]", "9Me"},
	{"[2A]", "2Ac"},
	{"[4A]", "4Ac"},
	{"[9A]", "9Ac"},
	{"[6PC]", "6Pc"},
}

// glycamDiacetimidoSpecial is a catalog irregularity carried over verbatim:
// this one GLYCAM name maps to a fixed IUPAC output instead of going through
// the general rules.
const (
	glycamDiacetimidoSpecial = "DGalpb1-4DGalpa1-3[2,4-diacetimido-2,4,6-trideoxyhexose]"
	iupacDiacetimidoSpecial  = "Gal(b1-4)Gal(a1-3)2,4-diacetimido-2,4,6-trideoxyhexose"
)

var reducingEndSuffix = regexp.MustCompile(`[ab]\d-OH$`)

// TrimReducingEnd removes a trailing reducing-end marker such as "b1-OH"
// from a GLYCAM name. Names without the marker are returned unchanged.
func TrimReducingEnd(glycam string) string {
	if m := reducingEndSuffix.FindStringIndex(glycam); m != nil && m[1]-m[0] == 5 {
		return glycam[:m[0]]
	}
	return glycam
}

// matchSugarCode finds the longest monosaccharide code from the
// stereochemistry table occurring in token and returns the code, its start
// index and its default descriptor. Longest-match keeps e.g. GlcNAc from
// being treated as Glc.
func matchSugarCode(token string) (code string, idx int, def string, ok bool) {
	for sugar, d := range defaultStereochemistry {
		i := strings.Index(token, sugar)
		if i < 0 {
			continue
		}
		if len(sugar) > len(code) || (len(sugar) == len(code) && sugar < code) {
			code, idx, def, ok = sugar, i, d, true
		}
	}
	return code, idx, def, ok
}

// GLYCAMToIUPAC converts a GLYCAM linear name to condensed IUPAC notation.
// The name is read as a hyphen-delimited token sequence from non-reducing to
// reducing end. Per token: the leading stereochemistry descriptor is dropped
// when it matches the sugar's conventional default and kept as an explicit
// D-/L- prefix otherwise, the ring-size marker (p or f) after the sugar code
// is dropped, the two-character linkage suffix of every non-last token is
// rewritten to "(a1-" form with the bracket closed on the next token, and
// substituent bracket markers are rewritten per modifierRewrites. A trailing
// reducing-end marker is removed first.
func GLYCAMToIUPAC(glycam string) string {
	glycam = TrimReducingEnd(glycam)
	if glycam == glycamDiacetimidoSpecial {
		return iupacDiacetimidoSpecial
	}

	tokens := strings.Split(glycam, "-")
	out := make([]string, 0, len(tokens))
	for i, token := range tokens {
		mod := token

		if code, idx, def, ok := matchSugarCode(mod); ok {
			// The descriptor sits immediately before the sugar code;
			// anything ahead of it (linkage digit, branch bracket) is
			// carried through untouched.
			prefix := mod[:idx]
			rest := mod[idx:]
			switch {
			case def == "D" && strings.HasSuffix(prefix, "D"):
				prefix = prefix[:len(prefix)-1]
			case def == "D" && strings.HasSuffix(prefix, "L"):
				prefix = prefix[:len(prefix)-1] + "L-"
			case def == "L" && strings.HasSuffix(prefix, "L"):
				prefix = prefix[:len(prefix)-1]
			case def == "L" && strings.HasSuffix(prefix, "D"):
				prefix = prefix[:len(prefix)-1] + "D-"
			}
			// drop the ring-size marker following the sugar code
			if len(rest) > len(code) && (rest[len(code)] == 'p' || rest[len(code)] == 'f') {
				rest = rest[:len(code)] + rest[len(code)+1:]
			}
			mod = prefix + rest
		} else {
			mod = strings.ReplaceAll(mod, "p", "")
		}

		if i != len(tokens)-1 && len(mod) >= 2 {
			suffix := mod[len(mod)-2:]
			mod = strings.Replace(mod, suffix, "("+suffix+"-", 1)
		}
		if i != 0 && len(mod) >= 1 {
			first := mod[:1]
			mod = strings.Replace(mod, first, first+")", 1)
		}

		for _, r := range modifierRewrites {
			mod = strings.ReplaceAll(mod, r.from, r.to)
		}

		out = append(out, mod)
	}
	return strings.Join(out, "")
}
