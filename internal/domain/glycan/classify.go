package glycan

import "strings"

// Category is a named glycan class used by search filters.
type Category string

const (
	CategoryNGlycan      Category = "N-Glycans"
	CategoryOGlycan      Category = "O-Glycans"
	CategoryGAG          Category = "GAGs"
	CategoryOligomannose Category = "Oligomannose"
	CategoryComplex      Category = "Complex"
	CategoryHybrid       Category = "Hybrid"
)

// Categories lists the supported classes in display order.
var Categories = []Category{
	CategoryNGlycan, CategoryOGlycan, CategoryGAG,
	CategoryOligomannose, CategoryComplex, CategoryHybrid,
}

// KnownCategory matches s against the supported class names.
func KnownCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if Category(s) == c {
			return c, true
		}
	}
	return "", false
}

// nGlycanCoreSuffixes are the chitobiose core endings, with and without
// core fucosylation, that mark an N-glycan in condensed IUPAC.
var nGlycanCoreSuffixes = []string{
	"Man(b1-4)GlcNAc(b1-4)GlcNAc",
	"Man(b1-4)GlcNAc(b1-4)[Fuc(a1-6)]GlcNAc",
	"Man(b1-4)GlcNAc(b1-4)[Fuc(a1-3)]GlcNAc",
	"Man(b1-4)GlcNAc(b1-4)[Fuc(a1-3)][Fuc(a1-6)]GlcNAc",
}

// oGlycanReducingEnds are reducing-end residues that mark O-glycans when the
// N-glycan core is absent.
var oGlycanReducingEnds = []string{
	"GalNAc", "Fuc", "Man", "Xyl", "Glc", "GlcNAc",
}

// gagMotifs are residue markers characteristic of glycosaminoglycan chains.
var gagMotifs = []string{
	"GlcNS", "IdoA", "GlcA(b1-4)", "GlcA(b1-3)Gal",
}

// bisectingGlcNAcMotif excludes bisected structures from the hybrid class.
const bisectingGlcNAcMotif = "[GlcNAc(b1-4)]Man(b1-4)"

// IsNGlycan reports whether the condensed IUPAC string ends in an N-glycan
// chitobiose core.
func IsNGlycan(iupac string) bool {
	for _, suffix := range nGlycanCoreSuffixes {
		if strings.HasSuffix(iupac, suffix) {
			return true
		}
	}
	return false
}

// IsOGlycan reports whether the structure looks like an O-glycan: no
// N-glycan core and a reducing-end residue from the O-linked set. A single
// GalNAc or GlcNAc counts.
func IsOGlycan(iupac string) bool {
	if iupac == "" || IsNGlycan(iupac) {
		return false
	}
	for _, end := range oGlycanReducingEnds {
		if strings.HasSuffix(iupac, end) {
			return true
		}
	}
	return false
}

// IsGAG reports whether the structure carries glycosaminoglycan repeat
// markers.
func IsGAG(iupac string) bool {
	for _, motif := range gagMotifs {
		if strings.Contains(iupac, motif) {
			return true
		}
	}
	return false
}

// IsOligomannose reports whether the structure is a high-mannose N-glycan:
// the chitobiose core with at least five mannoses, exactly the two core
// GlcNAcs, and no galactose or sialic acid branches.
func IsOligomannose(iupac string) bool {
	if !IsNGlycan(iupac) {
		return false
	}
	if strings.Count(iupac, "Man") < 5 || strings.Count(iupac, "GlcNAc") != 2 {
		return false
	}
	if strings.Contains(iupac, "Gal") || strings.Contains(iupac, "Neu5Ac") || strings.Contains(iupac, "Neu5Gc") {
		return false
	}
	return true
}

// IsComplex reports whether the structure is a complex-type N-glycan:
// GlcNAc extended beyond the core on the trimannosyl arms.
func IsComplex(iupac string) bool {
	return IsNGlycan(iupac) &&
		strings.Count(iupac, "Man") >= 3 &&
		strings.Count(iupac, "GlcNAc") > 2
}

// IsHybrid reports whether the structure is a hybrid-type N-glycan: extra
// mannose beyond the trimannosyl core with GlcNAc extension on one arm,
// excluding bisected structures. These motif tests tolerate false negatives
// on unusual branching.
func IsHybrid(iupac string) bool {
	return IsNGlycan(iupac) &&
		strings.Count(iupac, "Man") >= 4 &&
		strings.Count(iupac, "GlcNAc") > 2 &&
		!strings.Contains(iupac, bisectingGlcNAcMotif)
}

// InCategory reports whether the condensed IUPAC string belongs to cat.
// Unknown categories match nothing.
func InCategory(iupac string, cat Category) bool {
	switch cat {
	case CategoryNGlycan:
		return IsNGlycan(iupac)
	case CategoryOGlycan:
		return IsOGlycan(iupac)
	case CategoryGAG:
		return IsGAG(iupac)
	case CategoryOligomannose:
		return IsOligomannose(iupac)
	case CategoryComplex:
		return IsComplex(iupac)
	case CategoryHybrid:
		return IsHybrid(iupac)
	}
	return false
}
