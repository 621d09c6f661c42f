// Package glycan holds the domain model and notation grammar for glycan
// identifiers: GLYCAM linear names, IUPAC-condensed strings, WURCS strings
// and GlyTouCan accessions.
package glycan

// Anomer labels the stereochemical form a variant represents.
type Anomer string

const (
	AnomerArchetype Anomer = "archetype"
	AnomerAlpha     Anomer = "alpha"
	AnomerBeta      Anomer = "beta"
)

// Valid reports whether a is one of the three recognized anomer labels.
func (a Anomer) Valid() bool {
	switch a {
	case AnomerArchetype, AnomerAlpha, AnomerBeta:
		return true
	}
	return false
}

// Variant is one anomeric form of a glycan. Notation fields are empty when
// the value was not computed for this variant; an empty field is absence,
// not an error.
type Variant struct {
	// ID refers back to the owning record's internal ID.
	ID string `json:"ID"`
	// GlyTouCan is the external accession. Case-sensitive equality.
	GlyTouCan string `json:"glytoucan"`
	// IUPAC is the condensed IUPAC notation. Case-insensitive equality.
	IUPAC string `json:"iupac"`
	// WURCS is the WURCS notation. Case-insensitive equality.
	WURCS string `json:"wurcs"`
	// GLYCAM is the GLYCAM linear name; populated on archetypes only.
	GLYCAM string `json:"glycam"`
	// Mass is the molecular mass in Daltons, the default sort key for
	// search results.
	Mass float64 `json:"mass"`
}

// Record is one physical glycan entity in the catalog. Alpha and Beta are
// nil when that anomeric form has no entry. Records are immutable after
// catalog load.
type Record struct {
	InternalID string   `json:"-"`
	Archetype  Variant  `json:"archetype"`
	Alpha      *Variant `json:"alpha"`
	Beta       *Variant `json:"beta"`
}

// VariantByAnomer returns the requested variant, or nil when absent.
func (r *Record) VariantByAnomer(a Anomer) *Variant {
	switch a {
	case AnomerArchetype:
		return &r.Archetype
	case AnomerAlpha:
		return r.Alpha
	case AnomerBeta:
		return r.Beta
	}
	return nil
}

// Variants iterates the present variants in archetype, alpha, beta order.
func (r *Record) Variants(fn func(Anomer, *Variant) bool) {
	if !fn(AnomerArchetype, &r.Archetype) {
		return
	}
	if r.Alpha != nil && !fn(AnomerAlpha, r.Alpha) {
		return
	}
	if r.Beta != nil {
		fn(AnomerBeta, r.Beta)
	}
}
