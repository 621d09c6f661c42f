// Package catalog holds the in-memory snapshot of all glycan records. The
// snapshot is built once at startup and is read-only afterwards, so lookups
// need no locking.
package catalog

import (
	"sort"
	"strings"

	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
)

// VariantRef points at one anomeric form of one record. It is what the
// secondary indexes resolve to.
type VariantRef struct {
	RecordID string
	Anomer   glycan.Anomer
}

// Index is the immutable catalog snapshot. GlyTouCan keys are
// case-sensitive; IUPAC, WURCS and GLYCAM keys are folded to lower case.
// When two records share a key the record with the smaller internal ID wins,
// matching the first-match-wins resolution contract.
type Index struct {
	records map[string]*glycan.Record
	ordered []*glycan.Record

	byGlyTouCan map[string]VariantRef
	byIUPAC     map[string]VariantRef
	byWURCS     map[string][]VariantRef
	byGLYCAM    map[string]VariantRef
}

// NewIndex builds a snapshot from internalID-keyed records. Records are
// indexed in ascending internal ID order so duplicate-key resolution is
// deterministic.
func NewIndex(records map[string]*glycan.Record) *Index {
	idx := &Index{
		records:     make(map[string]*glycan.Record, len(records)),
		ordered:     make([]*glycan.Record, 0, len(records)),
		byGlyTouCan: make(map[string]VariantRef),
		byIUPAC:     make(map[string]VariantRef),
		byWURCS:     make(map[string][]VariantRef),
		byGLYCAM:    make(map[string]VariantRef),
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		rec := records[id]
		rec.InternalID = id
		idx.records[id] = rec
		idx.ordered = append(idx.ordered, rec)

		rec.Variants(func(anomer glycan.Anomer, v *glycan.Variant) bool {
			ref := VariantRef{RecordID: id, Anomer: anomer}
			if v.GlyTouCan != "" {
				if _, dup := idx.byGlyTouCan[v.GlyTouCan]; !dup {
					idx.byGlyTouCan[v.GlyTouCan] = ref
				}
			}
			if v.IUPAC != "" {
				key := strings.ToLower(v.IUPAC)
				if _, dup := idx.byIUPAC[key]; !dup {
					idx.byIUPAC[key] = ref
				}
			}
			if v.WURCS != "" {
				key := strings.ToLower(v.WURCS)
				idx.byWURCS[key] = append(idx.byWURCS[key], ref)
			}
			if anomer == glycan.AnomerArchetype && v.GLYCAM != "" {
				key := strings.ToLower(v.GLYCAM)
				if _, dup := idx.byGLYCAM[key]; !dup {
					idx.byGLYCAM[key] = ref
				}
			}
			return true
		})
	}
	return idx
}

// Len returns the number of records in the snapshot.
func (idx *Index) Len() int { return len(idx.ordered) }

// Get returns the record with the given internal ID.
func (idx *Index) Get(internalID string) (*glycan.Record, bool) {
	rec, ok := idx.records[internalID]
	return rec, ok
}

// Records returns all records in ascending internal ID order. Callers must
// not modify the returned slice or the records it points to.
func (idx *Index) Records() []*glycan.Record { return idx.ordered }

// ByGlyTouCan looks up an accession, case-sensitively, across all variants.
func (idx *Index) ByGlyTouCan(accession string) (VariantRef, bool) {
	ref, ok := idx.byGlyTouCan[accession]
	return ref, ok
}

// ByIUPAC looks up a condensed IUPAC string, case-insensitively, across all
// variants.
func (idx *Index) ByIUPAC(iupac string) (VariantRef, bool) {
	ref, ok := idx.byIUPAC[strings.ToLower(iupac)]
	return ref, ok
}

// ByGLYCAM looks up a GLYCAM name, case-insensitively, against archetype
// variants only.
func (idx *Index) ByGLYCAM(glycam string) (VariantRef, bool) {
	ref, ok := idx.byGLYCAM[strings.ToLower(glycam)]
	return ref, ok
}

// ByWURCS looks up a WURCS string, case-insensitively, across all variants.
// The first reference in index order is returned.
func (idx *Index) ByWURCS(wurcs string) (VariantRef, bool) {
	refs := idx.byWURCS[strings.ToLower(wurcs)]
	if len(refs) == 0 {
		return VariantRef{}, false
	}
	return refs[0], true
}

// ByWURCSAnomer looks up a WURCS string restricted to a single anomer
// field, used when probing derived alpha/beta candidates against their
// respective catalog columns.
func (idx *Index) ByWURCSAnomer(wurcs string, anomer glycan.Anomer) (VariantRef, bool) {
	for _, ref := range idx.byWURCS[strings.ToLower(wurcs)] {
		if ref.Anomer == anomer {
			return ref, true
		}
	}
	return VariantRef{}, false
}

// Resolve returns the record and variant a reference points at.
func (idx *Index) Resolve(ref VariantRef) (*glycan.Record, *glycan.Variant, bool) {
	rec, ok := idx.records[ref.RecordID]
	if !ok {
		return nil, nil, false
	}
	v := rec.VariantByAnomer(ref.Anomer)
	if v == nil {
		return nil, nil, false
	}
	return rec, v, true
}
