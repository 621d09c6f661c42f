// Package resolver answers identifier existence and lookup queries by
// normalizing incoming identifiers toward canonical WURCS and probing the
// catalog through each identifier channel in precedence order.
package resolver

import (
	"context"

	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/conversion"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
)

// Candidate is the normalized form of one incoming identifier. WURCS fields
// are empty when no candidate could be derived; matching then proceeds on
// the raw identifier alone.
type Candidate struct {
	Raw  string
	Kind glycan.NotationKind

	// IUPAC is the derived condensed IUPAC string on the GLYCAM path.
	IUPAC string
	// GlyTouCan is the accession reported by the converter, when any.
	GlyTouCan string
	// WURCS is the canonical candidate.
	WURCS string
	// AlphaWURCS and BetaWURCS are derived from WURCS by anomer
	// substitution; set whenever WURCS is.
	AlphaWURCS string
	BetaWURCS  string
}

// Normalizer derives canonical WURCS candidates from raw identifiers.
type Normalizer struct {
	converter conversion.IUPACConverter
	log       logging.Logger
}

// NewNormalizer constructs a Normalizer. converter may be nil when no
// external conversion service is configured; IUPAC and GLYCAM inputs then
// produce no WURCS candidate.
func NewNormalizer(converter conversion.IUPACConverter, log logging.Logger) *Normalizer {
	return &Normalizer{converter: converter, log: log.Named("normalizer")}
}

// Normalize classifies the identifier and derives its WURCS candidate and
// anomer variants. Conversion failures degrade to a candidate without WURCS
// rather than returning an error; resolution falls back to raw matching.
func (n *Normalizer) Normalize(ctx context.Context, identifier string) *Candidate {
	cand := &Candidate{
		Raw:  identifier,
		Kind: glycan.DetectNotation(identifier),
	}

	switch cand.Kind {
	case glycan.NotationWURCS:
		cand.WURCS = identifier

	case glycan.NotationIUPAC:
		cand.WURCS, cand.GlyTouCan = n.convertIUPAC(ctx, identifier)

	case glycan.NotationGLYCAM:
		cand.IUPAC = glycan.GLYCAMToIUPAC(glycan.TrimReducingEnd(identifier))
		cand.WURCS, cand.GlyTouCan = n.convertIUPAC(ctx, cand.IUPAC)
	}

	if cand.WURCS != "" {
		cand.AlphaWURCS, cand.BetaWURCS = glycan.AnomerVariants(cand.WURCS)
	}
	return cand
}

func (n *Normalizer) convertIUPAC(ctx context.Context, iupac string) (wurcs, glytoucan string) {
	if n.converter == nil {
		return "", ""
	}
	result, err := n.converter.IUPACToWURCS(ctx, iupac)
	if err != nil {
		n.log.Warn("conversion unavailable, matching on raw identifier",
			logging.String("iupac", iupac),
			logging.Err(err),
		)
		return "", ""
	}
	return result.WURCS, result.GlyTouCan
}
