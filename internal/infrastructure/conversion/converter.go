// Package conversion wraps the external notation converters: the GlyCosmos
// glycanformatconverter service for IUPAC input and the MolWURCS tool for
// SMILES input. Converter failures are reported as ConversionUnavailable
// errors; callers degrade to raw-identifier matching instead of failing the
// request.
package conversion

import "context"

// IUPACResult is the converter response pair. Either field may be empty
// independent of the other; absence is not an error.
type IUPACResult struct {
	GlyTouCan string `json:"id"`
	WURCS     string `json:"WURCS"`
}

// IUPACConverter turns a condensed IUPAC string into its GlyTouCan
// accession and WURCS notation.
type IUPACConverter interface {
	IUPACToWURCS(ctx context.Context, iupac string) (*IUPACResult, error)
}

// SMILESConverter turns a SMILES string into WURCS notation. Used as a
// structural fallback when name-based conversion yields nothing.
type SMILESConverter interface {
	SMILESToWURCS(ctx context.Context, smiles string) (string, error)
}

// Observer records conversion attempts by converter and outcome. Satisfied
// by prometheus.Metrics; a nil Observer disables recording.
type Observer interface {
	ObserveConversion(converter, outcome string)
}

func observe(obs Observer, converter, outcome string) {
	if obs != nil {
		obs.ObserveConversion(converter, outcome)
	}
}
