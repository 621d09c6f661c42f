package glycan

import (
	"strconv"
	"strings"

	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// WURCSPrefix begins every WURCS string.
const WURCSPrefix = "WURCS="

// WURCSParts is the structural breakdown of a WURCS string. It is derived
// per request and never stored.
type WURCSParts struct {
	UniqueResCount int
	ResCount       int
	LinCount       int
	// UniqueResList holds the distinct residue descriptors without their
	// enclosing brackets, in declaration order.
	UniqueResList []string
	// ResSequence maps sequence positions to 1-based indexes into
	// UniqueResList.
	ResSequence []int
	// LinList holds the linkage descriptors in declaration order.
	LinList []string
}

// SplitWURCS parses a WURCS string into its structural parts. The grammar is
//
//	WURCS=<version>/<a>,<b>,<c>/[res]...[res]/<seq>/<linkages>
//
// where a is the unique-residue count, b the residue count and c the linkage
// count. Residue descriptors may nest brackets, so extraction matches
// balanced outer brackets. A string whose section counts or list lengths
// disagree with the header is rejected outright; there is no partial result.
// Linkage references are not semantically validated against the sequence.
func SplitWURCS(wurcs string) (*WURCSParts, error) {
	s := strings.TrimSpace(wurcs)
	if !strings.HasPrefix(s, WURCSPrefix) {
		return nil, apperrors.ParseError("WURCS string must start with WURCS=")
	}
	s = s[len(WURCSPrefix):]

	// version section, e.g. "2.0"
	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return nil, apperrors.ParseError("WURCS string missing version separator")
	}
	s = s[slash+1:]

	// header counts "a,b,c"
	slash = strings.IndexByte(s, '/')
	if slash < 0 {
		return nil, apperrors.ParseError("WURCS string missing count header")
	}
	header := s[:slash]
	s = s[slash+1:]

	counts := strings.Split(header, ",")
	if len(counts) != 3 {
		return nil, apperrors.Newf(apperrors.ErrCodeParseError,
			"WURCS count header %q must have three comma-separated fields", header)
	}
	parts := &WURCSParts{}
	var err error
	if parts.UniqueResCount, err = strconv.Atoi(counts[0]); err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeParseError, "WURCS unique residue count %q is not an integer", counts[0])
	}
	if parts.ResCount, err = strconv.Atoi(counts[1]); err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeParseError, "WURCS residue count %q is not an integer", counts[1])
	}
	if parts.LinCount, err = strconv.Atoi(counts[2]); err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeParseError, "WURCS linkage count %q is not an integer", counts[2])
	}
	if parts.UniqueResCount < 0 || parts.ResCount < 0 || parts.LinCount < 0 {
		return nil, apperrors.Newf(apperrors.ErrCodeParseError, "WURCS count header %q has a negative count", header)
	}

	parts.UniqueResList = make([]string, 0, parts.UniqueResCount)
	for i := 0; i < parts.UniqueResCount; i++ {
		tok, rest, err := takeBracketed(s)
		if err != nil {
			return nil, err
		}
		parts.UniqueResList = append(parts.UniqueResList, tok)
		s = rest
	}

	// Everything after the residue section must be exactly
	// "/<sequence>/<linkages>".
	tail := strings.Split(s, "/")
	if len(tail) != 3 || tail[0] != "" {
		return nil, apperrors.Newf(apperrors.ErrCodeParseError,
			"WURCS string has %d sections after the residue list, want sequence and linkages", len(tail)-1)
	}

	if tail[1] != "" {
		for _, tok := range strings.Split(tail[1], "-") {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, apperrors.Newf(apperrors.ErrCodeParseError, "WURCS residue sequence entry %q is not an integer", tok)
			}
			parts.ResSequence = append(parts.ResSequence, n)
		}
	}
	if tail[2] != "" {
		parts.LinList = strings.Split(tail[2], "_")
	}

	if len(parts.ResSequence) != parts.ResCount {
		return nil, apperrors.Newf(apperrors.ErrCodeParseError,
			"WURCS residue sequence has %d entries, header declares %d", len(parts.ResSequence), parts.ResCount)
	}
	if len(parts.LinList) != parts.LinCount {
		return nil, apperrors.Newf(apperrors.ErrCodeParseError,
			"WURCS linkage list has %d entries, header declares %d", len(parts.LinList), parts.LinCount)
	}
	return parts, nil
}

// takeBracketed consumes one balanced [...] token from the front of s and
// returns its inner content along with the remaining string.
func takeBracketed(s string) (string, string, error) {
	if s == "" || s[0] != '[' {
		return "", "", apperrors.ParseError("WURCS residue list ended before the declared residue count was reached")
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], nil
			}
		}
	}
	return "", "", apperrors.ParseError("WURCS residue descriptor has an unbalanced bracket")
}

// AnomerVariants derives the alpha and beta WURCS strings from an
// anomer-unspecified one. The placeholder character x marks undetermined
// anomeric configuration; alpha substitutes a, beta substitutes b. The
// transform is a literal whole-string substitution with no further
// interpretation.
func AnomerVariants(wurcs string) (alpha, beta string) {
	alpha = strings.ReplaceAll(wurcs, "x", "a")
	beta = strings.ReplaceAll(wurcs, "x", "b")
	return alpha, beta
}
