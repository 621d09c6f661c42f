package search

import (
	"strconv"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
)

// Structural scoring weights. Exact component-count agreement is rewarded,
// disagreement penalized proportionally, and the residue/linkage content
// compared by fuzzy partial ratio on a 0-100 scale.
const (
	countMatchBonus    = 50.0
	countDiffPenalty   = 10.0
	uniqueDiffPenalty  = 5.0
	substringTermBonus = 30.0
)

func structuralScore(query, target *glycan.WURCSParts) float64 {
	score := 0.0

	if query.ResCount == target.ResCount {
		score += countMatchBonus
	} else {
		score -= countDiffPenalty * absDiff(query.ResCount, target.ResCount)
	}
	if query.LinCount == target.LinCount {
		score += countMatchBonus
	} else {
		score -= countDiffPenalty * absDiff(query.LinCount, target.LinCount)
	}
	score -= uniqueDiffPenalty * absDiff(query.UniqueResCount, target.UniqueResCount)

	score += float64(fuzzy.PartialRatio(
		strings.Join(query.UniqueResList, " "),
		strings.Join(target.UniqueResList, " "),
	))
	score += float64(fuzzy.PartialRatio(
		joinSequence(query.ResSequence),
		joinSequence(target.ResSequence),
	))
	score += float64(fuzzy.PartialRatio(
		strings.Join(query.LinList, " "),
		strings.Join(target.LinList, " "),
	))
	return score
}

func absDiff(a, b int) float64 {
	if a > b {
		return float64(a - b)
	}
	return float64(b - a)
}

func joinSequence(seq []int) string {
	parts := make([]string, len(seq))
	for i, n := range seq {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}

// textBlob concatenates the searchable identifier fields of every variant,
// lower-cased, for free-text matching.
func textBlob(rec *glycan.Record) string {
	var sb strings.Builder
	rec.Variants(func(_ glycan.Anomer, v *glycan.Variant) bool {
		for _, field := range []string{v.GlyTouCan, v.IUPAC, v.ID} {
			if field != "" {
				sb.WriteString(strings.ToLower(field))
				sb.WriteByte(' ')
			}
		}
		return true
	})
	return strings.TrimSpace(sb.String())
}

// textScore sums per-term partial-ratio scores against the blob with a flat
// bonus for exact substring occurrence. Terms are expected lower-cased.
func textScore(terms []string, blob string) float64 {
	if blob == "" {
		return 0
	}
	score := 0.0
	for _, term := range terms {
		score += float64(fuzzy.PartialRatio(term, blob))
		if strings.Contains(blob, term) {
			score += substringTermBonus
		}
	}
	return score
}
