// Package search ranks catalog records against structural WURCS queries,
// free-text queries, end-residue suffixes and category filters. All queries
// are pure functions of the immutable catalog snapshot, so the engine
// precomputes parsed WURCS breakdowns and text blobs at construction time.
package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/glycoshape/glycoshape-api/internal/catalog"
	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
)

// Hit is one ranked search result.
type Hit struct {
	Record *glycan.Record
	Score  float64
}

type indexedRecord struct {
	record *glycan.Record
	// parts is the parsed archetype WURCS, nil when absent or malformed.
	parts *glycan.WURCSParts
	// blob is the lower-cased free-text haystack.
	blob string
}

// Engine answers search queries over one catalog snapshot. Limits and
// thresholds can be swapped at runtime; the precomputed record material is
// immutable.
type Engine struct {
	mu      sync.RWMutex
	cfg     config.SearchConfig
	records []indexedRecord
	log     logging.Logger
}

// NewEngine precomputes per-record search material from the snapshot.
// Records whose archetype WURCS fails to parse simply drop out of
// structural ranking; they stay searchable by text.
func NewEngine(index *catalog.Index, cfg config.SearchConfig, log logging.Logger) *Engine {
	e := &Engine{cfg: cfg, log: log.Named("search")}

	malformed := 0
	for _, rec := range index.Records() {
		ir := indexedRecord{record: rec, blob: textBlob(rec)}
		if rec.Archetype.WURCS != "" {
			parts, err := glycan.SplitWURCS(rec.Archetype.WURCS)
			if err != nil {
				malformed++
			} else {
				ir.parts = parts
			}
		}
		e.records = append(e.records, ir)
	}
	if malformed > 0 {
		e.log.Warn("records excluded from structural search",
			logging.Int("malformed_wurcs", malformed),
		)
	}
	return e
}

// SetConfig replaces the limits and threshold, for configuration
// hot-reloads. Safe to call concurrently with queries.
func (e *Engine) SetConfig(cfg config.SearchConfig) {
	e.mu.Lock()
	e.cfg = cfg
	e.mu.Unlock()
}

func (e *Engine) config() config.SearchConfig {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// Structural ranks every record with a parseable archetype WURCS against
// the query and returns the top hits. A malformed query is a parse error.
func (e *Engine) Structural(queryWURCS string) ([]Hit, error) {
	query, err := glycan.SplitWURCS(queryWURCS)
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(e.records))
	for _, ir := range e.records {
		if ir.parts == nil {
			continue
		}
		hits = append(hits, Hit{
			Record: ir.record,
			Score:  structuralScore(query, ir.parts),
		})
	}
	sortHits(hits)
	return capHits(hits, e.config().StructuralLimit), nil
}

// FreeText ranks records against a whitespace-separated term list. Records
// scoring at or below the threshold are dropped.
func (e *Engine) FreeText(query string) []Hit {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	cfg := e.config()
	var hits []Hit
	for _, ir := range e.records {
		score := textScore(terms, ir.blob)
		if score > cfg.TextThreshold {
			hits = append(hits, Hit{Record: ir.record, Score: score})
		}
	}
	sortHits(hits)
	return capHits(hits, cfg.TextLimit)
}

// EndResidue returns records whose archetype IUPAC ends with the supplied
// residue string, sorted ascending by mass.
func (e *Engine) EndResidue(residue string) []Hit {
	var hits []Hit
	for _, ir := range e.records {
		iupac := ir.record.Archetype.IUPAC
		if iupac != "" && strings.HasSuffix(iupac, residue) {
			hits = append(hits, Hit{Record: ir.record})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Record.Archetype.Mass < hits[j].Record.Archetype.Mass
	})
	return hits
}

// Category returns records whose archetype IUPAC belongs to the class,
// sorted ascending by mass.
func (e *Engine) Category(cat glycan.Category) []Hit {
	var hits []Hit
	for _, ir := range e.records {
		if glycan.InCategory(ir.record.Archetype.IUPAC, cat) {
			hits = append(hits, Hit{Record: ir.record})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Record.Archetype.Mass < hits[j].Record.Archetype.Mass
	})
	return hits
}

// All returns every record, unranked, in catalog order.
func (e *Engine) All() []Hit {
	hits := make([]Hit, 0, len(e.records))
	for _, ir := range e.records {
		hits = append(hits, Hit{Record: ir.record})
	}
	return hits
}

// sortHits orders by score descending with internal ID ascending as the
// deterministic tie-break.
func sortHits(hits []Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Record.InternalID < hits[j].Record.InternalID
	})
}

func capHits(hits []Hit, limit int) []Hit {
	if limit > 0 && len(hits) > limit {
		return hits[:limit]
	}
	return hits
}
