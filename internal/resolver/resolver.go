package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/glycoshape/glycoshape-api/internal/catalog"
	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// FolderProbe answers whether raw or uploaded data already exists on disk
// for an identifier. Implemented by the storage layer.
type FolderProbe interface {
	// HasFolder reports whether a directory named after the identifier
	// exists under any probed root.
	HasFolder(name string) bool
	// Folders lists the directory names under the probed roots, for the
	// similar-name heuristic.
	Folders() []string
}

// Existence is the structured answer to an existence check. Channel is one
// of a fixed set of channel names ("Folder", "Similar Name", "GlyTouCan",
// "IUPAC", "GLYCAM", "WURCS", "None"); Reason adds the matched variant and,
// for similar-name hits, the sibling folder.
type Existence struct {
	Found    bool          `json:"found"`
	Channel  string        `json:"channel"`
	Reason   string        `json:"reason"`
	RecordID string        `json:"id,omitempty"`
	Anomer   glycan.Anomer `json:"anomer,omitempty"`
}

// similarNameSuffixLen is how many trailing characters the similar-folder
// heuristic ignores, matching the length of a reducing-end marker like
// "b1-OH". Empirically chosen in the original dataset tooling; kept as-is.
const similarNameSuffixLen = 5

// Service runs identifier resolution against the catalog snapshot.
type Service struct {
	index      *catalog.Index
	normalizer *Normalizer
	probe      FolderProbe
	log        logging.Logger
}

// NewService constructs the resolution service. probe may be nil when no
// filesystem roots are configured; the folder channels are then skipped.
func NewService(index *catalog.Index, normalizer *Normalizer, probe FolderProbe, log logging.Logger) *Service {
	return &Service{
		index:      index,
		normalizer: normalizer,
		probe:      probe,
		log:        log.Named("resolver"),
	}
}

func channelReason(channel string, anomer glycan.Anomer) string {
	return fmt.Sprintf("%s Match (%s)", channel, anomerLabel(anomer))
}

func anomerLabel(a glycan.Anomer) string {
	switch a {
	case glycan.AnomerAlpha:
		return "Alpha"
	case glycan.AnomerBeta:
		return "Beta"
	default:
		return "Archetype"
	}
}

// Exists answers "does identifier X exist" by walking the resolution
// channels in precedence order: on-disk folder, similar folder name,
// GlyTouCan, IUPAC, GLYCAM, then WURCS including derived anomer candidates.
// The first hit wins and short-circuits.
func (s *Service) Exists(ctx context.Context, identifier string) Existence {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return Existence{Found: false, Channel: "None", Reason: "Empty Identifier"}
	}

	if s.probe != nil {
		if s.probe.HasFolder(identifier) {
			return Existence{Found: true, Channel: "Folder", Reason: "Folder Match"}
		}
		if sibling, ok := s.similarFolder(identifier); ok {
			return Existence{
				Found:   true,
				Channel: "Similar Name",
				Reason:  fmt.Sprintf("Similar Name Match (%s)", sibling),
			}
		}
	}

	if ref, ok := s.index.ByGlyTouCan(identifier); ok {
		return s.found("GlyTouCan", ref)
	}
	if ref, ok := s.index.ByIUPAC(identifier); ok {
		return s.found("IUPAC", ref)
	}
	if ref, ok := s.index.ByGLYCAM(identifier); ok {
		return s.found("GLYCAM", ref)
	}

	cand := s.normalizer.Normalize(ctx, identifier)
	if cand.Kind == glycan.NotationWURCS {
		if ref, ok := s.index.ByWURCS(cand.Raw); ok {
			return s.found("WURCS", ref)
		}
	}
	if cand.WURCS != "" && cand.WURCS != cand.Raw {
		if ref, ok := s.index.ByWURCS(cand.WURCS); ok {
			return s.found("WURCS", ref)
		}
	}
	if cand.AlphaWURCS != "" {
		if ref, ok := s.index.ByWURCSAnomer(cand.AlphaWURCS, glycan.AnomerAlpha); ok {
			return s.found("WURCS", ref)
		}
	}
	if cand.BetaWURCS != "" {
		if ref, ok := s.index.ByWURCSAnomer(cand.BetaWURCS, glycan.AnomerBeta); ok {
			return s.found("WURCS", ref)
		}
	}

	return Existence{Found: false, Channel: "None", Reason: "Not Found"}
}

func (s *Service) found(channel string, ref catalog.VariantRef) Existence {
	return Existence{
		Found:    true,
		Channel:  channel,
		Reason:   channelReason(channel, ref.Anomer),
		RecordID: ref.RecordID,
		Anomer:   ref.Anomer,
	}
}

// similarFolder looks for a sibling folder of identical length sharing the
// identifier's prefix minus its reducing-end suffix. A hit is read as "same
// glycan, different reducing end already present". GlyTouCan-shaped names
// and short names never match.
func (s *Service) similarFolder(identifier string) (string, bool) {
	if len(identifier) <= similarNameSuffixLen || glycan.IsGlyTouCanID(identifier) {
		return "", false
	}
	prefix := identifier[:len(identifier)-similarNameSuffixLen]
	for _, name := range s.probe.Folders() {
		if len(name) == len(identifier) && name != identifier && strings.HasPrefix(name, prefix) {
			return name, true
		}
	}
	return "", false
}

// GetRecord fetches the full record for an identifier: internal ID first,
// then GlyTouCan across all variants, then exact IUPAC when the identifier
// carries parenthesized linkages. Partial matches are never merged.
func (s *Service) GetRecord(ctx context.Context, identifier string) (*glycan.Record, error) {
	_, rec, err := s.resolveRef(ctx, identifier)
	return rec, err
}

// ResolveEntryFiles resolves an identifier to the internal ID and anomer
// whose files should be served. The anomer matters because structure files
// on disk are anomer-labeled and the caller prefers the matched form.
func (s *Service) ResolveEntryFiles(ctx context.Context, identifier string) (string, glycan.Anomer, error) {
	ref, _, err := s.resolveRef(ctx, identifier)
	if err != nil {
		return "", "", err
	}
	return ref.RecordID, ref.Anomer, nil
}

func (s *Service) resolveRef(_ context.Context, identifier string) (catalog.VariantRef, *glycan.Record, error) {
	identifier = strings.TrimSpace(identifier)

	if rec, ok := s.index.Get(identifier); ok {
		return catalog.VariantRef{RecordID: rec.InternalID, Anomer: glycan.AnomerArchetype}, rec, nil
	}
	if ref, ok := s.index.ByGlyTouCan(identifier); ok {
		rec, _, _ := s.index.Resolve(ref)
		return ref, rec, nil
	}
	if strings.Contains(identifier, "(") {
		if ref, ok := s.index.ByIUPAC(identifier); ok {
			rec, _, _ := s.index.Resolve(ref)
			return ref, rec, nil
		}
	}
	return catalog.VariantRef{}, nil, apperrors.Newf(apperrors.ErrCodeGlycanNotFound,
		"no catalog entry for identifier %q", identifier)
}
