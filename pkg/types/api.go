// Package types holds the wire-level request and response shapes of the
// public API. Kept outside internal/ so client code can import them.
package types

// ExistResponse answers an existence check. Channel names the resolution
// channel that matched and Anomer the matched variant; both are empty on a
// miss. Reason is the legacy human-readable form combining the two.
type ExistResponse struct {
	Exists  bool   `json:"exists"`
	Channel string `json:"channel,omitempty"`
	Anomer  string `json:"anomer,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	SearchString string `json:"search_string"`
	// SearchType selects the ranking mode: empty for automatic detection,
	// "end" for end-residue suffix matching, or a category name.
	SearchType string `json:"search_type,omitempty"`
}

// SearchResult is one ranked entry in a search response.
type SearchResult struct {
	GlyTouCan string  `json:"glytoucan,omitempty"`
	ID        string  `json:"ID"`
	Mass      float64 `json:"mass"`
	Score     float64 `json:"score,omitempty"`
}

// SearchResponse echoes the query alongside the ranked results.
type SearchResponse struct {
	SearchString string         `json:"search_string"`
	SearchType   string         `json:"search_type,omitempty"`
	Results      []SearchResult `json:"results"`
}

// GlycanRequest is the body of POST /api/request, asking for a glycan to be
// added to the database.
type GlycanRequest struct {
	GlyTouCan string `json:"glytoucan"`
	Comment   string `json:"comment,omitempty"`
}

// MessageResponse is a generic acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// AccessResponse reports whether a supplied pin grants raw-data access.
type AccessResponse struct {
	Authenticated bool `json:"authenticated"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
