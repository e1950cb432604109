package pagination

import (
	"fmt"
	"strconv"
)

// Params is an offset/limit window parsed from query parameters.
type Params struct {
	Limit  int
	Offset int
}

// Parse reads the limit and offset query values. Empty values yield zero,
// which the stores replace with their defaults.
func Parse(limitStr, offsetStr string) (Params, error) {
	var p Params
	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return Params{}, fmt.Errorf("invalid limit %q", limitStr)
		}
		p.Limit = limit
	}
	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return Params{}, fmt.Errorf("invalid offset %q", offsetStr)
		}
		p.Offset = offset
	}
	return p, nil
}

// Meta describes where a page sits within the full result.
type Meta struct {
	Total      int  `json:"total"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	HasMore    bool `json:"hasMore"`
	NextOffset *int `json:"nextOffset,omitempty"`
}

// NewMeta builds page metadata for a page of size returned items.
func NewMeta(total, limit, offset, returned int) Meta {
	m := Meta{Total: total, Limit: limit, Offset: offset}
	next := offset + returned
	if returned > 0 && next < total {
		m.HasMore = true
		m.NextOffset = &next
	}
	return m
}
