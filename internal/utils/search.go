package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSearch trims a free-text search term and folds it to NFC, so
// decomposed Cyrillic input (e.g. "й" typed as "и" + breve) matches stored text.
func NormalizeSearch(term string) string {
	return norm.NFC.String(strings.TrimSpace(term))
}
