package engine

import (
	"slices"
	"strings"
)

// explicitKeywords are matched case-insensitively against title and overview.
var explicitKeywords = []string{
	"porn",
	"xxx",
	"erotic",
	"hentai",
	"softcore",
	"hardcore sex",
	"adult film",
	"adult movie",
	"playboy",
	"sex tape",
	"nude",
}

// FilterContent drops adult and explicit titles. The result is an
// order-preserving subsequence of movies and FilterContent is idempotent.
func FilterContent(movies []Movie) []Movie {
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if IsExplicit(m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// IsExplicit reports whether a movie is excluded by FilterContent.
func IsExplicit(m Movie) bool {
	if m.Adult {
		return true
	}

	title := strings.ToLower(m.Title)
	overview := strings.ToLower(m.Overview)
	for _, kw := range explicitKeywords {
		if strings.Contains(title, kw) || strings.Contains(overview, kw) {
			return true
		}
	}

	// Mislabeled adult titles tend to hide under Documentary.
	if slices.Contains(m.GenreIDs, DocumentaryGenreID) && strings.Contains(title, "sex") {
		return true
	}

	return false
}
