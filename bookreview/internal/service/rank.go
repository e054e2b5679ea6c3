package service

import (
	"sort"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
)

// rankByFavorites orders books by the position of their affinity value in
// favorites, then by id. Values missing from favorites sort last.
func rankByFavorites(books []model.Book, affinity model.Affinity, favorites []string) []model.Book {
	rank := make(map[string]int, len(favorites))
	for i, v := range favorites {
		if _, ok := rank[v]; !ok {
			rank[v] = i
		}
	}
	pos := func(b model.Book) int {
		if r, ok := rank[affinity.Of(b)]; ok {
			return r
		}
		return len(favorites)
	}

	out := make([]model.Book, len(books))
	copy(out, books)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := pos(out[i]), pos(out[j])
		if pi != pj {
			return pi < pj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// rankByRelatedCount orders by related user count desc, then id.
func rankByRelatedCount(scored []model.ScoredBook) []model.Book {
	sorted := make([]model.ScoredBook, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].RelatedCount != sorted[j].RelatedCount {
			return sorted[i].RelatedCount > sorted[j].RelatedCount
		}
		return sorted[i].ID < sorted[j].ID
	})

	books := make([]model.Book, 0, len(sorted))
	for _, sb := range sorted {
		books = append(books, sb.Book)
	}
	return books
}
