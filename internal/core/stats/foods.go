package stats

import (
	"cmp"
	"maps"
	"slices"

	"peoplestats/internal/core/people"
	perr "peoplestats/internal/platform/errors"
)

// FoodCount is one ranked favourite food
type FoodCount struct {
	Food  string
	Count int
}

// FoodFrequencies folds the dataset into food -> number of people
func FoodFrequencies(ds people.Dataset) map[string]int {
	freq := make(map[string]int)
	for _, r := range ds.All() {
		freq[r.FavouriteFood]++
	}
	return freq
}

// TopFavouriteFoods returns at most n foods, most popular first.
// Equal counts are ordered by name ascending. Fewer distinct foods than n
// yields a shorter list
func TopFavouriteFoods(ds people.Dataset, n int) ([]FoodCount, error) {
	if n < 1 {
		return nil, perr.InvalidArgf("top foods: n must be at least 1, got %d", n)
	}
	if ds.Len() == 0 {
		return nil, perr.ErrEmptyDataset
	}
	freq := FoodFrequencies(ds)

	ranked := make([]FoodCount, 0, len(freq))
	for _, food := range slices.Sorted(maps.Keys(freq)) {
		ranked = append(ranked, FoodCount{Food: food, Count: freq[food]})
	}
	slices.SortStableFunc(ranked, func(a, b FoodCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return ranked[:min(n, len(ranked))], nil
}
