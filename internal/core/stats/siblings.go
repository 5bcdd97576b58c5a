package stats

import (
	"peoplestats/internal/core/people"
	perr "peoplestats/internal/platform/errors"
)

// AverageSiblings returns ceil(sum(siblings) / count)
// An empty dataset is an error, not zero
func AverageSiblings(ds people.Dataset) (int, error) {
	n := int64(ds.Len())
	if n == 0 {
		return 0, perr.ErrEmptyDataset
	}
	var sum int64
	for _, r := range ds.All() {
		sum += int64(r.Siblings)
	}
	// siblings are non-negative, so integer ceiling division is exact
	return int((sum + n - 1) / n), nil
}
