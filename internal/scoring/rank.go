// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"sort"

	"github.com/pdiddy/crop-advisor/pkg/types"
)

// Rank scores every crop in catalog under env, sorts the results by score
// descending and returns the first topN. Crops with equal scores keep their
// catalog order. A topN of zero or less, or an empty catalog, yields an
// empty (non-nil) slice. When explain is true each result carries per-factor
// reasons. The catalog is not modified.
func (s *Scorer) Rank(env types.EnvironmentalData, catalog []types.CropData, topN int, explain bool) []types.ScoreResult {
	if topN <= 0 || len(catalog) == 0 {
		return []types.ScoreResult{}
	}

	results := make([]types.ScoreResult, len(catalog))
	for i, crop := range catalog {
		results[i] = s.score(env, crop, explain)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
