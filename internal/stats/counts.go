package stats

import "sort"

// ValueCount is one group of a value-count aggregation.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CountValues groups values, counts members per group and orders groups by
// count descending. Ties keep first-encountered order (stable sort on count
// desc, first-position asc), so output is deterministic. limit <= 0 returns
// the full distribution; otherwise the result is truncated to the top limit
// groups. The returned slice is never nil.
func CountValues(values []string, limit int) []ValueCount {
	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	out := make([]ValueCount, 0, len(order))
	for _, v := range order {
		out = append(out, ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DistinctSorted returns the unique values in ascending lexical order.
func DistinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
