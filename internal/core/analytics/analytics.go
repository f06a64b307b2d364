// Package analytics turns flat record lists fetched from the upstream API
// into the grouped counts and averages the dashboard charts render. All
// functions are pure: no I/O, no mutation of the input, safe to recompute
// on every request.
package analytics

// GroupCount counts records per label produced by keyFn. keyFn is
// responsible for its own fallback label ("Unassigned", "Unknown", ...)
// so absent key values still land in a bucket.
func GroupCount[T any](records []T, keyFn func(T) string) map[string]int {
	out := make(map[string]int, len(records))
	for _, r := range records {
		out[keyFn(r)]++
	}
	return out
}

// GroupAverage averages valueFn per label produced by keyFn. A label only
// exists because at least one record produced it, so the division is safe
// by construction.
func GroupAverage[T any](records []T, keyFn func(T) string, valueFn func(T) float64) map[string]float64 {
	sums := make(map[string]float64, len(records))
	counts := make(map[string]int, len(records))
	for _, r := range records {
		k := keyFn(r)
		sums[k] += valueFn(r)
		counts[k]++
	}
	out := make(map[string]float64, len(sums))
	for k, sum := range sums {
		out[k] = sum / float64(counts[k])
	}
	return out
}

// GroupSum sums valueFn per label produced by keyFn
func GroupSum[T any](records []T, keyFn func(T) string, valueFn func(T) float64) map[string]float64 {
	out := make(map[string]float64, len(records))
	for _, r := range records {
		out[keyFn(r)] += valueFn(r)
	}
	return out
}

// Average averages valueFn over all records, returning 0 for an empty
// list instead of NaN.
func Average[T any](records []T, valueFn func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += valueFn(r)
	}
	return sum / float64(len(records))
}

// Distinct counts distinct labels produced by keyFn
func Distinct[T any](records []T, keyFn func(T) string) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[keyFn(r)] = struct{}{}
	}
	return len(seen)
}
