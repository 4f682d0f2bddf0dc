package analytics

// BuildLookup indexes rows by the given key. Duplicate keys keep the last
// row seen; inputs are expected unique by primary key, so this only matters
// for malformed data.
func BuildLookup[K comparable, R any](rows []R, key func(R) K) map[K]R {
	m := make(map[K]R, len(rows))
	for _, r := range rows {
		m[key(r)] = r
	}
	return m
}

// GroupBy collects rows sharing a key into lists, preserving input order
// within each group. Used for one-to-many relations such as order → items.
func GroupBy[K comparable, R any](rows []R, key func(R) K) map[K][]R {
	m := make(map[K][]R)
	for _, r := range rows {
		k := key(r)
		m[k] = append(m[k], r)
	}
	return m
}

// Resolve returns the value stored under key, or def when the key is
// absent. Missing join targets always resolve to an explicit caller-supplied
// default rather than failing.
func Resolve[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// UniqueKeys returns the distinct keys of rows in first-seen order.
func UniqueKeys[K comparable, R any](rows []R, key func(R) K) []K {
	seen := make(map[K]struct{}, len(rows))
	keys := make([]K, 0, len(rows))
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
