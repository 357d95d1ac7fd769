package aggregator

// Keyed is a partial aggregate whose entity keys can be enumerated.
type Keyed[K comparable] interface {
	Keys() []K
}

// KeyList is a plain list of keys usable as a partial.
type KeyList[K comparable] []K

// Keys returns the list itself.
func (l KeyList[K]) Keys() []K { return l }

// OuterKeys returns the union of the keys of every partial. Order is
// first-seen, with earlier partials taking precedence.
func OuterKeys[K comparable](parts ...Keyed[K]) []K {
	seen := make(map[K]struct{})
	out := make([]K, 0)
	for _, p := range parts {
		if p == nil {
			continue
		}
		for _, k := range p.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

// JoinFill outer-joins the partials on their key and builds one row per key
// of the union. fill reads each partial through its zero-filling accessors
// (Tally.Get, Distinct.Count), so an entity missing from a partial yields
// integer zeros for that partial's columns rather than being dropped.
func JoinFill[K comparable, R any](fill func(K) R, parts ...Keyed[K]) []R {
	keys := OuterKeys(parts...)
	out := make([]R, 0, len(keys))
	for _, k := range keys {
		out = append(out, fill(k))
	}
	return out
}
