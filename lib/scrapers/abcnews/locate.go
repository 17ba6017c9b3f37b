package abcnews

import "sort"

// key names the electorate list has been published under, most recent
// feeds first
var preferredListKeys = []string{
	"electorates", "seats", "results", "contests", "candidates", "data", "items",
}

// findRecordList digs the per-electorate array out of an arbitrarily
// nested payload without relying on a fixed schema path. Preferred keys
// are tried at each object level; failing those, a depth-first search
// returns the first non-empty array anywhere below. Returns nil when the
// payload holds no candidate array at all.
//
// json decoding loses object key order, so the fallback search walks
// keys in sorted order to stay deterministic run to run.
func findRecordList(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		for _, key := range preferredListKeys {
			val, ok := v[key]
			if !ok {
				continue
			}
			switch inner := val.(type) {
			case []any:
				return inner
			case map[string]any:
				if found := findRecordList(inner); found != nil {
					return found
				}
			}
		}

		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if found := findRecordList(v[key]); len(found) > 0 {
				return found
			}
		}
	}
	return nil
}
