package abcnews

import "strings"

type memberKey struct {
	first      string
	last       string
	electorate string
}

// Dedupe removes records repeating a (first name, last name, electorate)
// key, keeping the first occurrence and preserving order. No field
// merging happens across duplicates, the earlier strategy's record wins
// outright.
func Dedupe(records []MemberRecord) []MemberRecord {
	seen := map[memberKey]bool{}
	out := make([]MemberRecord, 0, len(records))
	for _, record := range records {
		key := memberKey{
			first:      strings.ToLower(record.FirstName),
			last:       strings.ToLower(record.LastName),
			electorate: strings.ToLower(record.Electorate),
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, record)
	}
	return out
}
