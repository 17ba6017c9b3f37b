// Package parties normalizes the raw party labels the news feeds attach to
// candidates. The same party appears as "Labor", "ALP" or a nested object
// depending on the election and feed revision, while downstream storage
// keys on one canonical name per party.
package parties

import "strings"

type Party struct {
	Name string
	Code string
}

// Tables is the immutable alias data a Canonicalizer operates on.
// Alias lookup is exact-match, fuzzy matching at this stage would risk
// merging genuinely distinct minor parties.
type Tables struct {
	// raw label or alias -> canonical party name
	Aliases map[string]string
	// canonical name or direct alias -> short code
	Codes map[string]string
}

// Default returns the known taxonomy across federal and state elections.
func Default() Tables {
	return Tables{
		Aliases: map[string]string{
			"Australian Labor Party":        "Australian Labor Party",
			"Labor":                         "Australian Labor Party",
			"Labour":                        "Australian Labor Party",
			"ALP":                           "Australian Labor Party",
			"Liberal Party of Australia":    "Liberal Party of Australia",
			"Liberal":                       "Liberal Party of Australia",
			"Liberal Party":                 "Liberal Party of Australia",
			"LIB":                           "Liberal Party of Australia",
			"National Party of Australia":   "National Party of Australia",
			"National Party":                "National Party of Australia",
			"Nationals":                     "National Party of Australia",
			"The Nationals":                 "National Party of Australia",
			"NAT":                           "National Party of Australia",
			"Australian Greens":             "Australian Greens",
			"Greens":                        "Australian Greens",
			"The Greens":                    "Australian Greens",
			"GRN":                           "Australian Greens",
			"Liberal National Party":        "Liberal National Party of Queensland",
			"Liberal National":              "Liberal National Party of Queensland",
			"LNP":                           "Liberal National Party of Queensland",
			"Pauline Hanson's One Nation":   "Pauline Hanson's One Nation",
			"One Nation":                    "Pauline Hanson's One Nation",
			"PHON":                          "Pauline Hanson's One Nation",
			"Katter's Australian Party":     "Katter's Australian Party",
			"KAP":                           "Katter's Australian Party",
			"Centre Alliance":               "Centre Alliance",
			"Country Liberal Party":         "Country Liberal Party",
			"Country Liberal":               "Country Liberal Party",
			"CLP":                           "Country Liberal Party",
			"United Australia Party":        "United Australia Party",
			"UAP":                           "United Australia Party",
			"Shooters, Fishers and Farmers": "Shooters, Fishers and Farmers Party",
			"Shooters Fishers and Farmers":  "Shooters, Fishers and Farmers Party",
			"SFF":                           "Shooters, Fishers and Farmers Party",
			"Jacqui Lambie Network":         "Jacqui Lambie Network",
			"JLN":                           "Jacqui Lambie Network",
			"Independent":                   "Independent",
			"IND":                           "Independent",
		},
		Codes: map[string]string{
			"Australian Labor Party":               "ALP",
			"Labor":                                "ALP",
			"Liberal Party of Australia":           "LIB",
			"Liberal":                              "LIB",
			"National Party of Australia":          "NAT",
			"Nationals":                            "NAT",
			"Australian Greens":                    "GRN",
			"Greens":                               "GRN",
			"Liberal National Party of Queensland": "LNP",
			"Pauline Hanson's One Nation":          "PHON",
			"One Nation":                           "PHON",
			"Katter's Australian Party":            "KAP",
			"Centre Alliance":                      "CA",
			"Country Liberal Party":                "CLP",
			"United Australia Party":               "UAP",
			"Shooters, Fishers and Farmers Party":  "SFF",
			"Jacqui Lambie Network":                "JLN",
			"Independent":                          "IND",
		},
	}
}

type Canonicalizer struct {
	tables Tables
}

func NewCanonicalizer(tables Tables) *Canonicalizer {
	return &Canonicalizer{tables: tables}
}

// Canonical resolves a raw party value to its canonical name. The feeds
// ship parties as plain strings or as objects carrying some subset of
// name/short/fullName. Labels missing from the alias table come back
// unchanged so a genuinely new party is preserved rather than discarded.
func (c *Canonicalizer) Canonical(raw any) string {
	label := "Independent"
	switch v := raw.(type) {
	case string:
		label = v
	case map[string]any:
		for _, key := range []string{"name", "short", "fullName"} {
			if s, ok := v[key].(string); ok && s != "" {
				label = s
				break
			}
		}
	}

	if canonical, ok := c.tables.Aliases[label]; ok {
		return canonical
	}
	return label
}

// ShortCode resolves a canonical name (or direct alias) to a short code,
// synthesizing an initialism for parties outside the table. Upstream data
// is untyped so a non-string input yields the "UNK" sentinel instead of
// panicking.
func (c *Canonicalizer) ShortCode(name any) string {
	s, ok := name.(string)
	if !ok || s == "" {
		return "UNK"
	}
	if code, ok := c.tables.Codes[s]; ok {
		return code
	}

	var initials strings.Builder
	for _, word := range strings.Fields(s) {
		first := []rune(word)[0]
		initials.WriteString(strings.ToUpper(string(first)))
	}
	if initials.Len() == 0 {
		return "UNK"
	}
	return initials.String()
}

// Known reports whether a label appears in the alias table. The HTML
// fallback scraper uses this to tell party lines apart from people.
func (c *Canonicalizer) Known(label string) bool {
	_, ok := c.tables.Aliases[label]
	return ok
}

// Registered lists the distinct canonical parties, for seeding storage.
func (c *Canonicalizer) Registered() []Party {
	seen := map[string]bool{}
	var out []Party
	for _, canonical := range c.tables.Aliases {
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, Party{Name: canonical, Code: c.ShortCode(canonical)})
	}
	return out
}
