package abcnews

import (
	"strings"
	"time"

	"tallyroom-backend/lib/fieldutil"
	"tallyroom-backend/lib/parties"
	"tallyroom-backend/lib/timezone"
)

// MemberRecord is the normalized output unit, one per electorate,
// independent of whichever upstream representation produced it. Records
// are never mutated after extraction.
type MemberRecord struct {
	FirstName  string
	LastName   string
	PartyName  string
	PartyCode  string
	Electorate string

	TotalVotes            int
	MarginVotes           int
	MarginPercent         float64
	WinnerTppPercent      float64
	LoserTppPercent       float64
	WinnerTppVotes        int
	LoserTppVotes         int
	PreviousMarginPercent float64
	SwingPercent          float64

	SourceUrl string
	ScrapedAt time.Time
}

// the probe lists below encode reverse-engineered knowledge of every feed
// shape we have seen across elections. order matters: earlier names are
// the ones current feeds use.
var (
	electorateKeys = []string{"electorate", "electorateName", "seat", "seatName", "name"}
	totalVotesKeys = []string{"totalVotes", "totalVotesCast", "formalVotes", "votesCast"}
	prevMarginKeys = []string{"previousMargin", "previousMarginPercent", "margin"}
	leadingKeys    = []string{"leadingCandidate", "winner", "declaredWinner", "ahead"}
	trailingKeys   = []string{"trailingCandidate", "loser", "behind"}
	candidateNames = []string{"name", "fullName", "candidateName"}
	candidateParty = []string{"party", "partyName", "partyData"}
	tcpKeys        = []string{"predicted2CP", "simple2CP", "twoCandidatePreferred", "tcp", "tpp"}
	tcpPercentKeys = []string{"pct", "percent", "percentage"}
	tcpVotesKeys   = []string{"votes", "voteCount", "count"}
	tcpSwingKeys   = []string{"swing", "swingPct", "swingPercent"}
)

func probe(obj map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func probeString(obj map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func probeMap(obj map[string]any, keys []string) map[string]any {
	for _, key := range keys {
		if m, ok := obj[key].(map[string]any); ok {
			return m
		}
	}
	return nil
}

// first non-zero extraction wins; a feed often carries several vote
// fields where only one is populated
func probeVotes(obj map[string]any, keys []string) int {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			if n := fieldutil.Votes(v); n != 0 {
				return n
			}
		}
	}
	return 0
}

func probePercent(obj map[string]any, keys []string) float64 {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			if n := fieldutil.Percent(v); n != 0 {
				return n
			}
		}
	}
	return 0
}

// splitName splits a full name at the first whitespace boundary, first
// token is the given name and the remainder the surname.
func splitName(full string) (first, last string) {
	first, rest, _ := strings.Cut(strings.TrimSpace(full), " ")
	return first, strings.TrimSpace(rest)
}

// extractRecord normalizes one raw electorate item. A nil return means
// the item lacked a field with no sane default (the electorate or the
// winner's name) and is skipped; scalar fields degrade to zero instead.
func extractRecord(item any, sourceUrl string, canon *parties.Canonicalizer) *MemberRecord {
	obj, ok := item.(map[string]any)
	if !ok {
		return nil
	}

	electorate := probeString(obj, electorateKeys)
	if electorate == "" {
		return nil
	}

	leading := probeMap(obj, leadingKeys)
	if leading == nil {
		return nil
	}

	first, last := splitName(probeString(leading, candidateNames))
	if first == "" || last == "" {
		return nil
	}

	rawParty, _ := probe(leading, candidateParty)
	partyName := canon.Canonical(rawParty)

	record := &MemberRecord{
		FirstName:  first,
		LastName:   last,
		PartyName:  partyName,
		PartyCode:  canon.ShortCode(partyName),
		Electorate: electorate,
		TotalVotes: probeVotes(obj, totalVotesKeys),
		SourceUrl:  sourceUrl,
		ScrapedAt:  timezone.Now(),
	}

	if v, ok := probe(obj, prevMarginKeys); ok {
		record.PreviousMarginPercent = fieldutil.Percent(v)
	}

	if tcp := probeMap(leading, tcpKeys); tcp != nil {
		record.WinnerTppPercent = probePercent(tcp, tcpPercentKeys)
		record.WinnerTppVotes = probeVotes(tcp, tcpVotesKeys)
		if v, ok := probe(tcp, tcpSwingKeys); ok {
			record.SwingPercent = fieldutil.Swing(v)
		}
	}

	// the trailing candidate is optional, its absence only costs us the
	// vote margin
	if trailing := probeMap(obj, trailingKeys); trailing != nil {
		if tcp := probeMap(trailing, tcpKeys); tcp != nil {
			record.LoserTppPercent = probePercent(tcp, tcpPercentKeys)
			record.LoserTppVotes = probeVotes(tcp, tcpVotesKeys)
		}
	}

	if record.WinnerTppVotes > 0 && record.LoserTppVotes > 0 {
		record.MarginVotes = record.WinnerTppVotes - record.LoserTppVotes
	}
	// margin measured from the 50% mark of a two-candidate-preferred
	// contest, not winner minus loser
	if record.WinnerTppPercent > 0 {
		record.MarginPercent = record.WinnerTppPercent - 50.0
	}

	return record
}
