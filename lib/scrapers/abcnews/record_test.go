package abcnews

import (
	"encoding/json"
	"testing"

	"tallyroom-backend/lib/parties"

	"github.com/stretchr/testify/require"
)

const sourceUrl = "https://www.abc.net.au/dat/news/elections/2022/federal/results.json"

func canon() *parties.Canonicalizer {
	return parties.NewCanonicalizer(parties.Default())
}

func unmarshalItem(t *testing.T, raw string) any {
	var item any
	err := json.Unmarshal([]byte(raw), &item)
	require.NoError(t, err)
	return item
}

func TestExtractRecord(t *testing.T) {
	item := unmarshalItem(t, `{
		"electorate": "Melbourne",
		"totalVotes": "98,765 counted",
		"previousMargin": "6.5%",
		"leadingCandidate": {
			"name": "Jane Smith",
			"party": "Labor",
			"predicted2CP": {"pct": 54.3, "votes": 30000, "swing": "+2.1%"}
		},
		"trailingCandidate": {
			"name": "John Citizen",
			"party": "Liberal",
			"predicted2CP": {"pct": 45.7, "votes": 25000}
		}
	}`)

	record := extractRecord(item, sourceUrl, canon())
	require.NotNil(t, record)
	require.Equal(t, "Jane", record.FirstName)
	require.Equal(t, "Smith", record.LastName)
	require.Equal(t, "Australian Labor Party", record.PartyName)
	require.Equal(t, "ALP", record.PartyCode)
	require.Equal(t, "Melbourne", record.Electorate)
	require.Equal(t, 98765, record.TotalVotes)
	require.Equal(t, 6.5, record.PreviousMarginPercent)
	require.Equal(t, 54.3, record.WinnerTppPercent)
	require.Equal(t, 30000, record.WinnerTppVotes)
	require.Equal(t, 45.7, record.LoserTppPercent)
	require.Equal(t, 25000, record.LoserTppVotes)
	require.Equal(t, 5000, record.MarginVotes)
	require.InDelta(t, 4.3, record.MarginPercent, 1e-9)
	require.Equal(t, 2.1, record.SwingPercent)
	require.Equal(t, sourceUrl, record.SourceUrl)
	require.False(t, record.ScrapedAt.IsZero())
}

func TestExtractRecordAlternateFieldNames(t *testing.T) {
	// an older feed generation: different key spellings, stringy numbers
	item := unmarshalItem(t, `{
		"seatName": "Curtin",
		"formalVotes": 87000,
		"winner": {
			"candidateName": "Kate Example-Chaney",
			"partyData": {"short": "IND"},
			"tcp": {"percent": "51.3%", "count": "44,000"}
		},
		"loser": {
			"tcp": {"percent": "48.7%", "count": "41,000"}
		}
	}`)

	record := extractRecord(item, sourceUrl, canon())
	require.NotNil(t, record)
	require.Equal(t, "Kate", record.FirstName)
	require.Equal(t, "Example-Chaney", record.LastName)
	require.Equal(t, "Independent", record.PartyName)
	require.Equal(t, "IND", record.PartyCode)
	require.Equal(t, "Curtin", record.Electorate)
	require.Equal(t, 87000, record.TotalVotes)
	require.Equal(t, 3000, record.MarginVotes)
	require.InDelta(t, 1.3, record.MarginPercent, 1e-9)
}

func TestExtractRecordRejections(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "empty object", raw: `{}`},
		{name: "not an object", raw: `[1, 2]`},
		{name: "no electorate", raw: `{"leadingCandidate": {"name": "Jane Smith"}}`},
		{name: "no leading candidate", raw: `{"electorate": "Melbourne"}`},
		{name: "no winner name", raw: `{"electorate": "Melbourne", "leadingCandidate": {"party": "Labor"}}`},
		{name: "single-word name", raw: `{"electorate": "Melbourne", "leadingCandidate": {"name": "Madonna"}}`},
		{name: "whitespace name", raw: `{"electorate": "Melbourne", "leadingCandidate": {"name": "   "}}`},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Nil(t, extractRecord(unmarshalItem(t, test.raw), sourceUrl, canon()))
		})
	}
}

func TestExtractRecordMissingTrailingCandidate(t *testing.T) {
	item := unmarshalItem(t, `{
		"electorate": "Grayndler",
		"leadingCandidate": {
			"name": "Anthony Albanese",
			"party": "ALP",
			"predicted2CP": {"pct": 63.2, "votes": 52000}
		}
	}`)

	record := extractRecord(item, sourceUrl, canon())
	require.NotNil(t, record)
	// no trailing candidate means no vote margin, but the percent margin
	// still derives from the winner's tpp share
	require.Equal(t, 0, record.MarginVotes)
	require.InDelta(t, 13.2, record.MarginPercent, 1e-9)
	require.Equal(t, 0.0, record.LoserTppPercent)
}

func TestExtractRecordUnknownParty(t *testing.T) {
	item := unmarshalItem(t, `{
		"electorate": "Indi",
		"leadingCandidate": {
			"name": "Alex Voter",
			"party": "Voices of Indi"
		}
	}`)

	record := extractRecord(item, sourceUrl, canon())
	require.NotNil(t, record)
	require.Equal(t, "Voices of Indi", record.PartyName)
	require.Equal(t, "VOI", record.PartyCode)
	require.Equal(t, 0, record.MarginVotes)
	require.Equal(t, 0.0, record.MarginPercent)
}
