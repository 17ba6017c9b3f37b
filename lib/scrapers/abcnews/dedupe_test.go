package abcnews

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDedupe(t *testing.T) {
	first := MemberRecord{FirstName: "Jane", LastName: "Smith", Electorate: "Melbourne", WinnerTppVotes: 100}
	repeat := MemberRecord{FirstName: "Jane", LastName: "Smith", Electorate: "Melbourne", WinnerTppVotes: 999}
	otherSeat := MemberRecord{FirstName: "Jane", LastName: "Smith", Electorate: "Sydney"}
	otherName := MemberRecord{FirstName: "Janet", LastName: "Smith", Electorate: "Melbourne"}

	out := Dedupe([]MemberRecord{first, repeat, otherSeat, otherName})
	require.Len(t, out, 3)

	// first occurrence wins, even when the later record carries more data
	require.Equal(t, 100, out[0].WinnerTppVotes)
	require.Equal(t, "Sydney", out[1].Electorate)
	require.Equal(t, "Janet", out[2].FirstName)
}

func TestDedupeEmpty(t *testing.T) {
	require.Empty(t, Dedupe(nil))
}
