package abcnews

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	var payload any
	err := json.Unmarshal([]byte(raw), &payload)
	require.NoError(t, err)
	return payload
}

func TestFindRecordList(t *testing.T) {
	want := []any{
		map[string]any{"electorate": "Melbourne"},
		map[string]any{"electorate": "Sydney"},
	}

	testCases := []struct {
		name    string
		payload string
	}{
		{
			name:    "payload is the array",
			payload: `[{"electorate": "Melbourne"}, {"electorate": "Sydney"}]`,
		},
		{
			name:    "preferred key at top level",
			payload: `{"electorates": [{"electorate": "Melbourne"}, {"electorate": "Sydney"}]}`,
		},
		{
			name:    "preferred key holding an object",
			payload: `{"results": {"seats": [{"electorate": "Melbourne"}, {"electorate": "Sydney"}]}}`,
		},
		{
			name: "deeply nested with no preferred keys",
			payload: `{"meta": {"generated": "today"},
				"pageProps": {"initial": {"lists": [{"electorate": "Melbourne"}, {"electorate": "Sydney"}]}}}`,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			got := findRecordList(decode(t, test.payload))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("record list mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindRecordListNotFound(t *testing.T) {
	testCases := []string{
		`{}`,
		`{"a": 1, "b": "two", "c": {"d": null}}`,
		`"scalar"`,
		`42`,
	}
	for _, payload := range testCases {
		require.Nil(t, findRecordList(decode(t, payload)), "payload: %s", payload)
	}
}

func TestFindRecordListSkipsEmptyArraysInFallback(t *testing.T) {
	// the depth-first fallback must pass over empty arrays and keep
	// looking for a populated one
	payload := decode(t, `{
		"aaa": [],
		"zzz": {"anything": [{"electorate": "Perth"}]}
	}`)
	got := findRecordList(payload)
	require.Len(t, got, 1)
}

func TestFindRecordListPreferredKeyWinsOverFallback(t *testing.T) {
	payload := decode(t, `{
		"aaa": [{"electorate": "Wrong"}],
		"seats": [{"electorate": "Right"}]
	}`)
	got := findRecordList(payload)
	require.Equal(t, []any{map[string]any{"electorate": "Right"}}, got)
}
