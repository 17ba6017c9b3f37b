package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestGetText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<div><span>Jane</span> <b>Smith</b></div>`,
	))
	require.NoError(t, err)
	require.Contains(t, GetText(doc), "Jane Smith")
}

func TestStripTags(t *testing.T) {
	lines := StripTags(
		`<article class="seat"><h3>Jane   Smith</h3>` +
			`<p>Australian Labor Party</p><p>Margin: 4.3%</p></article>`,
	)
	require.Equal(t, []string{
		"Jane Smith",
		"Australian Labor Party",
		"Margin: 4.3%",
	}, lines)
}

func TestStripTagsEntities(t *testing.T) {
	lines := StripTags(`<p>Katter&#39;s Australian Party</p>`)
	require.Equal(t, []string{"Katter's Australian Party"}, lines)
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "a b", CleanText("  a \t\n  b "))
	require.Equal(t, "", CleanText(" \n\t "))
}
