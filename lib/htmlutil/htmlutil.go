package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var tagRegex = regexp.MustCompile(`<[^>]*>`)
var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) || c == '\n' {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText trims a fragment of extracted text down to a single
// whitespace-normalized line.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}

// StripTags replaces markup in an html fragment with line breaks and
// returns the surviving text one cleaned line at a time. This is the
// last-resort path for pages whose data feeds have gone away, leaving
// only rendered markup to read.
func StripTags(fragment string) []string {
	text := tagRegex.ReplaceAllString(fragment, "\n")
	text = html.UnescapeString(text)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = CleanText(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
