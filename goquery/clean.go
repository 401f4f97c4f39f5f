package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// CleanCell returns the cleaned text owned by the first element of cell.
// Cells without a single text string return "".
func CleanCell(cell *goquery.Selection) string {
	if cell.Length() == 0 {
		return ""
	}
	text, _ := cellString(cell.Get(0))
	return CleanText(text)
}

// cellString returns the text of n when it has exactly one child that is
// either a text node or an element that itself has such a string.
// Cells with mixed or no content own no text.
func cellString(n *html.Node) (string, bool) {
	c := n.FirstChild
	if c == nil || c.NextSibling != nil {
		return "", false
	}
	switch c.Type {
	case html.TextNode:
		return c.Data, true
	case html.ElementNode:
		return cellString(c)
	}
	return "", false
}

// CleanText trims surrounding whitespace, colons and hyphens from s.
func CleanText(s string) string {
	return strings.TrimFunc(s, isTrimmed)
}

func isTrimmed(r rune) bool {
	return r == ':' || r == '-' || unicode.IsSpace(r)
}
