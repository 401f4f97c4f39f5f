// Package goquery implements listing extraction from inspection results
// pages on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/foodinspect"
	"golang.org/x/net/html/charset"
)

// ParseDocument decodes body and parses it as HTML.
//
// A known encoding label is used as given. An empty or unknown label falls
// back to detection from byte order marks, <meta> declarations and content
// heuristics. Invalid byte sequences are replaced rather than rejected.
// Parsing follows the HTML5 algorithm, so unclosed tags and missing tbody
// elements are repaired the way a browser would.
func ParseDocument(body []byte, encoding string) (*goquery.Document, error) {
	enc, _ := charset.Lookup(encoding)
	if enc == nil {
		enc, _, _ = charset.DetermineEncoding(body, "text/html")
	}

	doc, err := goquery.NewDocumentFromReader(enc.NewDecoder().Reader(bytes.NewReader(body)))
	if err != nil {
		return nil, foodinspect.Errorf(foodinspect.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
