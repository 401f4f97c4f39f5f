package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// Predicate reports whether the first element of a selection matches.
type Predicate func(*goquery.Selection) bool

// FindAll returns the elements under sel that satisfy match, in document
// order. With recursive false only direct children are considered, so
// elements of nested tables are never returned for a row.
func FindAll(sel *goquery.Selection, recursive bool, match Predicate) *goquery.Selection {
	candidates := sel.Children()
	if recursive {
		candidates = sel.Find("*")
	}
	return candidates.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return match(s)
	})
}

// Tag matches elements with the given tag name.
func Tag(name string) Predicate {
	return func(s *goquery.Selection) bool {
		return s.Length() > 0 && goquery.NodeName(s) == name
	}
}

// AttrMatches matches elements whose attribute value matches re.
func AttrMatches(attr string, re *regexp.Regexp) Predicate {
	return func(s *goquery.Selection) bool {
		val, ok := s.Attr(attr)
		return ok && re.MatchString(val)
	}
}

// And matches elements satisfying every predicate, evaluated in order.
func And(preds ...Predicate) Predicate {
	return func(s *goquery.Selection) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}
