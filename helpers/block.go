package helpers

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockingKeywords are phrases retailers show on anti-bot interstitials. A
// keyword buried in body copy is not enough; it has to appear in a heading,
// the page title, or a button to count as a block.
var blockingKeywords = []string{
	"captcha",
	"robot check",
	"are you a human",
	"verify your identity",
	"access denied",
	"forbidden",
}

// DetectBlock reports whether the document looks like an anti-bot challenge
// page rather than a product listing, and which keyword matched.
func DetectBlock(doc *goquery.Document) (string, bool) {
	pageText := strings.ToLower(doc.Text())

	headings := doc.Find("h1, h2, h3, title")
	buttons := doc.Find("button, input[type='submit']")

	for _, keyword := range blockingKeywords {
		if !strings.Contains(pageText, keyword) {
			continue
		}
		if selectionContains(headings, keyword) || buttonContains(buttons, keyword) {
			return keyword, true
		}
	}
	return "", false
}

func selectionContains(sel *goquery.Selection, keyword string) bool {
	found := false
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(strings.TrimSpace(s.Text())), keyword) {
			found = true
			return false
		}
		return true
	})
	return found
}

func buttonContains(sel *goquery.Selection, keyword string) bool {
	found := false
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		value, _ := s.Attr("value")
		if strings.Contains(strings.ToLower(s.Text()), keyword) ||
			strings.Contains(strings.ToLower(value), keyword) {
			found = true
			return false
		}
		return true
	})
	return found
}
