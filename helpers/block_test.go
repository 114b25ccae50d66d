package helpers

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestDetectBlockHeading(t *testing.T) {
	doc := docFromHTML(t, `<html><body><h1>Robot Check</h1><p>Type the characters below.</p></body></html>`)
	keyword, blocked := DetectBlock(doc)
	assert.True(t, blocked)
	assert.Equal(t, "robot check", keyword)
}

func TestDetectBlockTitle(t *testing.T) {
	doc := docFromHTML(t, `<html><head><title>Access Denied</title></head><body><p>Reference #18.4</p></body></html>`)
	_, blocked := DetectBlock(doc)
	assert.True(t, blocked)
}

func TestDetectBlockSubmitButton(t *testing.T) {
	doc := docFromHTML(t, `<html><body><form><input type="submit" value="Solve CAPTCHA"></form></body></html>`)
	keyword, blocked := DetectBlock(doc)
	assert.True(t, blocked)
	assert.Equal(t, "captcha", keyword)
}

func TestDetectBlockIgnoresBodyCopy(t *testing.T) {
	// A product mentioning "captcha" in its description is not a block page
	doc := docFromHTML(t, `<html><body>
		<h1>Search results</h1>
		<div class="item">CAPTCHA Solver Handbook, paperback</div>
	</body></html>`)
	_, blocked := DetectBlock(doc)
	assert.False(t, blocked)
}

func TestDetectBlockCleanListing(t *testing.T) {
	doc := docFromHTML(t, `<html><body>
		<h1>Internal Hard Drives</h1>
		<div class="item-cell"><a href="/p/1">Seagate 4TB</a></div>
	</body></html>`)
	keyword, blocked := DetectBlock(doc)
	assert.False(t, blocked)
	assert.Empty(t, keyword)
}

func TestGetSplitPart(t *testing.T) {
	part, err := GetSplitPart("https://www.newegg.com/p/N82E16822184Z02", "/p/", 1)
	require.NoError(t, err)
	assert.Equal(t, "N82E16822184Z02", part)

	_, err = GetSplitPart("no separator here", "/p/", 1)
	assert.Error(t, err)
}
