package renderer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is one rendered page, ready for element extraction.
type Page struct {
	url string
	doc *goquery.Document
}

// URL returns the address the page was loaded from.
func (p *Page) URL() string {
	return p.url
}

// First returns the trimmed text of the first element matching the CSS
// selector, or an error if nothing matches.
func (p *Page) First(selector string) (string, error) {
	sel := p.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("no element matches %q on %s", selector, p.url)
	}
	return strings.TrimSpace(sel.Text()), nil
}

// Each visits every element matching the CSS selector, for extraction rules
// that need to inspect siblings or pick one match among several.
func (p *Page) Each(selector string, fn func(i int, s *goquery.Selection)) {
	p.doc.Find(selector).Each(fn)
}
