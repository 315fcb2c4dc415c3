package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MainRegionSelectors are tried in order to find the job details container.
var MainRegionSelectors = []string{`[role="main"]`, "main"}

var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true, "dd": true,
	"div": true, "dl": true, "dt": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "tr": true, "ul": true,
}

var hiddenElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true, "head": true,
}

// MainText returns the visible text of the main content region with block
// elements on their own lines. found is false when the page has no main region.
func MainText(html string) (text string, found bool, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var region *goquery.Selection
	for _, selector := range MainRegionSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			region = sel.First()
			break
		}
	}
	if region == nil {
		return "", false, nil
	}

	var b strings.Builder
	writeVisibleText(&b, region)
	return b.String(), true, nil
}

func writeVisibleText(b *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		name := goquery.NodeName(node)
		switch {
		case name == "#text":
			b.WriteString(collapseSpaces(node.Text()))
		case name == "br":
			b.WriteString("\n")
		case hiddenElements[name], strings.HasPrefix(name, "#"):
		case node.AttrOr("hidden", "\x00") != "\x00", node.AttrOr("aria-hidden", "") == "true":
		case blockElements[name]:
			b.WriteString("\n")
			writeVisibleText(b, node)
			b.WriteString("\n")
		default:
			writeVisibleText(b, node)
		}
	})
}

// collapseSpaces folds whitespace runs inside a text node the way a browser
// renders inline text.
func collapseSpaces(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			return " "
		}
		return ""
	}
	out := strings.Join(fields, " ")
	if strings.TrimLeft(s, " \t\r\n") != s {
		out = " " + out
	}
	if strings.TrimRight(s, " \t\r\n") != s {
		out += " "
	}
	return out
}
