package lunch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrMenuFieldNotFound is returned when the page no longer carries one
// of the three expected menu fields, which means the upstream layout
// changed and the selectors below need updating.
var ErrMenuFieldNotFound = errors.New("menu field not found")

// The menu page lays the day's offerings out as sibling div.menu-row
// blocks; hot dish, vegetarian and salad sit at fixed positions with
// the dish text in each row's second cell. All positional coupling to
// the upstream layout lives here.
var menuSelectors = []struct {
	field    string
	selector string
}{
	{"varm ret", "div.menu-row:nth-child(2) > div:nth-child(2)"},
	{"vegetar", "div.menu-row:nth-child(4) > div:nth-child(2)"},
	{"salat", "div.menu-row:nth-child(6) > div:nth-child(2)"},
}

// Extract parses the menu page markup and returns the day's Menu. Any
// missing or empty field is fatal for the whole record.
func Extract(markup io.Reader) (Menu, error) {
	doc, err := goquery.NewDocumentFromReader(markup)
	if err != nil {
		return Menu{}, fmt.Errorf("parse menu page: %w", err)
	}

	fields := make([]string, len(menuSelectors))
	for i, sel := range menuSelectors {
		node := doc.Find(sel.selector).First()
		if node.Length() == 0 {
			return Menu{}, fmt.Errorf("%w: %s", ErrMenuFieldNotFound, sel.field)
		}
		text := strings.TrimSpace(firstText(node.Nodes[0]))
		if text == "" {
			return Menu{}, fmt.Errorf("%w: %s is empty", ErrMenuFieldNotFound, sel.field)
		}
		fields[i] = text
	}

	return Menu{
		HotDish:    fields[0],
		Vegetarian: fields[1],
		Salad:      fields[2],
	}, nil
}

// firstText returns the first text run under n in document order, or
// "" when the subtree holds no text at all.
func firstText(n *html.Node) string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			return c.Data
		}
		if t := firstText(c); t != "" {
			return t
		}
	}
	return ""
}
