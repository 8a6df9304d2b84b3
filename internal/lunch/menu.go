// Package lunch turns the canteen's published menu page into a small
// markdown document, one building at a time.
package lunch

import "strings"

// Menu is one day's lunch offering for a single building. All three
// fields are always populated; a page missing any of them fails at
// extraction rather than producing a partial Menu.
type Menu struct {
	HotDish    string
	Vegetarian string
	Salad      string
}

// Markdown renders the menu in the fixed layout posted to chat:
// three level-five headings with the dish indented two spaces, and no
// trailing newline.
func (m Menu) Markdown() string {
	var b strings.Builder
	b.WriteString("##### Varm ret\n  ")
	b.WriteString(m.HotDish)
	b.WriteString("\n##### Vegetar\n  ")
	b.WriteString(m.Vegetarian)
	b.WriteString("\n##### Salat\n  ")
	b.WriteString(m.Salad)
	return b.String()
}
