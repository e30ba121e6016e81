package deck

import (
	"strconv"
	"strings"
)

// ExportDeckText renders a decklist that Parse reads back into the same
// decks as long as main is non-empty. The sideboard section is omitted
// when empty.
func ExportDeckText(main, side Deck) string {
	lines := []string{}
	for _, e := range main.Entries() {
		lines = append(lines, strconv.Itoa(e.Quantity)+" "+e.Name)
	}
	if side.Len() > 0 {
		lines = append(lines, "")
		for _, e := range side.Entries() {
			lines = append(lines, strconv.Itoa(e.Quantity)+" "+e.Name)
		}
	}
	return strings.Join(lines, "\n")
}
