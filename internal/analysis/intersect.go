package analysis

import "github.com/youruser/deckanalyzer/internal/deck"

// Intersect returns the cards present in every deck, each at its smallest
// quantity. Names keep the order of the first deck. No decks means no
// common cards.
func Intersect(decks []deck.Deck) deck.Deck {
	if len(decks) == 0 {
		return deck.Deck{}
	}
	common := decks[0].Clone()
	for _, d := range decks[1:] {
		var next deck.Deck
		for _, e := range common.Entries() {
			q, ok := d.Quantity(e.Name)
			if !ok {
				continue
			}
			next.Set(e.Name, min(e.Quantity, q))
		}
		common = next
	}
	return common
}
