package analysis

import "github.com/youruser/deckanalyzer/internal/deck"

// CardDistribution counts how many decks hold a card and how many decks
// hold it at each exact quantity.
type CardDistribution struct {
	Name        string      `json:"name" yaml:"name"`
	Appearances int         `json:"appearances" yaml:"appearances"`
	Quantities  map[int]int `json:"quantities" yaml:"quantities"` // quantity -> decks
}

// Distribution holds one CardDistribution per card seen, in the order the
// cards were first encountered.
type Distribution struct {
	Cards []CardDistribution `json:"cards" yaml:"cards"`
	index map[string]int
}

// Distribute accumulates appearances and quantity histograms over decks.
func Distribute(decks []deck.Deck) Distribution {
	dist := Distribution{Cards: []CardDistribution{}, index: map[string]int{}}
	for _, d := range decks {
		for _, e := range d.Entries() {
			i, ok := dist.index[e.Name]
			if !ok {
				i = len(dist.Cards)
				dist.index[e.Name] = i
				dist.Cards = append(dist.Cards, CardDistribution{Name: e.Name, Quantities: map[int]int{}})
			}
			c := &dist.Cards[i]
			c.Appearances++
			c.Quantities[e.Quantity]++
		}
	}
	return dist
}

func (d Distribution) Len() int { return len(d.Cards) }

func (d Distribution) Get(name string) (CardDistribution, bool) {
	if d.index == nil {
		for _, c := range d.Cards {
			if c.Name == name {
				return c, true
			}
		}
		return CardDistribution{}, false
	}
	i, ok := d.index[name]
	if !ok {
		return CardDistribution{}, false
	}
	return d.Cards[i], true
}
