package report

import (
	"sort"

	"github.com/youruser/deckanalyzer/internal/analysis"
	"github.com/youruser/deckanalyzer/internal/deck"
)

// Bucket is the number of decks running a card at one quantity.
type Bucket struct {
	Quantity int `json:"quantity" yaml:"quantity"`
	Decks    int `json:"decks" yaml:"decks"`
}

type Variation struct {
	Name        string   `json:"name" yaml:"name"`
	Appearances int      `json:"appearances" yaml:"appearances"`
	Quantities  []Bucket `json:"quantities" yaml:"quantities"`
}

type Section struct {
	Common     []deck.Entry `json:"common" yaml:"common"`
	Variations []Variation  `json:"variations" yaml:"variations"`
}

// Document is an analysis in report order: common cards by quantity
// descending, variations by appearances descending, ties in insertion
// order, buckets by quantity descending.
type Document struct {
	Decks     int     `json:"decks" yaml:"decks"`
	Main      Section `json:"main" yaml:"main"`
	Sideboard Section `json:"sideboard" yaml:"sideboard"`
}

func Build(commonMain deck.Deck, mainDist analysis.Distribution, commonSide deck.Deck, sideDist analysis.Distribution, deckCount int) Document {
	return Document{
		Decks:     deckCount,
		Main:      buildSection(commonMain, mainDist),
		Sideboard: buildSection(commonSide, sideDist),
	}
}

// FromResult builds the document of a batch analysis.
func FromResult(r *analysis.Result) Document {
	return Build(r.CommonMain, r.MainDistribution, r.CommonSideboard, r.SideboardDistribution, r.DeckCount)
}

func buildSection(common deck.Deck, dist analysis.Distribution) Section {
	entries := common.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quantity > entries[j].Quantity
	})

	vars := make([]Variation, 0, dist.Len())
	for _, c := range dist.Cards {
		buckets := make([]Bucket, 0, len(c.Quantities))
		for q, n := range c.Quantities {
			buckets = append(buckets, Bucket{Quantity: q, Decks: n})
		}
		sort.Slice(buckets, func(i, j int) bool {
			return buckets[i].Quantity > buckets[j].Quantity
		})
		vars = append(vars, Variation{Name: c.Name, Appearances: c.Appearances, Quantities: buckets})
	}
	sort.SliceStable(vars, func(i, j int) bool {
		return vars[i].Appearances > vars[j].Appearances
	})

	return Section{Common: entries, Variations: vars}
}
