package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/youruser/deckanalyzer/internal/analysis"
	"github.com/youruser/deckanalyzer/internal/deck"
)

const exampleReport = `=== Cards common to ALL main decks ===
3 Island

=== Main deck card variations ===
Island (2/2 decks): 4 copies in 1 deck(s), 3 copies in 1 deck(s)
Brainstorm (1/2 decks): 2 copies in 1 deck(s)
Opt (1/2 decks): 2 copies in 1 deck(s)

=== Cards common to ALL sideboards ===
1 Pyroblast

=== Sideboard card variations ===
Pyroblast (2/2 decks): 2 copies in 1 deck(s), 1 copies in 1 deck(s)
Hydroblast (1/2 decks): 1 copies in 1 deck(s)`

func analyzeExample(t *testing.T) *analysis.Result {
	t.Helper()
	res, err := analysis.Analyze([]analysis.Source{
		{Name: "a.txt", Text: "4 Island\n2 Brainstorm\n\n2 Pyroblast"},
		{Name: "b.txt", Text: "3 Island\n2 Opt\n\n1 Pyroblast\n1 Hydroblast"},
	}, analysis.Options{})
	require.NoError(t, err)
	return res
}

func TestFormatExample(t *testing.T) {
	res := analyzeExample(t)
	got := Format(res.CommonMain, res.MainDistribution, res.CommonSideboard, res.SideboardDistribution, res.DeckCount)
	assert.Equal(t, exampleReport, got)
}

func TestFormatIsDeterministic(t *testing.T) {
	res := analyzeExample(t)
	want := FromResult(res).Text()
	for i := 0; i < 50; i++ {
		assert.Equal(t, want, FromResult(res).Text())
	}
}

func TestFormatEmpty(t *testing.T) {
	got := Format(deck.Deck{}, analysis.Distribute(nil), deck.Deck{}, analysis.Distribute(nil), 0)
	want := "=== Cards common to ALL main decks ===\n" +
		"\n\n=== Main deck card variations ===\n" +
		"\n\n=== Cards common to ALL sideboards ===\n" +
		"\n\n=== Sideboard card variations ===\n"
	assert.Equal(t, want, got)
}

func TestCommonTiesKeepInsertionOrder(t *testing.T) {
	common := deck.FromEntries(
		deck.Entry{Name: "Ponder", Quantity: 2},
		deck.Entry{Name: "Brainstorm", Quantity: 4},
		deck.Entry{Name: "Preordain", Quantity: 2},
		deck.Entry{Name: "Force of Will", Quantity: 4},
		deck.Entry{Name: "Daze", Quantity: 1},
	)
	doc := Build(common, analysis.Distribute(nil), deck.Deck{}, analysis.Distribute(nil), 1)

	assert.Equal(t, []deck.Entry{
		{Name: "Brainstorm", Quantity: 4},
		{Name: "Force of Will", Quantity: 4},
		{Name: "Ponder", Quantity: 2},
		{Name: "Preordain", Quantity: 2},
		{Name: "Daze", Quantity: 1},
	}, doc.Main.Common)
}

func TestVariationsOrdering(t *testing.T) {
	decks := []deck.Deck{
		deck.FromEntries(deck.Entry{Name: "Daze", Quantity: 1}, deck.Entry{Name: "Island", Quantity: 4}),
		deck.FromEntries(deck.Entry{Name: "Ponder", Quantity: 2}, deck.Entry{Name: "Island", Quantity: 1}),
		deck.FromEntries(deck.Entry{Name: "Island", Quantity: 3}, deck.Entry{Name: "Daze", Quantity: 4}),
	}
	doc := Build(deck.Deck{}, analysis.Distribute(decks), deck.Deck{}, analysis.Distribute(nil), len(decks))

	require.Len(t, doc.Main.Variations, 3)
	assert.Equal(t, "Island", doc.Main.Variations[0].Name)
	assert.Equal(t, []Bucket{{4, 1}, {3, 1}, {1, 1}}, doc.Main.Variations[0].Quantities)
	assert.Equal(t, "Daze", doc.Main.Variations[1].Name)
	assert.Equal(t, []Bucket{{4, 1}, {1, 1}}, doc.Main.Variations[1].Quantities)
	assert.Equal(t, "Ponder", doc.Main.Variations[2].Name)
}

func TestVariationTiesKeepFirstEncounterOrder(t *testing.T) {
	decks := []deck.Deck{
		deck.FromEntries(deck.Entry{Name: "Opt", Quantity: 1}, deck.Entry{Name: "Ponder", Quantity: 1}),
		deck.FromEntries(deck.Entry{Name: "Consider", Quantity: 1}, deck.Entry{Name: "Opt", Quantity: 2}),
	}
	text := Format(deck.Deck{}, analysis.Distribute(decks), deck.Deck{}, analysis.Distribute(nil), 2)

	assert.Contains(t, text, "=== Main deck card variations ===\n"+
		"Opt (2/2 decks): 2 copies in 1 deck(s), 1 copies in 1 deck(s)\n"+
		"Ponder (1/2 decks): 1 copies in 1 deck(s)\n"+
		"Consider (1/2 decks): 1 copies in 1 deck(s)\n\n")
}

func TestParseEncoding(t *testing.T) {
	for in, want := range map[string]Encoding{"": EncodingText, "text": EncodingText, "JSON": EncodingJSON, " yaml ": EncodingYAML} {
		got, err := ParseEncoding(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseEncoding("xml")
	assert.Error(t, err)

	assert.Equal(t, "deck-analysis.txt", EncodingText.FileName())
	assert.Equal(t, "deck-analysis.json", EncodingJSON.FileName())
	assert.Equal(t, "deck-analysis.yaml", EncodingYAML.FileName())
}

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FromResult(analyzeExample(t)), EncodingText))
	assert.Equal(t, exampleReport, buf.String())
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FromResult(analyzeExample(t)), EncodingJSON))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.Decks)
	assert.Equal(t, []deck.Entry{{Name: "Island", Quantity: 3}}, doc.Main.Common)
	assert.Equal(t, []Bucket{{4, 1}, {3, 1}}, doc.Main.Variations[0].Quantities)
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"decks\": 2,"))
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	want := FromResult(analyzeExample(t))
	require.NoError(t, Encode(&buf, want, EncodingYAML))

	var got Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestEncodeUnknown(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, Document{}, Encoding("xml")))
}
