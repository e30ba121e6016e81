package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/youruser/deckanalyzer/internal/analysis"
	"github.com/youruser/deckanalyzer/internal/deck"
)

// ExportFileName is the name the export is saved under.
const ExportFileName = "deck-analysis.txt"

const (
	titleCommonMain     = "Cards common to ALL main decks"
	titleMainVariations = "Main deck card variations"
	titleCommonSide     = "Cards common to ALL sideboards"
	titleSideVariations = "Sideboard card variations"
)

// Format renders the plain-text export of an analysis.
func Format(commonMain deck.Deck, mainDist analysis.Distribution, commonSide deck.Deck, sideDist analysis.Distribution, deckCount int) string {
	return Build(commonMain, mainDist, commonSide, sideDist, deckCount).Text()
}

// Text renders the document as four "=== title ===" sections separated
// by blank lines.
func (d Document) Text() string {
	sections := []string{
		header(titleCommonMain) + formatCommon(d.Main.Common),
		header(titleMainVariations) + formatVariations(d.Main.Variations, d.Decks),
		header(titleCommonSide) + formatCommon(d.Sideboard.Common),
		header(titleSideVariations) + formatVariations(d.Sideboard.Variations, d.Decks),
	}
	return strings.Join(sections, "\n\n")
}

func header(title string) string {
	return "=== " + title + " ===\n"
}

func formatCommon(entries []deck.Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, strconv.Itoa(e.Quantity)+" "+e.Name)
	}
	return strings.Join(lines, "\n")
}

func formatVariations(vars []Variation, decks int) string {
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		buckets := make([]string, 0, len(v.Quantities))
		for _, b := range v.Quantities {
			buckets = append(buckets, fmt.Sprintf("%d copies in %d deck(s)", b.Quantity, b.Decks))
		}
		lines = append(lines, fmt.Sprintf("%s (%d/%d decks): %s", v.Name, v.Appearances, decks, strings.Join(buckets, ", ")))
	}
	return strings.Join(lines, "\n")
}

// Encoding selects the export format.
type Encoding string

const (
	EncodingText Encoding = "text"
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(strings.TrimSpace(s))); e {
	case "", EncodingText:
		return EncodingText, nil
	case EncodingJSON, EncodingYAML:
		return e, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

func (e Encoding) ContentType() string {
	switch e {
	case EncodingJSON:
		return "application/json"
	case EncodingYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FileName is the export file name for the encoding.
func (e Encoding) FileName() string {
	base := strings.TrimSuffix(ExportFileName, ".txt")
	switch e {
	case EncodingJSON:
		return base + ".json"
	case EncodingYAML:
		return base + ".yaml"
	default:
		return ExportFileName
	}
}

// Encode writes doc to w in the given encoding.
func Encode(w io.Writer, doc Document, enc Encoding) error {
	switch enc {
	case EncodingJSON:
		je := json.NewEncoder(w)
		je.SetIndent("", "  ")
		if err := je.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case EncodingYAML:
		ye := yaml.NewEncoder(w)
		ye.SetIndent(2)
		if err := ye.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := ye.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case EncodingText, "":
		if _, err := io.WriteString(w, doc.Text()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", enc)
	}
	return nil
}
