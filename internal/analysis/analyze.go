package analysis

import (
	"fmt"

	"github.com/youruser/deckanalyzer/internal/deck"
)

// Source is the decoded text of one uploaded decklist.
type Source struct {
	Name string
	Text string
}

// FileError attributes a parse failure to the file it came from.
type FileError struct {
	File string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("%s: %v", e.File, e.Err) }

func (e *FileError) Unwrap() error { return e.Err }

type Options struct {
	// Strict aborts the whole batch on the first file that fails to parse.
	Strict bool
}

// Result is the cross-deck analysis of one upload batch.
type Result struct {
	DeckCount             int
	Files                 []string
	CommonMain            deck.Deck
	MainDistribution      Distribution
	CommonSideboard       deck.Deck
	SideboardDistribution Distribution
	Failures              []*FileError
}

// Analyze parses every source in order and compares the decks that parsed.
// Files that fail are listed in Result.Failures and left out of the
// comparison unless opts.Strict is set, in which case the first failure is
// returned.
func Analyze(sources []Source, opts Options) (*Result, error) {
	res := &Result{Files: []string{}}
	var mains, sides []deck.Deck
	for _, src := range sources {
		main, side, err := deck.Parse(src.Text)
		if err != nil {
			ferr := &FileError{File: src.Name, Err: err}
			if opts.Strict {
				return nil, ferr
			}
			res.Failures = append(res.Failures, ferr)
			continue
		}
		res.Files = append(res.Files, src.Name)
		mains = append(mains, main)
		sides = append(sides, side)
	}

	res.DeckCount = len(mains)
	res.CommonMain = Intersect(mains)
	res.MainDistribution = Distribute(mains)
	res.CommonSideboard = Intersect(sides)
	res.SideboardDistribution = Distribute(sides)
	return res, nil
}
