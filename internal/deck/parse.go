package deck

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a decklist: "<quantity> <name>" lines, with the first blank
// line after the main deck starting the sideboard. Later blank lines are
// skipped. A repeated name keeps its last quantity.
func Parse(text string) (main, side Deck, err error) {
	cur := &main
	inSide := false
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if !inSide && main.Len() > 0 {
				cur, inSide = &side, true
			}
			continue
		}
		name, qty, perr := parseLine(line)
		if perr != nil {
			perr.Line = i + 1
			return Deck{}, Deck{}, perr
		}
		cur.Set(name, qty)
	}
	return main, side, nil
}

func parseLine(line string) (string, int, *ParseError) {
	cut := strings.IndexFunc(line, unicode.IsSpace)
	if cut < 0 {
		return "", 0, &ParseError{Content: line, Reason: MalformedLine}
	}
	tok := line[:cut]
	name := strings.TrimLeftFunc(line[cut:], unicode.IsSpace)

	qty, err := strconv.Atoi(tok)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return "", 0, &ParseError{Content: line, Reason: InvalidQuantity, Err: err}
	}
	if qty < 0 {
		return "", 0, &ParseError{Content: line, Reason: InvalidQuantity, Err: errors.New("negative")}
	}
	return name, qty, nil
}
