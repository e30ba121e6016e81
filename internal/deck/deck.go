package deck

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Entry is one card line of a deck.
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Deck maps card names to quantities. Names keep the position at which
// they were first set; setting an existing name only replaces its quantity.
// The zero value is an empty deck ready to use.
type Deck struct {
	names []string
	cards map[string]int
}

// FromEntries builds a deck by setting each entry in order.
func FromEntries(entries ...Entry) Deck {
	var d Deck
	for _, e := range entries {
		d.Set(e.Name, e.Quantity)
	}
	return d
}

func (d *Deck) Set(name string, qty int) {
	if d.cards == nil {
		d.cards = map[string]int{}
	}
	if _, ok := d.cards[name]; !ok {
		d.names = append(d.names, name)
	}
	d.cards[name] = qty
}

func (d Deck) Quantity(name string) (int, bool) {
	q, ok := d.cards[name]
	return q, ok
}

func (d Deck) Has(name string) bool {
	_, ok := d.cards[name]
	return ok
}

func (d Deck) Len() int { return len(d.names) }

// Names returns card names in insertion order.
func (d Deck) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

func (d Deck) Entries() []Entry {
	out := make([]Entry, 0, len(d.names))
	for _, n := range d.names {
		out = append(out, Entry{Name: n, Quantity: d.cards[n]})
	}
	return out
}

// Clone returns a deck that shares no storage with d.
func (d Deck) Clone() Deck {
	return FromEntries(d.Entries()...)
}

// Equal reports whether both decks hold the same cards at the same
// quantities, ignoring order.
func (d Deck) Equal(o Deck) bool {
	if d.Len() != o.Len() {
		return false
	}
	for n, q := range d.cards {
		if oq, ok := o.cards[n]; !ok || oq != q {
			return false
		}
	}
	return true
}

func (d Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Entries())
}

func (d *Deck) UnmarshalJSON(b []byte) error {
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}
	*d = FromEntries(entries...)
	return nil
}

func (d Deck) MarshalYAML() (interface{}, error) {
	return d.Entries(), nil
}

func (d *Deck) UnmarshalYAML(node *yaml.Node) error {
	var entries []Entry
	if err := node.Decode(&entries); err != nil {
		return err
	}
	*d = FromEntries(entries...)
	return nil
}
