package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDeckSetKeepsInsertionOrder(t *testing.T) {
	var d Deck
	d.Set("Opt", 2)
	d.Set("Island", 4)
	d.Set("Opt", 1)

	assert.Equal(t, []string{"Opt", "Island"}, d.Names())
	q, ok := d.Quantity("Opt")
	assert.True(t, ok)
	assert.Equal(t, 1, q)
	assert.False(t, d.Has("Ponder"))
}

func TestDeckCloneIsIndependent(t *testing.T) {
	d := FromEntries(Entry{"Island", 4})
	c := d.Clone()
	c.Set("Island", 1)
	c.Set("Opt", 2)

	q, _ := d.Quantity("Island")
	assert.Equal(t, 4, q)
	assert.Equal(t, 1, d.Len())
}

func TestDeckNamesReturnsCopy(t *testing.T) {
	d := FromEntries(Entry{"Island", 4})
	names := d.Names()
	names[0] = "Swamp"

	assert.True(t, d.Has("Island"))
	assert.Equal(t, []string{"Island"}, d.Names())
}

func TestDeckEqualIgnoresOrder(t *testing.T) {
	a := FromEntries(Entry{"Island", 4}, Entry{"Opt", 2})
	b := FromEntries(Entry{"Opt", 2}, Entry{"Island", 4})
	c := FromEntries(Entry{"Opt", 1}, Entry{"Island", 4})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Deck{}))
	assert.True(t, Deck{}.Equal(Deck{}))
}

func TestDeckJSON(t *testing.T) {
	d := FromEntries(Entry{"Island", 4}, Entry{"Brainstorm", 2})
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Island","quantity":4},{"name":"Brainstorm","quantity":2}]`, string(b))

	var back Deck
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.Entries(), back.Entries())

	empty, err := json.Marshal(Deck{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestDeckYAML(t *testing.T) {
	d := FromEntries(Entry{"Island", 4})
	b, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.YAMLEq(t, "- name: Island\n  quantity: 4\n", string(b))

	var back Deck
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.Equal(t, d.Entries(), back.Entries())
}
