package data

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositeKey(t *testing.T) {
	assert.Equal(t, "Gouda5.000000", CompositeKey("Gouda", 5))
	assert.Equal(t, "Brie7.500000", CompositeKey("Brie", 7.5))
	assert.Equal(t, "Edam0.100000", CompositeKey("Edam", 0.1))

	r := NewRecord("Gouda", "Semi-hard", 45, 3)
	assert.Equal(t, "Gouda3.000000", r.Key())
	assert.Equal(t, Solid, r.State)
}

func TestCompare_PriceIsText(t *testing.T) {
	// "10.000000" sorts before "9.500000" as text
	assert.Equal(t, -1, Compare(CompositeKey("Edam", 10), CompositeKey("Edam", 9.5)))
	assert.Equal(t, 1, Compare(CompositeKey("Edam", 9.5), CompositeKey("Edam", 10)))
	assert.Equal(t, 0, Compare(CompositeKey("Edam", 9.5), CompositeKey("Edam", 9.5)))

	// brand and price run together, "Ab" + "1..." vs "A" + "9..."
	keys := []string{CompositeKey("A", 9), CompositeKey("Ab", 1), CompositeKey("A", 10)}
	sort.Strings(keys)
	assert.Equal(t, []string{"A10.000000", "A9.000000", "Ab1.000000"}, keys)
}

func TestState(t *testing.T) {
	assert.Equal(t, "Solid", Solid.String())
	assert.Equal(t, "Moldy", Moldy.String())
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "Unknown", State(42).String())

	assert.Equal(t, Solid, ParseState("Solid"))
	assert.Equal(t, Moldy, ParseState("moldy"))
	assert.Equal(t, Unknown, ParseState("runny"))

	var zero Record
	assert.Equal(t, Unknown, zero.State)
}

func TestRecord_Clone(t *testing.T) {
	r := NewRecord("Brie", "Soft", 60, 7.5)
	c := r.Clone()
	c.State = Moldy
	assert.Equal(t, Solid, r.State)
	assert.Equal(t, r.Key(), c.Key())

	var nilRecord *Record
	assert.Nil(t, nilRecord.Clone())
}
