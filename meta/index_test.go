package meta

import (
	"math"
	"testing"

	"github.com/Kirov7/CheeseDB/data"
	"github.com/stretchr/testify/assert"
)

func TestPriceIndex(t *testing.T) {
	pi := NewPriceIndex()
	a := &data.Record{Brand: "Edam", Price: 10, Seq: 1}
	b := &data.Record{Brand: "Edam", Price: 9.5, Seq: 2}
	c := &data.Record{Brand: "Brie", Price: 10, Seq: 3}
	d := &data.Record{Brand: "Brie", Price: 10, Seq: 4}
	for _, r := range []*data.Record{a, b, c, d} {
		assert.True(t, pi.Put(r))
	}
	assert.Equal(t, 4, pi.Count())

	var order []*data.Record
	pi.Ascend(func(record *data.Record) bool {
		order = append(order, record)
		return true
	})
	assert.Equal(t, []*data.Record{b, c, d, a}, order)

	var ranged []*data.Record
	pi.Range(9.6, 11, func(record *data.Record) bool {
		ranged = append(ranged, record)
		return true
	})
	assert.Equal(t, []*data.Record{c, d, a}, ranged)

	assert.True(t, pi.Del(c))
	assert.False(t, pi.Del(c))
	assert.Equal(t, 3, pi.Count())

	pi.Clear()
	assert.Equal(t, 0, pi.Count())
}

func TestPriceIndex_NaN(t *testing.T) {
	pi := NewPriceIndex()
	a := &data.Record{Brand: "A", Price: 5, Seq: 1}
	b := &data.Record{Brand: "B", Price: math.NaN(), Seq: 2}
	c := &data.Record{Brand: "C", Price: 7, Seq: 3}
	d := &data.Record{Brand: "A", Price: math.NaN(), Seq: 4}
	for _, r := range []*data.Record{a, b, c, d} {
		assert.True(t, pi.Put(r))
	}
	assert.Equal(t, 4, pi.Count())

	var order []*data.Record
	pi.Ascend(func(record *data.Record) bool {
		order = append(order, record)
		return true
	})
	assert.Equal(t, []*data.Record{d, b, a, c}, order)

	var ranged []*data.Record
	pi.Range(math.Inf(-1), math.Inf(1), func(record *data.Record) bool {
		ranged = append(ranged, record)
		return true
	})
	assert.Equal(t, []*data.Record{a, c}, ranged)

	assert.True(t, pi.Del(b))
	assert.False(t, pi.Del(b))
	assert.True(t, pi.Del(d))
	assert.Equal(t, 2, pi.Count())
}

func TestBrandIndex(t *testing.T) {
	bi := NewBrandIndex()
	for _, brand := range []string{"Gouda", "Gorgonzola", "Brie", "Gouda", "Goat"} {
		bi.Put(brand)
	}
	assert.Equal(t, 4, bi.Count())
	assert.Equal(t, 2, bi.Get("Gouda"))
	assert.Equal(t, 0, bi.Get("Edam"))

	assert.Equal(t, []string{"Goat", "Gorgonzola", "Gouda"}, bi.Prefix("Go"))
	assert.Equal(t, []string{"Gouda"}, bi.Prefix("Gou"))
	assert.Equal(t, []string{"Brie", "Goat", "Gorgonzola", "Gouda"}, bi.Prefix(""))
	assert.Empty(t, bi.Prefix("Z"))

	assert.True(t, bi.Del("Gouda"))
	assert.Equal(t, 1, bi.Get("Gouda"))
	assert.True(t, bi.Del("Gouda"))
	assert.Equal(t, 0, bi.Get("Gouda"))
	assert.False(t, bi.Del("Gouda"))
	assert.Empty(t, bi.Prefix("Gou"))
	assert.Equal(t, []string{"Goat", "Gorgonzola"}, bi.Prefix("Go"))

	bi.Clear()
	assert.Equal(t, 0, bi.Count())
}
