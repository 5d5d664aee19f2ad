package meta

import (
	"math"

	"github.com/Kirov7/CheeseDB/data"
	"github.com/google/btree"
)

// PriceIndex orders records numerically by price, then brand, then insertion sequence.
// NaN prices sort before every number.
type PriceIndex struct {
	tree *btree.BTree
}

// NewPriceIndex Init PriceIndex struct
func NewPriceIndex() *PriceIndex {
	return &PriceIndex{
		tree: btree.New(32),
	}
}

type priceItem struct {
	record *data.Record
}

func (i *priceItem) Less(bi btree.Item) bool {
	a, b := i.record, bi.(*priceItem).record
	if aNaN, bNaN := math.IsNaN(a.Price), math.IsNaN(b.Price); aNaN != bNaN {
		return aNaN
	} else if !aNaN && a.Price != b.Price {
		return a.Price < b.Price
	}
	if a.Brand != b.Brand {
		return a.Brand < b.Brand
	}
	return a.Seq < b.Seq
}

func (pi *PriceIndex) Put(record *data.Record) bool {
	return pi.tree.ReplaceOrInsert(&priceItem{record: record}) == nil
}

func (pi *PriceIndex) Del(record *data.Record) bool {
	return pi.tree.Delete(&priceItem{record: record}) != nil
}

// Ascend calls fn in ascending numeric price order until fn returns false
func (pi *PriceIndex) Ascend(fn func(record *data.Record) bool) {
	pi.tree.Ascend(func(item btree.Item) bool {
		return fn(item.(*priceItem).record)
	})
}

// Range calls fn for every record priced in [lo, hi), NaN prices are never in range
func (pi *PriceIndex) Range(lo, hi float64, fn func(record *data.Record) bool) {
	pi.tree.Ascend(func(item btree.Item) bool {
		r := item.(*priceItem).record
		if math.IsNaN(r.Price) {
			return true
		}
		if r.Price >= hi {
			return false
		}
		if r.Price < lo {
			return true
		}
		return fn(r)
	})
}

func (pi *PriceIndex) Count() int {
	return pi.tree.Len()
}

func (pi *PriceIndex) Clear() {
	pi.tree.Clear(false)
}
