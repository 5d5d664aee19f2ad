package CheeseDB

import (
	"github.com/Kirov7/CheeseDB/data"
	"github.com/Kirov7/CheeseDB/driver"
	"github.com/Kirov7/CheeseDB/meta"
	"github.com/Kirov7/CheeseDB/public"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// Catalog an ordered catalog of cheese records.
// It owns every record it stores, callers only ever see copies.
// A Catalog is not safe for concurrent use.
type Catalog struct {
	options Options
	tree    *meta.BST
	prices  *meta.PriceIndex
	brands  *meta.BrandIndex

	// records captured by the most recent ListAll, written by SaveToFile
	lastTraversal []*data.Record
	seq           uint64

	L *lua.LState
}

func NewCatalog(opt Options) (*Catalog, error) {
	// Verify configuration items
	if err := checkOptions(&opt); err != nil {
		return nil, err
	}
	c := &Catalog{
		options: opt,
		tree:    meta.NewBST(),
		prices:  meta.NewPriceIndex(),
		brands:  meta.NewBrandIndex(),
	}
	if opt.EnableLua {
		c.initLuaInterpreter()
	}
	return c, nil
}

func checkOptions(opt *Options) error {
	if opt.MaxTraversal < 0 {
		return errors.New("MaxTraversal can not be negative")
	}
	return nil
}

func (c *Catalog) Close() error {
	if c.L != nil {
		c.L.Close()
		c.L = nil
	}
	return nil
}

// Put builds a record from its fields and inserts it
func (c *Catalog) Put(brand, typ string, fatContent, price float64) error {
	return c.Insert(data.NewRecord(brand, typ, fatContent, price))
}

// Insert stores a copy of record as a new leaf, in the Solid state.
// Duplicate composite keys are accepted and land right of the existing ones.
func (c *Catalog) Insert(record *data.Record) error {
	if record == nil || record.Brand == "" {
		return public.ErrBrandIsEmpty
	}
	owned := record.Clone()
	owned.State = data.Solid
	c.insert(owned)
	return nil
}

func (c *Catalog) insert(record *data.Record) {
	c.seq++
	record.Seq = c.seq
	c.tree.Put(record)
	c.prices.Put(record)
	c.brands.Put(record.Brand)
}

// Remove deletes the first record matching brand and price and returns it.
// When nothing matches the catalog is left unchanged and the error wraps public.ErrRecordNotFound.
func (c *Catalog) Remove(brand string, price float64) (*data.Record, error) {
	removed, ok := c.tree.Del(data.CompositeKey(brand, price))
	if !ok {
		return nil, errors.Wrapf(public.ErrRecordNotFound, "brand %s, price %s", brand, data.FormatPrice(price))
	}
	c.prices.Del(removed)
	c.brands.Del(removed.Brand)
	return removed.Clone(), nil
}

// Search reports whether a record with exactly this brand and price exists
func (c *Catalog) Search(brand string, price float64) bool {
	return c.tree.Get(data.CompositeKey(brand, price)) != nil
}

func (c *Catalog) Get(brand string, price float64) (*data.Record, error) {
	record := c.tree.Get(data.CompositeKey(brand, price))
	if record == nil {
		return nil, errors.Wrapf(public.ErrRecordNotFound, "brand %s, price %s", brand, data.FormatPrice(price))
	}
	return record.Clone(), nil
}

// SetState replaces the state of the first record matching brand and price
func (c *Catalog) SetState(brand string, price float64, state data.State) error {
	record := c.tree.Get(data.CompositeKey(brand, price))
	if record == nil {
		return errors.Wrapf(public.ErrRecordNotFound, "brand %s, price %s", brand, data.FormatPrice(price))
	}
	record.State = state
	return nil
}

// ListAll returns every record in ascending composite key order and keeps the result
// as the last traversal for SaveToFile
func (c *Catalog) ListAll() ([]*data.Record, error) {
	if c.options.MaxTraversal > 0 && c.tree.Count() > c.options.MaxTraversal {
		return nil, errors.Wrapf(public.ErrCapacityExceeded, "%d records, capacity %d", c.tree.Count(), c.options.MaxTraversal)
	}
	snapshot := make([]*data.Record, 0, c.tree.Count())
	c.tree.Ascend(func(record *data.Record) bool {
		snapshot = append(snapshot, record.Clone())
		return true
	})
	c.lastTraversal = snapshot
	return cloneAll(snapshot), nil
}

// LastTraversal the records SaveToFile would write right now
func (c *Catalog) LastTraversal() []*data.Record {
	return cloneAll(c.lastTraversal)
}

// ListByPrice every record in numeric price order, ties broken by brand then insertion order
func (c *Catalog) ListByPrice() []*data.Record {
	records := make([]*data.Record, 0, c.prices.Count())
	c.prices.Ascend(func(record *data.Record) bool {
		records = append(records, record.Clone())
		return true
	})
	return records
}

// PriceRange records priced in [lo, hi), in numeric price order
func (c *Catalog) PriceRange(lo, hi float64) []*data.Record {
	var records []*data.Record
	c.prices.Range(lo, hi, func(record *data.Record) bool {
		records = append(records, record.Clone())
		return true
	})
	return records
}

// BrandsWithPrefix distinct brands currently stored that start with prefix
func (c *Catalog) BrandsWithPrefix(prefix string) []string {
	return c.brands.Prefix(prefix)
}

// CountBrand number of records carrying the brand
func (c *Catalog) CountBrand(brand string) int {
	return c.brands.Get(brand)
}

// CountBrands number of distinct brands stored
func (c *Catalog) CountBrands() int {
	return c.brands.Count()
}

func (c *Catalog) Len() int {
	return c.tree.Count()
}

func (c *Catalog) Height() int {
	return c.tree.Height()
}

// Clear drops every record and the last traversal
func (c *Catalog) Clear() {
	c.tree.Clear()
	c.prices.Clear()
	c.brands.Clear()
	c.lastTraversal = nil
}

func (c *Catalog) NewIterator(options IteratorOptions) *Iterator {
	it := &Iterator{
		options:       options,
		IndexIterator: c.tree.Iterator(options.Reverse),
	}
	it.Rewind()
	return it
}

func cloneAll(records []*data.Record) []*data.Record {
	out := make([]*data.Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

func wrapOpenErr(err error, path, mode string) error {
	if errors.Is(err, driver.ErrFileLocked) {
		return errors.Wrapf(err, "file %s", path)
	}
	return errors.Wrapf(public.ErrIOUnavailable, "%s for %s: %v", path, mode, err)
}
