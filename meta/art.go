package meta

import (
	"sort"

	art "github.com/plar/go-adaptive-radix-tree"
)

// BrandIndex keeps the number of live records per brand in an adaptive radix tree
type BrandIndex struct {
	tree art.Tree
}

func NewBrandIndex() *BrandIndex {
	return &BrandIndex{
		tree: art.New(),
	}
}

func (b *BrandIndex) Put(brand string) {
	key := art.Key(brand)
	count := 0
	if value, ok := b.tree.Search(key); ok {
		count = value.(int)
	}
	b.tree.Insert(key, count+1)
}

// Del drops one record of the brand, the brand disappears with its last record
func (b *BrandIndex) Del(brand string) bool {
	key := art.Key(brand)
	value, ok := b.tree.Search(key)
	if !ok {
		return false
	}
	if count := value.(int); count > 1 {
		b.tree.Insert(key, count-1)
	} else {
		b.tree.Delete(key)
	}
	return true
}

// Get number of records carrying the brand
func (b *BrandIndex) Get(brand string) int {
	value, ok := b.tree.Search(art.Key(brand))
	if !ok {
		return 0
	}
	return value.(int)
}

// Prefix distinct brands starting with prefix, sorted
func (b *BrandIndex) Prefix(prefix string) []string {
	var brands []string
	collect := func(node art.Node) bool {
		if node.Kind() == art.Leaf {
			brands = append(brands, string(node.Key()))
		}
		return true
	}
	if prefix == "" {
		b.tree.ForEach(collect)
	} else {
		b.tree.ForEachPrefix(art.Key(prefix), collect)
	}
	sort.Strings(brands)
	return brands
}

// Count number of distinct brands
func (b *BrandIndex) Count() int {
	return b.tree.Size()
}

func (b *BrandIndex) Clear() {
	b.tree = art.New()
}
