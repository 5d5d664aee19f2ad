package CheeseDB

import (
	"strings"

	"github.com/Kirov7/CheeseDB/data"
	"github.com/Kirov7/CheeseDB/meta"
)

// Iterator walks the catalog in composite key order without copying it.
// It must not outlive a mutation of the catalog.
type Iterator struct {
	options       IteratorOptions
	IndexIterator *meta.BSTIterator
}

func (it *Iterator) Rewind() {
	if it.options.Prefix != "" && !it.options.Reverse {
		it.IndexIterator.Seek(it.options.Prefix)
		return
	}
	it.IndexIterator.Rewind()
	it.skipToNext()
}

// Seek positions at the first composite key >= key, or <= key when reversed
func (it *Iterator) Seek(key string) {
	it.IndexIterator.Seek(key)
	it.skipToNext()
}

func (it *Iterator) Next() {
	it.IndexIterator.Next()
}

func (it *Iterator) Valid() bool {
	if !it.IndexIterator.Valid() {
		return false
	}
	return strings.HasPrefix(it.IndexIterator.Key(), it.options.Prefix)
}

func (it *Iterator) Key() string {
	return it.IndexIterator.Key()
}

func (it *Iterator) Record() *data.Record {
	return it.IndexIterator.Value().Clone()
}

func (it *Iterator) Close() {
	it.IndexIterator.Close()
}

// skipToNext moves a reversed iterator past the keys sorting above the prefix range
func (it *Iterator) skipToNext() {
	prefix := it.options.Prefix
	if prefix == "" || !it.options.Reverse {
		return
	}
	for ; it.IndexIterator.Valid(); it.IndexIterator.Next() {
		key := it.IndexIterator.Key()
		if strings.HasPrefix(key, prefix) || key < prefix {
			break
		}
	}
}
