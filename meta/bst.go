package meta

import (
	"github.com/Kirov7/CheeseDB/data"
)

type node struct {
	key    string
	record *data.Record
	left   *node
	right  *node
}

// BST Unbalanced binary search tree over composite keys.
// Equal keys descend to the right, so duplicates are kept in insertion order.
type BST struct {
	root *node
	size int
}

func NewBST() *BST {
	return &BST{}
}

// Put attaches the record as a new leaf
func (t *BST) Put(record *data.Record) {
	key := record.Key()
	link := &t.root
	for *link != nil {
		if data.Compare(key, (*link).key) < 0 {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = &node{key: key, record: record}
	t.size++
}

// Get returns the first record on the search path whose composite key equals key
func (t *BST) Get(key string) *data.Record {
	n := t.root
	for n != nil {
		switch c := data.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.record
		}
	}
	return nil
}

// Del removes the first node matching key and returns its record
func (t *BST) Del(key string) (*data.Record, bool) {
	removed, ok := del(&t.root, key)
	if ok {
		t.size--
	}
	return removed, ok
}

func del(link **node, key string) (*data.Record, bool) {
	n := *link
	if n == nil {
		return nil, false
	}
	if c := data.Compare(key, n.key); c < 0 {
		return del(&n.left, key)
	} else if c > 0 {
		return del(&n.right, key)
	}

	removed := n.record
	switch {
	case n.left == nil && n.right == nil:
		*link = nil
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		// promote the in-order successor, then unlink the successor node itself
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		n.key, n.record = (*succ).key, (*succ).record
		*succ = (*succ).right
	}
	return removed, true
}

// Ascend calls fn for every record in ascending composite key order until fn returns false
func (t *BST) Ascend(fn func(record *data.Record) bool) {
	ascend(t.root, fn)
}

func ascend(n *node, fn func(record *data.Record) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.record) {
		return false
	}
	return ascend(n.right, fn)
}

func (t *BST) Count() int {
	return t.size
}

// Height number of nodes on the longest root to leaf path
func (t *BST) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func (t *BST) Clear() {
	t.root = nil
	t.size = 0
}

func (t *BST) Iterator(reverse bool) *BSTIterator {
	it := &BSTIterator{root: t.root, reverse: reverse}
	it.Rewind()
	return it
}

// BSTIterator walks the tree lazily with an explicit stack.
// Any mutation of the tree invalidates it.
type BSTIterator struct {
	root    *node
	reverse bool
	stack   []*node
}

func (it *BSTIterator) Rewind() {
	it.stack = it.stack[:0]
	it.push(it.root)
}

// Seek positions at the first key >= key, or <= key when reversed
func (it *BSTIterator) Seek(key string) {
	it.stack = it.stack[:0]
	n := it.root
	for n != nil {
		c := data.Compare(n.key, key)
		if it.reverse {
			if c <= 0 {
				it.stack = append(it.stack, n)
				n = n.right
			} else {
				n = n.left
			}
		} else {
			if c >= 0 {
				it.stack = append(it.stack, n)
				n = n.left
			} else {
				n = n.right
			}
		}
	}
}

func (it *BSTIterator) Next() {
	if !it.Valid() {
		return
	}
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if it.reverse {
		it.push(top.left)
	} else {
		it.push(top.right)
	}
}

func (it *BSTIterator) push(n *node) {
	for n != nil {
		it.stack = append(it.stack, n)
		if it.reverse {
			n = n.right
		} else {
			n = n.left
		}
	}
}

func (it *BSTIterator) Valid() bool {
	return len(it.stack) > 0
}

func (it *BSTIterator) Key() string {
	return it.stack[len(it.stack)-1].key
}

func (it *BSTIterator) Value() *data.Record {
	return it.stack[len(it.stack)-1].record
}

func (it *BSTIterator) Close() {
	it.root = nil
	it.stack = nil
}
