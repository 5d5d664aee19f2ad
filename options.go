package CheeseDB

import "github.com/Kirov7/CheeseDB/public"

type Options struct {
	// MaxTraversal caps the number of records a single ListAll may capture, 0 means unbounded
	MaxTraversal int
	// RefreshOnSave takes a fresh traversal before SaveToFile instead of writing the last one
	RefreshOnSave bool
	SyncWrites    bool
	EnableLua     bool
}

type IteratorOptions struct {
	// Prefix only composite keys starting with it are visited, a brand works as a prefix
	Prefix  string
	Reverse bool
}

func DefaultOptions() Options {
	return Options{
		MaxTraversal:  public.UnboundedTraversal,
		RefreshOnSave: false,
		SyncWrites:    true,
		EnableLua:     true,
	}
}
