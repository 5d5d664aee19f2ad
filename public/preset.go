package public

const (
	DefaultDataFile = "cheese.txt"
	ConfigKeyPrefix = "catalog"
)

const (
	// UnboundedTraversal MaxTraversal value that disables the traversal capacity check
	UnboundedTraversal = 0

	// LegacyTraversalCapacity the fixed output buffer size older catalogs were limited to
	LegacyTraversalCapacity = 100
)
