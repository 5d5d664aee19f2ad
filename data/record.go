package data

import (
	"strconv"
	"strings"
)

type State uint8

const (
	Unknown State = iota
	Solid
	Moldy
)

func (s State) String() string {
	switch s {
	case Solid:
		return "Solid"
	case Moldy:
		return "Moldy"
	default:
		return "Unknown"
	}
}

// ParseState maps a state name back to its State, anything unrecognised is Unknown
func ParseState(name string) State {
	switch strings.ToLower(name) {
	case "solid":
		return Solid
	case "moldy":
		return Moldy
	default:
		return Unknown
	}
}

// Record A single catalog entry
type Record struct {
	Brand      string
	Type       string
	FatContent float64
	Price      float64
	State      State

	// Seq is assigned by the catalog on insert, it never takes part in ordering
	Seq uint64
}

// NewRecord Build a record in its initial Solid state
func NewRecord(brand, typ string, fatContent, price float64) *Record {
	return &Record{
		Brand:      brand,
		Type:       typ,
		FatContent: fatContent,
		Price:      price,
		State:      Solid,
	}
}

// FormatPrice renders a price the way it takes part in the composite key: fixed point, six fractional digits
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 6, 64)
}

// CompositeKey brand followed by the textual price, e.g. "Gouda5.000000"
func CompositeKey(brand string, price float64) string {
	return brand + FormatPrice(price)
}

func (r *Record) Key() string {
	return CompositeKey(r.Brand, r.Price)
}

// Compare orders two composite keys as plain strings, returns -1, 0 or 1
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
