package record

import (
	"sync/atomic"

	"go-tuple/pkg/column"
	"go-tuple/pkg/types"
)

// Alignment boundaries an attribute's value may require.
const (
	AlignChar   uint8 = 1
	AlignShort  uint8 = 2
	AlignInt    uint8 = 4
	AlignDouble uint8 = 8
)

// Attribute describes the physical shape of one record attribute.
//
// Always build attributes through a constructor: the zero value of
// the embedded offset cache is load-bearing.
type Attribute struct {
	Name  string
	Len   int   // byte length, -1 for variable length
	Align uint8 // required alignment boundary
	ByVal bool

	// Memoized byte offset of this attribute inside the data stream,
	// biased by +1 so that the zero value means "unset". An offset is
	// only ever stored when it is shape-determined, i.e. identical
	// for every record built from the owning descriptor, so racing
	// writers all store the same value and a plain atomic store is
	// enough. The cache fills monotonically and is dropped only with
	// the descriptor itself.
	cacheOff atomic.Int32
}

// NewAttribute derives an attribute's physical shape from type
// metadata supplied by the catalog.
func NewAttribute(name string, meta types.DataTypeMeta) *Attribute {
	return &Attribute{
		Name:  name,
		Len:   meta.Size(),
		Align: meta.Align(),
		ByVal: meta.ByVal(),
	}
}

// NewFixedAttribute describes a fixed length attribute of size bytes.
func NewFixedAttribute(name string, size int, align uint8, byval bool) *Attribute {
	return &Attribute{Name: name, Len: size, Align: align, ByVal: byval}
}

// NewVarAttribute describes a variable length attribute. wide selects
// 8 byte payload alignment instead of 4.
func NewVarAttribute(name string, wide bool) *Attribute {
	align := AlignInt
	if wide {
		align = AlignDouble
	}
	return &Attribute{Name: name, Len: -1, Align: align}
}

// cachedOffset returns the memoized offset, or -1 if not yet known.
func (a *Attribute) cachedOffset() int {
	return int(a.cacheOff.Load()) - 1
}

func (a *Attribute) setCachedOffset(off int) {
	a.cacheOff.Store(int32(off) + 1)
}

// Descriptor is the ordered schema a record is encoded and decoded
// against. It is created once per record shape and reused across many
// calls; the offset cache it carries is shared by every record of
// that exact shape and must never be consulted for records of a
// different one.
type Descriptor struct {
	attrs  []*Attribute
	hasVar bool
}

func NewDescriptor(attrs ...*Attribute) *Descriptor {
	d := &Descriptor{attrs: attrs}
	for _, a := range attrs {
		if a.Len < 0 {
			d.hasVar = true
			break
		}
	}
	return d
}

// NewDescriptorFromColumns builds a descriptor from catalog columns.
func NewDescriptorFromColumns(cols []*column.Column) *Descriptor {
	attrs := make([]*Attribute, len(cols))
	for i, col := range cols {
		attrs[i] = NewAttribute(col.Name, col.Meta)
	}
	return NewDescriptor(attrs...)
}

func (d *Descriptor) NumAttrs() int {
	return len(d.attrs)
}

// Attr returns the i-th (0-based) attribute.
func (d *Descriptor) Attr(i int) *Attribute {
	return d.attrs[i]
}

func (d *Descriptor) HasVarlena() bool {
	return d.hasVar
}
