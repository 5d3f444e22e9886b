// Package record implements the physical record codec shared by the
// heap and index storage layers: packing schema-described attribute
// values into a compact byte layout with a null-presence bitmap, and
// extracting single attributes back out with per-descriptor offset
// memoization.
//
// The encoded form is a native in-memory layout, not a wire format:
// scalars are stored in machine (little-endian) order and no
// cross-platform portability is promised.
package record

import "encoding/binary"

var bin = binary.LittleEndian

// Datum is one attribute value in its raw encoded form. Fixed length
// attributes are exactly their declared length; variable length
// attributes carry a 4 byte self-inclusive length prefix.
//
// Datums returned by record accessors are subslices of the record's
// buffer: the record must be kept alive as long as the datum is used.
type Datum []byte

// Compiled-in attribute count caps, enforced at record formation.
const (
	MaxHeapAttributes  = 1600
	MaxIndexAttributes = 32
)

// MaxHeapRecordSize bounds a heap record's total byte size; formation
// and duplication refuse larger records before allocating.
const MaxHeapRecordSize = 1 << 30
