package record

import (
	"github.com/pkg/errors"

	"go-tuple/pkg/customerrors"
	"go-tuple/util/helpers"
)

// Heap record layout:
//
//	[0:4)  uint32 total length
//	[4:6)  uint16 attribute count
//	[6:8)  uint16 header flags (has-nulls, has-varlena)
//	[8:10) uint16 data stream offset
//	[10:)  null bitmap when has-nulls, zero padding, data stream
//
// The data stream starts 8-aligned so attribute alignment holds
// relative to the record start as well.
const heapHeaderSize = 10

// HeapRecord is an immutable encoded row. "Modification" means
// building a new record, see Modify.
type HeapRecord struct {
	raw []byte
}

// FormHeap encodes one row of values against desc. values and nulls
// are in descriptor order; a true null flag suppresses the value.
// desc is only read, never written.
func FormHeap(desc *Descriptor, values []Datum, nulls []bool) (*HeapRecord, error) {
	natts := desc.NumAttrs()
	if natts > MaxHeapAttributes {
		return nil, errors.Wrapf(customerrors.ErrSchemaViolation,
			"%d attributes exceed heap cap of %d", natts, MaxHeapAttributes)
	}
	if len(values) != natts || len(nulls) != natts {
		return nil, errors.Wrapf(customerrors.ErrSchemaViolation,
			"descriptor has %d attributes, got %d values and %d null flags",
			natts, len(values), len(nulls))
	}

	hasnull := false
	for i := 0; i < natts && !hasnull; i++ {
		hasnull = nulls[i]
	}

	hoff := heapHeaderSize
	if hasnull {
		hoff += bitmapLen(natts)
	}
	hoff = helpers.Align(hoff, int(AlignDouble))

	datalen, err := dataSize(desc, values, nulls)
	if err != nil {
		return nil, err
	}
	if hoff+datalen > MaxHeapRecordSize {
		return nil, errors.Wrapf(customerrors.ErrRecordTooLarge,
			"heap record of %d bytes", hoff+datalen)
	}

	buf := make([]byte, hoff+datalen)
	bin.PutUint32(buf[0:4], uint32(len(buf)))
	bin.PutUint16(buf[4:6], uint16(natts))
	bin.PutUint16(buf[8:10], uint16(hoff))

	var bits nullBitmap
	if hasnull {
		bits = buf[heapHeaderSize : heapHeaderSize+bitmapLen(natts)]
	}
	mask := dataFill(buf[hoff:], desc, values, nulls, bits)
	bin.PutUint16(buf[6:8], mask)

	return &HeapRecord{raw: buf}, nil
}

// NewHeapRecord re-adopts raw record bytes, e.g. read back from the
// storage manager, validating the header against the byte count.
func NewHeapRecord(raw []byte) (*HeapRecord, error) {
	if len(raw) < heapHeaderSize {
		return nil, errors.Wrapf(customerrors.ErrCorruptRecord,
			"%d bytes is below the header size", len(raw))
	}
	r := &HeapRecord{raw: raw}
	hoff := r.dataOff()
	minHoff := heapHeaderSize
	if r.HasNulls() {
		minHoff += bitmapLen(r.NumAttrs())
	}
	if int(bin.Uint32(raw[0:4])) != len(raw) || hoff > len(raw) || hoff < minHoff {
		return nil, errors.Wrap(customerrors.ErrCorruptRecord, "heap record header")
	}
	return r, nil
}

// Bytes exposes the encoded form for the storage manager. Callers
// must not modify it.
func (r *HeapRecord) Bytes() []byte {
	return r.raw
}

func (r *HeapRecord) Len() int {
	return len(r.raw)
}

func (r *HeapRecord) NumAttrs() int {
	return int(bin.Uint16(r.raw[4:6]))
}

func (r *HeapRecord) HasNulls() bool {
	return bin.Uint16(r.raw[6:8])&recHasNull != 0
}

func (r *HeapRecord) HasVarlena() bool {
	return bin.Uint16(r.raw[6:8])&recHasVarlena != 0
}

func (r *HeapRecord) dataOff() int {
	return int(bin.Uint16(r.raw[8:10]))
}

func (r *HeapRecord) bits() nullBitmap {
	if !r.HasNulls() {
		return nil
	}
	return nullBitmap(r.raw[heapHeaderSize : heapHeaderSize+bitmapLen(r.NumAttrs())])
}

// GetAttr extracts attribute attnum (1-based). A number past the
// record's own attribute count but within desc reads as NULL: a
// record written under an older, shorter schema yields NULL for
// columns added since. The returned datum borrows the record's
// buffer.
func (r *HeapRecord) GetAttr(desc *Descriptor, attnum int) (Datum, bool, error) {
	if attnum < 1 || attnum > desc.NumAttrs() {
		return nil, false, errors.Wrapf(customerrors.ErrAttributeOutOfRange,
			"attribute %d of %d", attnum, desc.NumAttrs())
	}
	if attnum > r.NumAttrs() {
		return nil, true, nil
	}

	bits := r.bits()
	if bits != nil && !bits.isSet(attnum-1) {
		return nil, true, nil
	}

	d, err := getattr(desc, r.raw[r.dataOff():], bits, r.HasVarlena(), attnum)
	if err != nil {
		return nil, false, err
	}
	return d, false, nil
}

// AttIsNull reports whether attribute attnum (1-based) is absent,
// without walking the data stream.
func (r *HeapRecord) AttIsNull(attnum int) bool {
	if attnum > r.NumAttrs() {
		return true
	}
	if !r.HasNulls() {
		return false
	}
	return !r.bits().isSet(attnum - 1)
}

// Deform decodes the whole record into value and null vectors of
// desc's length. Datums borrow the record's buffer.
func (r *HeapRecord) Deform(desc *Descriptor) ([]Datum, []bool, error) {
	natts := desc.NumAttrs()
	values := make([]Datum, natts)
	nulls := make([]bool, natts)

	for i := 0; i < natts; i++ {
		v, isnull, err := r.GetAttr(desc, i+1)
		if err != nil {
			return nil, nil, err
		}
		values[i] = v
		nulls[i] = isnull
	}
	return values, nulls, nil
}

// Copy duplicates the record into an independently owned buffer.
func (r *HeapRecord) Copy() (*HeapRecord, error) {
	if len(r.raw) > MaxHeapRecordSize {
		return nil, errors.Wrapf(customerrors.ErrRecordTooLarge,
			"heap record of %d bytes", len(r.raw))
	}
	cp := make([]byte, len(r.raw))
	copy(cp, r.raw)
	return &HeapRecord{raw: cp}, nil
}

// Modify rebuilds the record substituting replValues[i]/replNulls[i]
// for every attribute with repl[i] set; all other attributes are read
// from the old record. The result is a new, independent record.
func (r *HeapRecord) Modify(desc *Descriptor, replValues []Datum, replNulls []bool, repl []bool) (*HeapRecord, error) {
	natts := desc.NumAttrs()
	if len(replValues) != natts || len(replNulls) != natts || len(repl) != natts {
		return nil, errors.Wrapf(customerrors.ErrSchemaViolation,
			"descriptor has %d attributes, got %d/%d/%d replacement entries",
			natts, len(replValues), len(replNulls), len(repl))
	}

	values := make([]Datum, natts)
	nulls := make([]bool, natts)
	for i := 0; i < natts; i++ {
		if repl[i] {
			values[i] = replValues[i]
			nulls[i] = replNulls[i]
			continue
		}

		v, isnull, err := r.GetAttr(desc, i+1)
		if err != nil {
			return nil, err
		}
		values[i] = v
		nulls[i] = isnull
	}

	return FormHeap(desc, values, nulls)
}
