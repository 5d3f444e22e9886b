package record

import (
	"github.com/pkg/errors"

	"go-tuple/pkg/customerrors"
	"go-tuple/util/helpers"
)

// Index record layout:
//
//	[0:2) uint16 info: 13-bit total size | has-varlena | has-nulls
//	[2:4) uint16 attribute count
//	[4:)  null bitmap when has-nulls, zero padding, data stream
//
// Index records are fixed-shape: unlike heap records there is no
// implicit-NULL recovery for attribute numbers past the descriptor.
const (
	indexHeaderSize = 4

	indexSizeMask uint16 = 0x1fff
	indexVarMask  uint16 = 0x4000
	indexNullMask uint16 = 0x8000
)

type IndexRecord struct {
	raw []byte
}

// FormIndex encodes one index entry against desc. The total size must
// fit the info word's 13-bit size field; oversized entries fail
// before any buffer is allocated.
func FormIndex(desc *Descriptor, values []Datum, nulls []bool) (*IndexRecord, error) {
	natts := desc.NumAttrs()
	if natts > MaxIndexAttributes {
		return nil, errors.Wrapf(customerrors.ErrSchemaViolation,
			"%d attributes exceed index cap of %d", natts, MaxIndexAttributes)
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

	hoff := indexDataOff(natts, hasnull)
	datalen, err := dataSize(desc, values, nulls)
	if err != nil {
		return nil, err
	}
	size := helpers.Align(hoff+datalen, int(AlignDouble))
	if size > int(indexSizeMask) {
		return nil, errors.Wrapf(customerrors.ErrRecordTooLarge,
			"index record of %d bytes exceeds %d", size, indexSizeMask)
	}

	buf := make([]byte, size)
	var bits nullBitmap
	if hasnull {
		bits = buf[indexHeaderSize : indexHeaderSize+bitmapLen(natts)]
	}
	mask := dataFill(buf[hoff:], desc, values, nulls, bits)

	info := uint16(size)
	if mask&recHasNull != 0 {
		info |= indexNullMask
	}
	if mask&recHasVarlena != 0 {
		info |= indexVarMask
	}
	bin.PutUint16(buf[0:2], info)
	bin.PutUint16(buf[2:4], uint16(natts))

	return &IndexRecord{raw: buf}, nil
}

// NewIndexRecord re-adopts raw index record bytes, validating the
// header against the byte count.
func NewIndexRecord(raw []byte) (*IndexRecord, error) {
	if len(raw) < indexHeaderSize {
		return nil, errors.Wrapf(customerrors.ErrCorruptRecord,
			"%d bytes is below the header size", len(raw))
	}
	r := &IndexRecord{raw: raw}
	if r.Size() != len(raw) || r.dataOff() > len(raw) {
		return nil, errors.Wrap(customerrors.ErrCorruptRecord, "index record header")
	}
	return r, nil
}

func (r *IndexRecord) Bytes() []byte {
	return r.raw
}

// Size is the total encoded size carried in the info word.
func (r *IndexRecord) Size() int {
	return int(bin.Uint16(r.raw[0:2]) & indexSizeMask)
}

func (r *IndexRecord) NumAttrs() int {
	return int(bin.Uint16(r.raw[2:4]))
}

func (r *IndexRecord) HasNulls() bool {
	return bin.Uint16(r.raw[0:2])&indexNullMask != 0
}

func (r *IndexRecord) HasVarlena() bool {
	return bin.Uint16(r.raw[0:2])&indexVarMask != 0
}

func indexDataOff(natts int, hasnull bool) int {
	hoff := indexHeaderSize
	if hasnull {
		hoff += bitmapLen(natts)
	}
	return helpers.Align(hoff, int(AlignDouble))
}

func (r *IndexRecord) dataOff() int {
	return indexDataOff(r.NumAttrs(), r.HasNulls())
}

func (r *IndexRecord) bits() nullBitmap {
	if !r.HasNulls() {
		return nil
	}
	return nullBitmap(r.raw[indexHeaderSize : indexHeaderSize+bitmapLen(r.NumAttrs())])
}

// GetAttr extracts attribute attnum (1-based). Index records have a
// fixed shape, so attribute numbers outside the descriptor are a hard
// error. The returned datum borrows the record's buffer.
func (r *IndexRecord) GetAttr(desc *Descriptor, attnum int) (Datum, bool, error) {
	if attnum < 1 || attnum > desc.NumAttrs() || attnum > r.NumAttrs() {
		return nil, false, errors.Wrapf(customerrors.ErrAttributeOutOfRange,
			"attribute %d of %d", attnum, desc.NumAttrs())
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

// Copy duplicates the record into an independently owned buffer.
func (r *IndexRecord) Copy() *IndexRecord {
	cp := make([]byte, len(r.raw))
	copy(cp, r.raw)
	return &IndexRecord{raw: cp}
}
