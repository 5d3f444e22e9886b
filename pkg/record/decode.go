package record

import (
	"github.com/pkg/errors"

	"go-tuple/pkg/customerrors"
	"go-tuple/util/logger"
)

// getattr resolves the non-null attribute attnum (1-based) inside a
// record's data stream. bits is the record's null bitmap, nil when
// the record has no nulls; hasVar is the record's has-varlena header
// flag. Callers have already handled nulls of the target attribute
// and out-of-range attribute numbers.
//
// Three cases, cheapest first:
//
//  1. no nulls and the offset is already memoized (the first
//     attribute is always at offset zero): fetch directly;
//  2. no nulls and no variable length attribute before the target:
//     every offset up to the target is shape-determined, so extend
//     the cache from the last memoized attribute and fetch;
//  3. a null or varlena precedes the target: walk the record from
//     attribute one consulting the bitmap. Offsets remain memoizable
//     only until the first null or varlena seen in the walk; after
//     that attribute positions depend on record contents and caching
//     stops for good.
func getattr(desc *Descriptor, data []byte, bits nullBitmap, hasVar bool, attnum int) (Datum, error) {
	att := desc.attrs[attnum-1]

	if bits == nil {
		if off := att.cachedOffset(); off >= 0 {
			return fetchatt(att, data, off)
		}
		if attnum == 1 {
			att.setCachedOffset(0)
			return fetchatt(att, data, 0)
		}
	}

	slow := false
	if bits != nil {
		for i := 0; i < attnum-1; i++ {
			if !bits.isSet(i) {
				slow = true
				break
			}
		}
	}

	if !slow {
		if off := att.cachedOffset(); off >= 0 {
			return fetchatt(att, data, off)
		}
		if attnum == 1 {
			att.setCachedOffset(0)
			return fetchatt(att, data, 0)
		}
		if hasVar {
			for j := 0; j < attnum-1; j++ {
				if desc.attrs[j].Len < 0 {
					slow = true
					break
				}
			}
		}
	}

	if !slow {
		// everything up to the target is fixed length and non-null:
		// memoize the remaining offsets in one pass
		atts := desc.attrs
		atts[0].setCachedOffset(0)

		j := 1
		for j < attnum-1 && atts[j].cachedOffset() >= 0 {
			j++
		}

		off := atts[j-1].cachedOffset() + atts[j-1].Len
		for ; j < attnum; j++ {
			off = alignOffset(off, atts[j])
			atts[j].setCachedOffset(off)
			off += atts[j].Len
		}

		return fetchatt(att, data, att.cachedOffset())
	}

	usecache := true
	off := 0
	for i := 0; i < attnum-1; i++ {
		if bits != nil && !bits.isSet(i) {
			usecache = false
			continue
		}

		a := desc.attrs[i]
		if usecache {
			if c := a.cachedOffset(); c >= 0 {
				off = c
			} else {
				off = alignOffset(off, a)
				a.setCachedOffset(off)
			}
		} else {
			off = alignOffset(off, a)
		}

		switch {
		case a.Len < 0:
			usecache = false
			if off+VarlenaPrefixSize > len(data) {
				return nil, corrupt(a, "varlena prefix past end of record")
			}
			sz := VarSize(data[off:])
			if sz < VarlenaPrefixSize {
				return nil, corrupt(a, "varlena size below prefix size")
			}
			off += sz
		case a.Len == 0:
			return nil, corrupt(a, "zero length attribute")
		default:
			off += a.Len
		}
	}

	return fetchatt(att, data, alignOffset(off, att))
}

// fetchatt borrows attribute att's datum starting at off inside data.
func fetchatt(att *Attribute, data []byte, off int) (Datum, error) {
	if att.Len < 0 {
		if off+VarlenaPrefixSize > len(data) {
			return nil, corrupt(att, "varlena prefix past end of record")
		}
		sz := VarSize(data[off:])
		if sz < VarlenaPrefixSize {
			return nil, corrupt(att, "varlena size below prefix size")
		}
		if off+sz > len(data) {
			return nil, corrupt(att, "varlena past end of record")
		}
		return Datum(data[off : off+sz]), nil
	}

	if att.Len < 1 {
		return nil, corrupt(att, "zero length attribute")
	}
	if off+att.Len > len(data) {
		return nil, corrupt(att, "attribute past end of record")
	}
	return Datum(data[off : off+att.Len]), nil
}

// corrupt records are never repaired: continuing to walk one risks
// reading adjacent memory as attribute data.
func corrupt(att *Attribute, msg string) error {
	logger.L.Errorf("corrupt record: attribute %q: %s", att.Name, msg)
	return errors.Wrapf(customerrors.ErrCorruptRecord, "attribute %q: %s", att.Name, msg)
}
