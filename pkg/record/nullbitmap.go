package record

import "go-tuple/util/helpers"

// nullBitmap packs one presence bit per attribute, stored between the
// record header and the data stream, and present only when the record
// has at least one null.
//
// Polarity: a set bit means the attribute is present (not null). The
// encoder and decoder both go through this type; the convention is
// part of the byte layout.
type nullBitmap []byte

func bitmapLen(natts int) int {
	return (natts + 7) / 8
}

// isSet reports whether 0-based attribute i is present.
func (b nullBitmap) isSet(i int) bool {
	return helpers.GetBit(b[i>>3], uint8(i&7))
}

// setPresent records presence/absence of 0-based attribute i.
func (b nullBitmap) setPresent(i int, present bool) {
	helpers.SetBit(&b[i>>3], uint8(i&7), present)
}
