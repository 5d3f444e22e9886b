package record

// Header flag bits shared by record kinds. dataFill derives them for
// the caller to fold into its own header format.
const (
	recHasNull    uint16 = 0x0001
	recHasVarlena uint16 = 0x0002
)

// dataFill encodes one value set into dst, which must be zeroed and
// sized by dataSize against the same descriptor, values and nulls.
// When bits is non-nil the presence bit of every attribute is
// recorded there. Returns the derived header flags. Never mutates the
// descriptor.
func dataFill(dst []byte, desc *Descriptor, values []Datum, nulls []bool, bits nullBitmap) uint16 {
	var mask uint16
	off := 0

	for i, att := range desc.attrs {
		if nulls[i] {
			mask |= recHasNull
			if bits != nil {
				bits.setPresent(i, false)
			}
			continue
		}
		if bits != nil {
			bits.setPresent(i, true)
		}

		if att.Len < 0 {
			mask |= recHasVarlena
		}

		// padding bytes stay zero: dst is pre-zeroed and only datum
		// bytes are written
		off = alignOffset(off, att)
		off += copy(dst[off:], values[i])
	}

	return mask
}
