package record

// Variable length attribute payloads are prefixed by a 4 byte length
// that includes the prefix itself, and are aligned as a whole before
// the prefix.

const VarlenaPrefixSize = 4

// NewVarlena wraps a raw payload into a self-length-prefixed datum.
func NewVarlena(payload []byte) Datum {
	d := make(Datum, VarlenaPrefixSize+len(payload))
	bin.PutUint32(d, uint32(len(d)))
	copy(d[VarlenaPrefixSize:], payload)
	return d
}

// VarSize reads a varlena's total size, prefix included.
func VarSize(b []byte) int {
	return int(bin.Uint32(b))
}

// VarData returns a varlena's payload, without the length prefix.
func VarData(b []byte) []byte {
	return b[VarlenaPrefixSize:VarSize(b)]
}
