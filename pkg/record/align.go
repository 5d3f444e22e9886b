package record

import (
	"github.com/pkg/errors"

	"go-tuple/pkg/customerrors"
	"go-tuple/util/helpers"
)

// alignOffset rounds off up to att's alignment boundary. A variable
// length attribute is aligned as a whole, length prefix included.
func alignOffset(off int, att *Attribute) int {
	return helpers.Align(off, int(att.Align))
}

// checkDatum validates one non-null datum against its attribute.
func checkDatum(att *Attribute, d Datum) error {
	if att.Len == -1 {
		if len(d) < VarlenaPrefixSize || VarSize(d) != len(d) {
			return errors.Wrapf(customerrors.ErrSchemaViolation,
				"attribute %q: malformed varlena of %d bytes", att.Name, len(d))
		}
		return nil
	}
	if att.Len < 1 {
		return errors.Wrapf(customerrors.ErrSchemaViolation,
			"attribute %q has len %d", att.Name, att.Len)
	}
	if len(d) != att.Len {
		return errors.Wrapf(customerrors.ErrSchemaViolation,
			"attribute %q: datum of %d bytes, want %d", att.Name, len(d), att.Len)
	}
	return nil
}

// dataSize computes the padded byte size of the data stream for one
// value set. Null attributes contribute neither bytes nor padding.
func dataSize(desc *Descriptor, values []Datum, nulls []bool) (int, error) {
	length := 0
	for i, att := range desc.attrs {
		if nulls[i] {
			continue
		}
		if err := checkDatum(att, values[i]); err != nil {
			return 0, err
		}
		length = alignOffset(length, att) + len(values[i])
	}
	return length, nil
}
