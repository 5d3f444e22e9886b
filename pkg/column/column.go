package column

import (
	"encoding/json"

	"go-tuple/pkg/types"
)

// Column is the catalog-facing description of one record attribute.
// The schema subsystem owns these; the record layer only reads the
// physical metadata through types.DataTypeMeta.
type Column struct {
	Name string             `json:"name"`
	Typ  types.TypeCode     `json:"type"`
	Meta types.DataTypeMeta `json:"meta"`
}

func New(name string, meta types.DataTypeMeta) *Column {
	return &Column{
		Name: name,
		Typ:  meta.GetCode(),
		Meta: meta,
	}
}

type column struct {
	Name string          `json:"name"`
	Typ  types.TypeCode  `json:"type"`
	Meta json.RawMessage `json:"meta"`
}

func (c *Column) UnmarshalJSON(data []byte) error {
	col := &column{}
	if err := json.Unmarshal(data, col); err != nil {
		return err
	}

	c.Name = col.Name
	c.Typ = col.Typ
	c.Meta = types.Meta(col.Typ)
	return json.Unmarshal(col.Meta, c.Meta)
}
