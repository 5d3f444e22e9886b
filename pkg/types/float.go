package types

import (
	"fmt"

	"go-tuple/util/helpers"
)

func init() {
	typesMap[TYPE_FLOAT] = newable{
		newInstance: func(meta DataTypeMeta) DataType {
			m := meta.(*DataTypeFLOATMeta)
			return &DataTypeFLOAT{
				value: make([]byte, m.ByteSize),
				Code:  m.GetCode(),
				Meta:  m,
			}
		},
		newMeta: func(args ...interface{}) DataTypeMeta {
			if len(args) == 0 {
				return &DataTypeFLOATMeta{}
			}

			return &DataTypeFLOATMeta{
				ByteSize: helpers.Convert(args[0], new(uint8)),
			}
		},
	}
}

type DataTypeFLOATMeta struct {
	ByteSize uint8 `json:"byte_size"`
}

func (m *DataTypeFLOATMeta) GetCode() TypeCode {
	return TYPE_FLOAT
}

func (m *DataTypeFLOATMeta) Size() int {
	return int(m.ByteSize)
}

func (m *DataTypeFLOATMeta) Align() uint8 {
	return m.ByteSize
}

func (m *DataTypeFLOATMeta) ByVal() bool {
	return true
}

func (m *DataTypeFLOATMeta) IsFixedSize() bool {
	return true
}

type DataTypeFLOAT struct {
	value []byte
	Code  TypeCode           `json:"code"`
	Meta  *DataTypeFLOATMeta `json:"meta"`
}

func (t *DataTypeFLOAT) MarshalBinary() (data []byte, err error) {
	return t.value, nil
}

func (t *DataTypeFLOAT) UnmarshalBinary(data []byte) error {
	copy(t.value, data)
	return nil
}

func (t *DataTypeFLOAT) Bytes() []byte {
	cp := make([]byte, len(t.value))
	copy(cp, t.value)
	return cp
}

func (t *DataTypeFLOAT) Value() interface{} {
	switch t.Meta.ByteSize {
	case 4:
		v := new(float32)
		helpers.Frombytes(t.value, v)
		return *v
	case 8:
		v := new(float64)
		helpers.Frombytes(t.value, v)
		return *v
	default:
		panic(fmt.Errorf("invalid byte size => %v", t.Meta.ByteSize))
	}
}

func (t *DataTypeFLOAT) Set(value interface{}) DataType {
	switch v := value.(type) {
	case float32:
		if t.Meta.ByteSize == 8 {
			return t.Set(float64(v))
		}
		copy(t.value, helpers.Bytesof(v))
	case float64:
		if t.Meta.ByteSize == 4 {
			return t.Set(float32(v))
		}
		copy(t.value, helpers.Bytesof(v))
	default:
		panic(fmt.Errorf("invalid set data type => %v", value))
	}
	return t
}

func (t *DataTypeFLOAT) GetCode() TypeCode {
	return t.Code
}

func (t *DataTypeFLOAT) Align() uint8 {
	return t.Meta.Align()
}

func (t *DataTypeFLOAT) ByVal() bool {
	return t.Meta.ByVal()
}

func (t *DataTypeFLOAT) IsFixedSize() bool {
	return t.Meta.IsFixedSize()
}

func (t *DataTypeFLOAT) Size() int {
	return int(t.Meta.ByteSize)
}
