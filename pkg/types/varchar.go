package types

import (
	"bytes"
	"fmt"

	"go-tuple/util/helpers"
)

func init() {
	typesMap[TYPE_VARCHAR] = newable{
		newInstance: func(meta DataTypeMeta) DataType {
			return &DataTypeVARCHAR{
				Code: meta.GetCode(),
				Meta: meta.(*DataTypeVARCHARMeta),
			}
		},
		newMeta: func(args ...interface{}) DataTypeMeta {
			if len(args) == 0 {
				return &DataTypeVARCHARMeta{}
			}

			return &DataTypeVARCHARMeta{
				Cap: helpers.Convert(args[0], new(uint16)),
			}
		},
	}
}

type DataTypeVARCHARMeta struct {
	Cap uint16 `json:"cap"`
}

func (m *DataTypeVARCHARMeta) GetCode() TypeCode {
	return TYPE_VARCHAR
}

func (m *DataTypeVARCHARMeta) Size() int {
	return int(m.Cap)
}

// a varchar is a byte array, no alignment requirement
func (m *DataTypeVARCHARMeta) Align() uint8 {
	return 1
}

func (m *DataTypeVARCHARMeta) ByVal() bool {
	return false
}

func (m *DataTypeVARCHARMeta) IsFixedSize() bool {
	return true
}

type DataTypeVARCHAR struct {
	value string
	Code  TypeCode             `json:"code"`
	Meta  *DataTypeVARCHARMeta `json:"meta"`
}

func (t *DataTypeVARCHAR) MarshalBinary() (data []byte, err error) {
	return t.Bytes(), nil
}

func (t *DataTypeVARCHAR) UnmarshalBinary(data []byte) error {
	t.value = string(bytes.TrimRight(data, "\x00"))
	return nil
}

// Bytes pads the value with zero bytes up to the declared capacity.
func (t *DataTypeVARCHAR) Bytes() []byte {
	b := make([]byte, t.Meta.Cap)
	copy(b, t.value)
	return b
}

func (t *DataTypeVARCHAR) Value() interface{} {
	return t.value
}

func (t *DataTypeVARCHAR) Set(value interface{}) DataType {
	v, ok := value.(string)
	if !ok {
		panic(fmt.Errorf("invalid set data type => %v", value))
	}
	if len(v) > int(t.Meta.Cap) {
		panic(fmt.Errorf("value exceeds varchar capacity => %v", t.Meta.Cap))
	}

	t.value = v
	return t
}

func (t *DataTypeVARCHAR) GetCode() TypeCode {
	return t.Code
}

func (t *DataTypeVARCHAR) Align() uint8 {
	return t.Meta.Align()
}

func (t *DataTypeVARCHAR) ByVal() bool {
	return t.Meta.ByVal()
}

func (t *DataTypeVARCHAR) IsFixedSize() bool {
	return t.Meta.IsFixedSize()
}

func (t *DataTypeVARCHAR) Size() int {
	return t.Meta.Size()
}
