package types

import (
	"encoding"
)

type TypeCode uint8

const (
	TYPE_INTEGER TypeCode = iota // 1/2/4/8 byte [un]signed integer
	TYPE_FLOAT                   // 4/8 byte floating point number
	TYPE_VARCHAR                 // fixed length string
	TYPE_STRING                  // variable length string
)

type newable struct {
	newInstance func(meta DataTypeMeta) DataType
	newMeta     func(args ...interface{}) DataTypeMeta
}

var typesMap = map[TypeCode]newable{}

// DataTypeMeta describes the physical properties the record layer
// needs from a type: byte length (-1 for variable length), required
// alignment boundary (1/2/4/8) and pass-by-value-ness.
type DataTypeMeta interface {
	GetCode() TypeCode
	Size() int
	Align() uint8
	ByVal() bool
	IsFixedSize() bool
}

type DataType interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	DataTypeMeta

	// Bytes returns the value in its native in-memory layout, the
	// form stored inside an encoded record's data stream. Variable
	// length types return the bare payload, without a length prefix.
	Bytes() []byte
	Value() interface{}
	Set(value interface{}) DataType
}

func Type(meta DataTypeMeta) DataType {
	return typesMap[meta.GetCode()].newInstance(meta)
}

func Meta(typeCode TypeCode, args ...interface{}) DataTypeMeta {
	return typesMap[typeCode].newMeta(args...)
}
