package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerType(t *testing.T) {
	meta := Meta(TYPE_INTEGER, true, 4)
	require.Equal(t, 4, meta.Size())
	require.Equal(t, uint8(4), meta.Align())
	require.True(t, meta.ByVal())
	require.True(t, meta.IsFixedSize())

	v := Type(meta).Set(int32(-7))
	require.Equal(t, int32(-7), v.Value())
	require.Len(t, v.Bytes(), 4)

	v2 := Type(meta)
	require.NoError(t, v2.UnmarshalBinary(v.Bytes()))
	require.Equal(t, int32(-7), v2.Value())
}

func TestIntegerWidths(t *testing.T) {
	for _, size := range []uint8{1, 2, 4, 8} {
		meta := Meta(TYPE_INTEGER, false, size)
		require.Equal(t, int(size), meta.Size())
		require.Equal(t, size, meta.Align())
		require.Len(t, Type(meta).Set(uint8(1)).Bytes(), int(size))
	}
}

func TestFloatType(t *testing.T) {
	meta := Meta(TYPE_FLOAT, 8)
	require.Equal(t, 8, meta.Size())
	require.Equal(t, uint8(8), meta.Align())

	v := Type(meta).Set(3.5)
	require.Equal(t, 3.5, v.Value())

	v2 := Type(meta)
	require.NoError(t, v2.UnmarshalBinary(v.Bytes()))
	require.Equal(t, 3.5, v2.Value())

	narrow := Type(Meta(TYPE_FLOAT, 4)).Set(float32(1.25))
	require.Equal(t, float32(1.25), narrow.Value())
}

func TestVarcharType(t *testing.T) {
	meta := Meta(TYPE_VARCHAR, 8)
	require.Equal(t, 8, meta.Size())
	require.Equal(t, uint8(1), meta.Align())
	require.False(t, meta.ByVal())
	require.True(t, meta.IsFixedSize())

	v := Type(meta).Set("abc")
	b := v.Bytes()
	require.Len(t, b, 8)

	v2 := Type(meta)
	require.NoError(t, v2.UnmarshalBinary(b))
	require.Equal(t, "abc", v2.Value())

	require.Panics(t, func() {
		Type(meta).Set("way too long for cap")
	})
}

func TestStringType(t *testing.T) {
	meta := Meta(TYPE_STRING)
	require.Equal(t, -1, meta.Size())
	require.Equal(t, uint8(4), meta.Align())
	require.False(t, meta.IsFixedSize())

	wide := Meta(TYPE_STRING, true)
	require.Equal(t, uint8(8), wide.Align())

	v := Type(meta).Set("hello")
	require.Equal(t, "hello", v.Value())
	require.Equal(t, []byte("hello"), v.Bytes())
	require.Equal(t, 5, v.Size())
}
