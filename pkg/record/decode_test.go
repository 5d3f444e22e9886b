package record

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheIdempotence(t *testing.T) {
	desc := NewDescriptor(
		int32Attr("a"),
		NewFixedAttribute("b", 2, AlignShort, true),
		NewFixedAttribute("c", 8, AlignDouble, true),
		int32Attr("d"),
	)
	r, err := FormHeap(desc,
		[]Datum{int32Datum(1), int16Datum(2), int64Datum(3), int32Datum(4)},
		make([]bool, 4))
	require.NoError(t, err)

	first, _, err := r.GetAttr(desc, 4)
	require.NoError(t, err)
	offsets := cachedOffsets(desc)

	// repeated decodes return identical results and leave the cache
	// untouched
	for i := 0; i < 3; i++ {
		again, _, err := r.GetAttr(desc, 4)
		require.NoError(t, err)
		require.Equal(t, first, again)
		require.Equal(t, offsets, cachedOffsets(desc))
	}

	// decoding other attributes is unaffected by the filled cache
	v, _, err := r.GetAttr(desc, 2)
	require.NoError(t, err)
	require.Equal(t, int16Datum(2), v)
}

func TestAlignmentProperty(t *testing.T) {
	desc := NewDescriptor(
		NewFixedAttribute("a", 1, AlignChar, true),
		NewFixedAttribute("b", 8, AlignDouble, true),
		NewFixedAttribute("c", 2, AlignShort, true),
		NewFixedAttribute("d", 1, AlignChar, true),
		int32Attr("e"),
	)
	values := []Datum{{1}, int64Datum(2), int16Datum(3), {4}, int32Datum(5)}
	r, err := FormHeap(desc, values, make([]bool, 5))
	require.NoError(t, err)

	_, _, err = r.GetAttr(desc, 5)
	require.NoError(t, err)

	prevEnd := 0
	for i := 0; i < desc.NumAttrs(); i++ {
		att := desc.Attr(i)
		off := att.cachedOffset()
		require.GreaterOrEqual(t, off, prevEnd, "attribute %d", i+1)
		require.Zero(t, off%int(att.Align), "attribute %d", i+1)
		prevEnd = off + att.Len
	}
}

func TestPrefixCacheInvalidation(t *testing.T) {
	desc := NewDescriptor(
		int32Attr("a"), int32Attr("b"), int32Attr("c"), int32Attr("d"),
	)
	r, err := FormHeap(desc,
		[]Datum{int32Datum(1), nil, int32Datum(3), int32Datum(4)},
		[]bool{false, true, false, false})
	require.NoError(t, err)

	v, _, err := r.GetAttr(desc, 4)
	require.NoError(t, err)
	require.Equal(t, int32(4), int32Value(v))

	// attributes before the null stay cacheable, everything after the
	// first runtime-dependent attribute never is
	require.Equal(t, 0, desc.Attr(0).cachedOffset())
	require.Equal(t, -1, desc.Attr(1).cachedOffset())
	require.Equal(t, -1, desc.Attr(2).cachedOffset())
	require.Equal(t, -1, desc.Attr(3).cachedOffset())
}

func TestConcurrentDecodes(t *testing.T) {
	desc := NewDescriptor(
		int32Attr("a"),
		NewFixedAttribute("b", 2, AlignShort, true),
		int32Attr("c"),
		NewFixedAttribute("d", 8, AlignDouble, true),
	)
	r, err := FormHeap(desc,
		[]Datum{int32Datum(1), int16Datum(2), int32Datum(3), int64Datum(4)},
		make([]bool, 4))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for attnum := 1; attnum <= desc.NumAttrs(); attnum++ {
				v, isnull, err := r.GetAttr(desc, attnum)
				if err != nil || isnull || len(v) == 0 {
					t.Errorf("attribute %d: %v", attnum, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	v, _, err := r.GetAttr(desc, 4)
	require.NoError(t, err)
	require.Equal(t, int64Datum(4), v)
}

func cachedOffsets(desc *Descriptor) []int {
	offs := make([]int, desc.NumAttrs())
	for i := range offs {
		offs[i] = desc.Attr(i).cachedOffset()
	}
	return offs
}
