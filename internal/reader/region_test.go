package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/binkit/internal/format"
	"github.com/joshuapare/binkit/internal/testutil"
	"github.com/joshuapare/binkit/pkg/types"
)

func rootCursor(data []byte, maxDepth int) *cursor {
	return &cursor{buf: data, end: len(data), d: &decoder{maxDepth: maxDepth}}
}

func nestedListPayload(levels int) []byte {
	w := testutil.NewWriter()
	testutil.NestedLists(w, levels)
	return w.Bytes()
}

func TestValue_DepthLimitAtRoot(t *testing.T) {
	c := rootCursor(nestedListPayload(types.DepthLimit), types.DepthLimit)
	v, err := c.value(format.TagList)
	require.NoError(t, err)
	assert.Equal(t, c.end, c.pos)

	depth := 0
	for l, ok := v.(types.List); ok; l, ok = v.(types.List) {
		depth++
		if len(l) == 0 {
			break
		}
		v = l[0]
	}
	assert.Equal(t, types.DepthLimit, depth)

	c = rootCursor(nestedListPayload(types.DepthLimit+1), types.DepthLimit)
	_, err = c.value(format.TagList)
	require.ErrorIs(t, err, types.ErrDepthExceeded)
}

func TestDecode_DepthLimitCountsEntryRegion(t *testing.T) {
	build := func(levels int) []byte {
		return singleField(format.TagList, func(w *testutil.Writer) {
			testutil.NestedLists(w, levels)
		})
	}

	// Entry region plus 127 lists is 128 open regions.
	_, err := Decode(build(types.DepthLimit-1), nil, types.DefaultDecodeOptions())
	require.NoError(t, err)

	te := decodeErr(t, build(types.DepthLimit), types.ErrDepthExceeded)
	assert.Equal(t, "list", te.Stage)
}

func TestDecode_DepthOptionCannotRaiseCap(t *testing.T) {
	data := singleField(format.TagList, func(w *testutil.Writer) {
		testutil.NestedLists(w, types.DepthLimit)
	})
	_, err := Decode(data, nil, types.DecodeOptions{MaxDepth: 10000})
	require.ErrorIs(t, err, types.ErrDepthExceeded)
}

func TestDecode_StrictDepth(t *testing.T) {
	data := singleField(format.TagList, func(w *testutil.Writer) {
		testutil.NestedLists(w, types.StrictDepth)
	})
	_, err := Decode(data, nil, types.StrictDecodeOptions())
	require.ErrorIs(t, err, types.ErrDepthExceeded)

	_, err = Decode(data, nil, types.DefaultDecodeOptions())
	require.NoError(t, err)
}

func TestValue_NestedOptionsCountDepth(t *testing.T) {
	// option<option<option<u8>>>, all present. The outer option tag itself
	// is consumed by the caller, so the payload starts at its inner tag.
	// Each option holding another option adds one level.
	payload := testutil.NewWriter().
		Tag(format.TagOption).U8(1).
		Tag(format.TagOption).U8(1).
		Tag(format.TagU8).U8(1).
		U8(7).Bytes()

	c := rootCursor(payload, 1)
	_, err := c.value(format.TagOption)
	require.ErrorIs(t, err, types.ErrDepthExceeded)

	c = rootCursor(payload, 2)
	v, err := c.value(format.TagOption)
	require.NoError(t, err)
	assert.Equal(t, types.Unsigned(7), v)
	assert.Equal(t, 0, c.depth)
	assert.Equal(t, c.end, c.pos)
}

func TestDecode_OptionAroundListAddsNoDepth(t *testing.T) {
	build := func(levels int) []byte {
		return singleField(format.TagOption, func(w *testutil.Writer) {
			w.Tag(format.TagList).U8(1)
			testutil.NestedLists(w, levels)
		})
	}

	// Entry region plus 127 lists is 128 open regions; the option opens none.
	doc, err := Decode(build(types.DepthLimit-1), nil, types.DefaultDecodeOptions())
	require.NoError(t, err)
	assert.IsType(t, types.List{}, fieldValue(t, doc))

	te := decodeErr(t, build(types.DepthLimit), types.ErrDepthExceeded)
	assert.Equal(t, "list", te.Stage)
}

func TestValue_OptionOfScalarAtDepthCap(t *testing.T) {
	payload := testutil.NewWriter().Tag(format.TagU8).U8(1).U8(9).Bytes()

	c := rootCursor(payload, 1)
	c.depth = 1
	v, err := c.value(format.TagOption)
	require.NoError(t, err)
	assert.Equal(t, types.Unsigned(9), v)
}

func TestDecode_RegionOverrunsParent(t *testing.T) {
	data := singleField(format.TagList, func(w *testutil.Writer) {
		w.Tag(format.TagU8).RegionLen(1000, []byte{1, 0, 0, 0, 7})
	})
	te := decodeErr(t, data, types.ErrRegionOverrun)
	assert.Equal(t, "fields", te.Stage)
	assert.Equal(t, 36, te.Offset)
}

func TestDecode_EntryRegionOverrunsBuffer(t *testing.T) {
	data := testutil.Document(1, nil, testutil.Entry{Type: 1, Name: 2})
	te := decodeErr(t, data[:len(data)-1], types.ErrRegionOverrun)
	assert.Equal(t, "entry", te.Stage)
	assert.Equal(t, 20, te.Offset)
}

func TestDecode_MissingEntryRegion(t *testing.T) {
	data := testutil.NewWriter().Raw(format.Magic...).U32(1).U32(0).
		U32(2).U32(0xA).U32(0xB).
		Region(func(w *testutil.Writer) { w.U32(1).U16(0) }).
		Bytes()
	decodeErr(t, data, types.ErrUnexpectedEOF)
}

func TestDecode_ShortRegionNeverReadsSiblings(t *testing.T) {
	// Declared length covers the count and one element; the payload holds
	// two. The child must stop at its own end.
	body := testutil.NewWriter().U32(2).U32(0x0A).U32(0x0B).Bytes()
	data := singleField(format.TagList, func(w *testutil.Writer) {
		w.Tag(format.TagU32).RegionLen(8, body)
	})

	te := decodeErr(t, data, types.ErrUnexpectedEOF)
	assert.Equal(t, "list", te.Stage)
	assert.Equal(t, 48, te.Offset)
}

func TestDecode_UnderConsumedRegionIsSkipped(t *testing.T) {
	data := testutil.Document(1, nil, testutil.Entry{
		Type: 1, Name: 0x11223344, FieldCount: 2,
		Fields: func(w *testutil.Writer) {
			w.Field(0x01, format.TagList, func(w *testutil.Writer) {
				w.Tag(format.TagU8).RegionLen(8, []byte{1, 0, 0, 0, 5, 0xEE, 0xEE, 0xEE})
			})
			w.Field(0x02, format.TagString, func(w *testutil.Writer) { w.Str("after") })
		},
	})
	doc := decode(t, data)

	assert.Equal(t, types.List{types.Unsigned(5)}, fieldValue(t, doc))
	e, _ := doc.Entry(0x11223344)
	v, ok := e.Struct.Get(0x02)
	require.True(t, ok)
	assert.Equal(t, types.String("after"), v)
}

func TestDecode_HostileCountFailsFast(t *testing.T) {
	data := singleField(format.TagList, func(w *testutil.Writer) {
		w.Tag(format.TagU32).Region(func(w *testutil.Writer) { w.U32(0xFFFFFFFF).U32(1) })
	})
	decodeErr(t, data, types.ErrUnexpectedEOF)

	links := testutil.NewWriter().Raw(format.Magic...).U32(1).U32(0xFFFFFFFF).Bytes()
	decodeErr(t, links, types.ErrUnexpectedEOF)
}

func TestSub_AdvancesParentPastRegion(t *testing.T) {
	data := testutil.NewWriter().RegionLen(3, []byte{1, 2, 3}).U8(9).Bytes()
	c := rootCursor(data, types.DepthLimit)

	child, err := c.sub(stageList)
	require.NoError(t, err)
	assert.Equal(t, 7, c.pos)
	assert.Equal(t, 4, child.pos)
	assert.Equal(t, 7, child.end)
	assert.Equal(t, 1, child.depth)

	b, err := c.u8()
	require.NoError(t, err)
	assert.Equal(t, uint8(9), b)

	_, err = child.take(4)
	require.ErrorIs(t, err, types.ErrUnexpectedEOF)
}
