package compress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// "test" as a single literal-only sequence.
	testBlock = []byte{0x40, 't', 'e', 's', 't'}

	// Four bytes copied from the start of an 8 byte dictionary, then 8 literals.
	dictBlock = []byte{0x00, 0x08, 0x00, 0x80, '1', '2', '3', '4', '5', '6', '7', '8'}
	dict      = []byte("abcdefgh")
)

func TestLZ4Decompress_Test(t *testing.T) {
	out, err := NewLZ4().Decompress(testBlock, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("test"), out)
}

func TestLZ4Decompress_DeclaredSizeTooSmall(t *testing.T) {
	out, err := NewLZ4().Decompress(testBlock, 3, nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	var mismatch *SizeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 3, mismatch.Declared)
	assert.Equal(t, 4, mismatch.Actual)
}

func TestLZ4Decompress_DeclaredSizeTooLarge(t *testing.T) {
	_, err := NewLZ4().Decompress(testBlock, 5, nil)

	var mismatch *SizeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 5, mismatch.Declared)
	assert.Equal(t, 4, mismatch.Actual)
}

func TestLZ4Decompress_Deterministic(t *testing.T) {
	c := NewLZ4()
	first, err := c.Decompress(dictBlock, 12, dict)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := c.Decompress(dictBlock, 12, dict)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLZ4Decompress_Dictionary(t *testing.T) {
	out, err := NewLZ4().Decompress(dictBlock, 12, dict)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd12345678"), out)

	_, err = NewLZ4().Decompress(dictBlock, 12, nil)
	assert.ErrorIs(t, err, ErrCorruptBlock)
}

func TestLZ4Decompress_EmptyDictEqualsNoDict(t *testing.T) {
	c := NewLZ4()
	withNil, err := c.Decompress(testBlock, 4, nil)
	require.NoError(t, err)
	withEmpty, err := c.Decompress(testBlock, 4, []byte{})
	require.NoError(t, err)
	assert.Equal(t, withNil, withEmpty)
}

func TestLZ4Decompress_RoundTrip(t *testing.T) {
	c := NewLZ4()
	src := bytes.Repeat([]byte("unified logging tracev3 "), 512)

	block, err := c.Compress(src)
	require.NoError(t, err)
	assert.Less(t, len(block), len(src))

	out, err := c.Decompress(block, len(src), nil)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestLZ4Decompress_Errors(t *testing.T) {
	testCases := map[string]struct {
		src  []byte
		size int
		want error
	}{
		"negative size":  {testBlock, -1, ErrNegativeSize},
		"empty input":    {nil, 4, ErrUnexpectedEOF},
		"truncated":      {testBlock[:3], 4, ErrUnexpectedEOF},
		"zero offset":    {[]byte{0x10, 'a', 0x00, 0x00}, 5, ErrCorruptBlock},
		"missing offset": {[]byte{0x14, 'a'}, 5, ErrUnexpectedEOF},
		"size zero":      {testBlock, 0, ErrSizeMismatch},
		"offset too far": {[]byte{0x10, 'a', 0x02, 0x00, 0x00}, 5, ErrCorruptBlock},
		"huge size":      {testBlock, 1 << 50, ErrSizeMismatch},
		"huge truncated": {testBlock[:3], 1 << 50, ErrUnexpectedEOF},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			out, err := NewLZ4().Decompress(tc.src, tc.size, nil)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLZ4Decompress_EmptyInputEmptyOutput(t *testing.T) {
	out, err := NewLZ4().Decompress(nil, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLZ4Decompress_HugeSizeReportsActual(t *testing.T) {
	_, err := NewLZ4().Decompress(testBlock, 1 << 50, nil)

	var mismatch *SizeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 1 << 50, mismatch.Declared)
	assert.Equal(t, 4, mismatch.Actual)
}

func TestLZ4Inspect(t *testing.T) {
	info, err := NewLZ4().Inspect(dictBlock, dict)
	require.NoError(t, err)
	assert.Equal(t, BlockInfo{Sequences: 2, Literals: 8, Matches: 4, Size: 12}, info)

	_, err = NewLZ4().Inspect(dictBlock, nil)
	assert.ErrorIs(t, err, ErrCorruptBlock)
}
