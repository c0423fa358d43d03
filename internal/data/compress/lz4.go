package compress

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// maxExpansion bounds how many output bytes one input byte can produce: a
// 0xFF match length extension byte adds 255.
const maxExpansion = 255

var (
	_ Decompressor = (*LZ4)(nil)
	_ Inspector    = (*LZ4)(nil)
)

// LZ4 decodes raw LZ4 blocks (no frame header) with pierrec/lz4.
type LZ4 struct{}

// NewLZ4 creates a new LZ4 block codec.
func NewLZ4() *LZ4 {
	return &LZ4{}
}

// Compress encodes src as a single LZ4 block.
func (c *LZ4) Compress(src []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := lz4.CompressBlock(src, dst, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrIncompressible
	}
	return dst[:n], nil
}

// Decompress decodes src into a buffer of exactly size bytes.
//
// The output is never truncated or padded: if the block decodes to any other
// length a *SizeMismatchError is returned.
func (c *LZ4) Decompress(src []byte, size int, dict []byte) ([]byte, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	if len(src) == 0 {
		if size == 0 {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("%w: empty block, %d bytes declared", ErrUnexpectedEOF, size)
	}

	if size/maxExpansion > len(src) {
		info, err := Scan(src, len(dict))
		if err != nil {
			return nil, err
		}
		return nil, &SizeMismatchError{Declared: size, Actual: info.Size}
	}

	dst := make([]byte, size)
	var (
		n   int
		err error
	)
	if len(dict) == 0 {
		n, err = lz4.UncompressBlock(src, dst)
	} else {
		n, err = lz4.UncompressBlockWithDict(src, dst, dict)
	}
	if err != nil {
		return nil, classify(src, size, len(dict), err)
	}
	if n != size {
		return nil, &SizeMismatchError{Declared: size, Actual: n}
	}
	return dst, nil
}

// Inspect reports the token stream layout of src.
func (c *LZ4) Inspect(src, dict []byte) (BlockInfo, error) {
	return Scan(src, len(dict))
}

// classify maps the single error pierrec/lz4 reports onto a typed error by
// walking the block framing.
func classify(src []byte, size, dictLen int, cause error) error {
	info, err := Scan(src, dictLen)
	if err != nil {
		return err
	}
	if info.Size != size {
		return &SizeMismatchError{Declared: size, Actual: info.Size}
	}
	return fmt.Errorf("%w: %v", ErrCorruptBlock, cause)
}
