package compress

import (
	"encoding/binary"
	"fmt"
)

const minMatch = 4

// BlockInfo describes the token stream of an LZ4 block.
type BlockInfo struct {
	Sequences int // literal run + match pairs, the final literal-only one included
	Literals  int // bytes copied from the input
	Matches   int // bytes copied by back-references
	Size      int // decoded length
}

// Scan walks the tokens of an LZ4 block without producing output. dictLen
// is the number of bytes available before the block for back-references.
// The first framing fault is returned as ErrUnexpectedEOF or ErrCorruptBlock.
func Scan(src []byte, dictLen int) (BlockInfo, error) {
	var info BlockInfo
	pos := 0
	for pos < len(src) {
		tokenAt := pos
		token := src[pos]
		pos++
		info.Sequences++

		lits, next, err := readLength(src, pos, int(token>>4))
		if err != nil {
			return info, fmt.Errorf("%w: literal length of sequence at byte %d", err, tokenAt)
		}
		pos = next
		if lits > len(src)-pos {
			return info, fmt.Errorf("%w: %d literals at byte %d, %d bytes left", ErrUnexpectedEOF, lits, pos, len(src)-pos)
		}
		pos += lits
		info.Literals += lits
		info.Size += lits

		if pos == len(src) {
			if token&0x0F != 0 {
				return info, fmt.Errorf("%w: missing match offset after byte %d", ErrUnexpectedEOF, tokenAt)
			}
			break
		}
		if len(src)-pos < 2 {
			return info, fmt.Errorf("%w: match offset at byte %d", ErrUnexpectedEOF, pos)
		}
		offset := int(binary.LittleEndian.Uint16(src[pos:]))
		if offset == 0 {
			return info, fmt.Errorf("%w: zero match offset at byte %d", ErrCorruptBlock, pos)
		}
		if offset > info.Size+dictLen {
			return info, fmt.Errorf("%w: match offset %d at byte %d reaches before a %d byte window", ErrCorruptBlock, offset, pos, info.Size+dictLen)
		}
		pos += 2

		mlen, next, err := readLength(src, pos, int(token&0x0F))
		if err != nil {
			return info, fmt.Errorf("%w: match length of sequence at byte %d", err, tokenAt)
		}
		pos = next
		mlen += minMatch
		info.Matches += mlen
		info.Size += mlen
	}
	return info, nil
}

// readLength decodes a 4-bit token length and its 255-run extension bytes.
func readLength(src []byte, pos, n int) (int, int, error) {
	if n != 0x0F {
		return n, pos, nil
	}
	for {
		if pos >= len(src) {
			return 0, pos, ErrUnexpectedEOF
		}
		b := src[pos]
		pos++
		n += int(b)
		if b != 0xFF {
			return n, pos, nil
		}
	}
}
