package compress

// Decompressor turns one raw compressed block back into its original bytes.
type Decompressor interface {
	// Decompress decodes src into exactly size bytes. dict is the data that
	// virtually precedes src; back-references may reach into it. A nil and an
	// empty dict mean the same thing.
	Decompress(src []byte, size int, dict []byte) ([]byte, error)
}

// Inspector is implemented by decompressors that can describe a block
// without decoding it.
type Inspector interface {
	Inspect(src, dict []byte) (BlockInfo, error)
}

// Context holds the parameters a block needs besides its own bytes.
type Context struct {
	// Size is the expected uncompressed length in bytes.
	Size int

	// Dict seeds the back-reference window.
	Dict []byte
}
