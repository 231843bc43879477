package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; each keeps a hash table
// worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor writes raw LZ4 blocks. Blocks do not record their
// decompressed size; the blob header does.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data as a single LZ4 block.
//
// Incompressible input makes CompressBlock return 0; the block is then
// stored as a literal-only block so Decompress can always inflate it.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return literalBlock(data), nil
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block into exactly rawLen bytes.
func (c LZ4Compressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return checkLength("lz4", nil, rawLen)
	}

	buf := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return checkLength("lz4", buf[:n], rawLen)
}

// literalBlock encodes data as one LZ4 sequence with no match, which is
// valid block format for any input.
func literalBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+2)

	if n < 15 {
		out = append(out, byte(n<<4))
	} else {
		out = append(out, 0xF0)
		rest := n - 15
		for rest >= 255 {
			out = append(out, 255)
			rest -= 255
		}
		out = append(out, byte(rest))
	}

	return append(out, data...)
}
