// Package compress provides the codecs applied to the row payload of a
// pattern blob.
//
// Rows are first encoded by the encoding package; the resulting payload is
// then compressed with one of:
//
//   - None: payload stored as-is (default)
//   - Zstd: best ratio on large patterns
//   - S2: fast, modest ratio
//   - LZ4: fastest decompression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte, rawLen int) ([]byte, error)
//	}
//
// The blob header stores the uncompressed payload length. Decompressors use
// it to size their output once and reject frames that inflate to anything
// else, which also bounds memory on hostile input.
//
// # Choosing a Codec
//
// Payloads of small patterns are a few hundred bytes; codec framing often
// outweighs any savings there. Measure reports the trade-off:
//
//	stats, err := compress.Measure(format.CompressionZstd, payload)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %.1f%% saved\n", stats.Algorithm, stats.SpaceSavings())
//
// # Build Tags
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with
// -tags gozstd on a cgo toolchain switches to github.com/valyala/gozstd.
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool and are safe for
// concurrent use.
package compress
