// Package blob encodes patterns into self-describing binary blobs and
// decodes them back.
//
// A blob is a 32-byte section.Header followed by the row payload. The
// payload is produced by the encoding package, checksummed with xxHash64
// and optionally compressed by the compress package. Blobs exist to hand a
// pattern to another process, for example a chart renderer; they are not a
// storage format.
//
// # Encoding Workflow
//
//	p, err := pattern.Generate(4, 4)
//	if err != nil {
//	    return err
//	}
//
//	encoder, err := blob.NewPatternEncoder(
//	    blob.WithRowEncoding(format.TypeVarint),
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//
//	data, err := encoder.Encode(p)
//
// # Decoding Workflow
//
//	decoder, err := blob.NewPatternDecoder(data)
//	if err != nil {
//	    return err // bad header
//	}
//	p, err := decoder.Decode()
//
// Decode verifies, in order: the header, the payload offset, the declared
// row count against the spike height, the decompressed length, the checksum,
// every row entry and finally the pattern width invariant. Each failure
// wraps a sentinel from the errs package.
//
// Inspect reads only the header and is cheap enough for logging.
package blob
