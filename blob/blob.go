package blob

import (
	"fmt"

	"github.com/spikeknit/spikeknit/format"
	"github.com/spikeknit/spikeknit/pattern"
)

// Info summarizes a pattern blob without decoding its rows.
type Info struct {
	Params        pattern.Params
	RowCount      int
	BigEndian     bool
	RowEncoding   format.EncodingType
	Compression   format.CompressionType
	BlobSize      int
	PayloadSize   int // compressed payload as stored
	PayloadLength int // raw payload after decompression
	Checksum      uint64
}

// Inspect parses the header of data and reports what it describes.
func Inspect(data []byte) (Info, error) {
	dec, err := NewPatternDecoder(data)
	if err != nil {
		return Info{}, err
	}

	h := dec.Header()

	return Info{
		Params:        dec.Params(),
		RowCount:      int(h.RowCount),
		BigEndian:     h.Flag.IsBigEndian(),
		RowEncoding:   h.Flag.GetRowEncoding(),
		Compression:   h.Flag.GetCompression(),
		BlobSize:      len(data),
		PayloadSize:   len(data) - int(h.PayloadOffset),
		PayloadLength: int(h.PayloadLength),
		Checksum:      h.Checksum,
	}, nil
}

func (i Info) String() string {
	order := "little-endian"
	if i.BigEndian {
		order = "big-endian"
	}

	return fmt.Sprintf("%s rows=%d encoding=%s compression=%s %s size=%d payload=%d/%d checksum=%016x",
		i.Params, i.RowCount, i.RowEncoding, i.Compression, order,
		i.BlobSize, i.PayloadSize, i.PayloadLength, i.Checksum)
}
