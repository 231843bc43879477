// Package section defines the fixed-size header of a pattern blob.
//
// A pattern blob is a header followed by the (optionally compressed) row
// payload:
//
//	┌─────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                    │
//	├─────────────────────────────────────────────┤
//	│ Row payload (variable)                      │
//	│  - encoded by the encoding package          │
//	│  - compressed by the compress package       │
//	└─────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field          | Type   | Description
//	-------|----------------|--------|----------------------------------
//	0-1    | Options        | uint16 | Magic number and option bits
//	2      | RowEncoding    | uint8  | 0x1=Raw, 0x2=Varint
//	3      | Compression    | uint8  | 0x1=None, 0x2=Zstd, 0x3=S2, 0x4=LZ4
//	4-7    | SpikeHeight    | uint32 |
//	8-11   | SpikeDistance  | uint32 |
//	12-15  | RowCount       | uint32 | 4 + 2*SpikeHeight
//	16-19  | PayloadOffset  | uint32 | Byte offset to the row payload
//	20-23  | PayloadLength  | uint32 | Uncompressed payload length
//	24-31  | Checksum       | uint64 | xxHash64 of the uncompressed payload
//
// The Options field is always stored little-endian so a reader can find the
// endianness bit before it knows the byte order of the remaining fields:
//
//	Bit 0:      Endianness (0=little-endian, 1=big-endian)
//	Bits 1-3:   Reserved (must be 0)
//	Bits 4-15:  Magic number (0xEC10 for pattern blob v1)
//
// Most users should go through the blob package instead.
package section
