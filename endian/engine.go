// Package endian selects the byte order used by pattern blobs.
//
// A blob records its byte order in the header flag; readers look the engine
// up with ForFlag and writers append through the same engine:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, uint32(count))
//
// Returned engines are the stateless binary.LittleEndian and
// binary.BigEndian values and are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so one
// value can both read fixed-width fields and append them to a buffer.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host byte order.
func CheckEndianness() EndianEngine {
	var probe uint16 = 0x0001
	if *(*byte)(unsafe.Pointer(&probe)) == 0x01 {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine, the blob default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForFlag returns the engine matching a header's big-endian bit.
func ForFlag(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
