// Package encoding writes pattern rows into the row payload of a pattern blob
// and reads them back.
//
// # Payload Layout
//
// Rows are written back to back in pattern order:
//
//	row    := entryCount entry*
//	entry  := kind(1 byte) count
//
// kind is a format.StitchKind. KYOK and SK2P always carry count 1 so every
// entry has the same shape.
//
// Two encodings are available:
//
//   - TypeRaw: entryCount and count are uint32 in the blob's byte order.
//     Fixed width, 5 bytes per entry.
//   - TypeVarint: entryCount and count are unsigned varints. Usually 2 bytes
//     per entry and independent of byte order.
//
// # Usage
//
//	enc, err := encoding.NewRowEncoder(format.TypeVarint, endian.GetLittleEndianEngine())
//	if err != nil {
//	    return err
//	}
//	defer enc.Finish()
//
//	if err := enc.WriteSlice(p.Rows()); err != nil {
//	    return err
//	}
//	payload := bytes.Clone(enc.Bytes())
//
// Decoders validate every entry through pattern.NewStitch, so a decoded row
// is always well formed. They do not check row widths; pattern.FromRows does.
//
// Most users should use the blob package instead.
package encoding
