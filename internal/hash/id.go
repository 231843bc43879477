package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 over several writes, so callers can hash a
// pattern row by row without building one large string first.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteString appends s to the running hash.
func (d *Digest) WriteString(s string) {
	_, _ = d.d.WriteString(s)
}

// WriteByte appends a single byte to the running hash.
func (d *Digest) WriteByte(b byte) error {
	_, err := d.d.Write([]byte{b})
	return err
}

// Sum64 returns the current hash value.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
