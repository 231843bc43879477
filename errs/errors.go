// Package errs defines the sentinel errors shared by spikeknit packages.
//
// Callers branch on semantics with errors.Is; implementations attach context
// with fmt.Errorf("...: %w", err).
package errs

import "errors"

// Parameter validation errors.
var (
	ErrInvalidSpikeHeight   = errors.New("spike height must be at least 1")
	ErrInvalidSpikeDistance = errors.New("spike distance must be at least 1")
)

// Pattern structure errors.
var (
	ErrInvalidStitch      = errors.New("invalid stitch")
	ErrRowCountMismatch   = errors.New("row count does not match spike height")
	ErrRowWidthMismatch   = errors.New("row width does not match pattern width")
	ErrInvalidRowNumber   = errors.New("invalid row number")
	ErrInvalidInstruction = errors.New("invalid instruction line")
)

// Blob format errors.
var (
	ErrInvalidHeaderSize     = errors.New("invalid header size")
	ErrInvalidMagicNumber    = errors.New("invalid magic number")
	ErrInvalidEncodingType   = errors.New("invalid row encoding type")
	ErrInvalidCompression    = errors.New("invalid compression type")
	ErrInvalidPayloadOffset  = errors.New("invalid payload offset")
	ErrInvalidPayloadLength  = errors.New("invalid payload length")
	ErrTruncatedPayload      = errors.New("truncated row payload")
	ErrChecksumMismatch      = errors.New("payload checksum mismatch")
	ErrTrailingPayloadBytes  = errors.New("unexpected bytes after last row")
	ErrStitchCountOutOfRange = errors.New("stitch count out of range")
)

// Document errors.
var (
	ErrFingerprintMismatch = errors.New("pattern fingerprint mismatch")
	ErrUnknownStitchKind   = errors.New("unknown stitch kind")
)

// Auxiliary lookup errors.
var (
	ErrUnknownYarnWeight = errors.New("unknown yarn weight")
	ErrUnknownFormat     = errors.New("unknown output format")
)
