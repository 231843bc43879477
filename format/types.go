package format

type (
	StitchKind      uint8
	Section         uint8
	EncodingType    uint8
	CompressionType uint8
)

const (
	StitchPlain StitchKind = 0x1 // StitchPlain represents a run of knit stitches.
	StitchKYOK  StitchKind = 0x2 // StitchKYOK represents knit one, yarn over, knit one in the same stitch.
	StitchSK2P  StitchKind = 0x3 // StitchSK2P represents slip one, knit two together, pass slipped stitch over.
	StitchGap   StitchKind = 0x4 // StitchGap represents blank chart cells used for alignment only.

	SectionTopBorder    Section = 0x1 // SectionTopBorder represents the two leading border rows.
	SectionAscending    Section = 0x2 // SectionAscending represents the rising half of the spike.
	SectionMiddleBorder Section = 0x3 // SectionMiddleBorder represents the two separator rows.
	SectionDescending   Section = 0x4 // SectionDescending represents the falling half of the spike.

	TypeRaw    EncodingType = 0x1 // TypeRaw represents fixed-width stitch counts.
	TypeVarint EncodingType = 0x2 // TypeVarint represents unsigned varint stitch counts.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k StitchKind) String() string {
	switch k {
	case StitchPlain:
		return "Plain"
	case StitchKYOK:
		return "KYOK"
	case StitchSK2P:
		return "SK2P"
	case StitchGap:
		return "Gap"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the four stitch kinds.
func (k StitchKind) Valid() bool {
	return k >= StitchPlain && k <= StitchGap
}

// Repeatable reports whether stitches of this kind carry a repeat count.
// KYOK and SK2P are fixed-arity operations.
func (k StitchKind) Repeatable() bool {
	return k == StitchPlain || k == StitchGap
}

// ParseStitchKind converts a name produced by String back to a StitchKind.
func ParseStitchKind(s string) (StitchKind, bool) {
	switch s {
	case "Plain":
		return StitchPlain, true
	case "KYOK":
		return StitchKYOK, true
	case "SK2P":
		return StitchSK2P, true
	case "Gap":
		return StitchGap, true
	default:
		return 0, false
	}
}

func (s Section) String() string {
	switch s {
	case SectionTopBorder:
		return "TopBorder"
	case SectionAscending:
		return "Ascending"
	case SectionMiddleBorder:
		return "MiddleBorder"
	case SectionDescending:
		return "Descending"
	default:
		return "Unknown"
	}
}

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeVarint:
		return "Varint"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType converts a lower-case name ("none", "zstd", "s2", "lz4")
// to a CompressionType.
func ParseCompressionType(s string) (CompressionType, bool) {
	switch s {
	case "none", "None":
		return CompressionNone, true
	case "zstd", "Zstd":
		return CompressionZstd, true
	case "s2", "S2":
		return CompressionS2, true
	case "lz4", "LZ4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// ParseEncodingType converts "raw" or "varint" to an EncodingType.
func ParseEncodingType(s string) (EncodingType, bool) {
	switch s {
	case "raw", "Raw":
		return TypeRaw, true
	case "varint", "Varint":
		return TypeVarint, true
	default:
		return 0, false
	}
}
