// Package texinspect parses DDS and KTX v1 texture containers and locates
// the byte range and geometry of any sub-image (array layer, cube face or
// volume slice, mip level) without decoding pixel data.
package texinspect

import "github.com/woozymasta/texinspect/internal/texfmt"

// Format is the canonical pixel-format enumeration shared by DDS and KTX.
// It is a type alias to internal/texfmt.Format so the internal tables and
// this public enum can never drift apart.
type Format = texfmt.Format

// Re-exported format constants, in the same order as internal/texfmt.
const (
	BC1      = texfmt.BC1
	BC2      = texfmt.BC2
	BC3      = texfmt.BC3
	BC4      = texfmt.BC4
	BC5      = texfmt.BC5
	BC6H     = texfmt.BC6H
	BC7      = texfmt.BC7
	ETC1     = texfmt.ETC1
	ETC2     = texfmt.ETC2
	ETC2A    = texfmt.ETC2A
	ETC2A1   = texfmt.ETC2A1
	PTC12    = texfmt.PTC12
	PTC14    = texfmt.PTC14
	PTC12A   = texfmt.PTC12A
	PTC14A   = texfmt.PTC14A
	PTC22    = texfmt.PTC22
	PTC24    = texfmt.PTC24
	ATC      = texfmt.ATC
	ATCE     = texfmt.ATCE
	ATCI     = texfmt.ATCI
	ASTC4x4  = texfmt.ASTC4x4
	ASTC5x5  = texfmt.ASTC5x5
	ASTC6x6  = texfmt.ASTC6x6
	ASTC8x5  = texfmt.ASTC8x5
	ASTC8x6  = texfmt.ASTC8x6
	ASTC10x5 = texfmt.ASTC10x5

	A8       = texfmt.A8
	R8       = texfmt.R8
	RGBA8    = texfmt.RGBA8
	RGBA8S   = texfmt.RGBA8S
	RG16     = texfmt.RG16
	RGB8     = texfmt.RGB8
	R16      = texfmt.R16
	R32F     = texfmt.R32F
	R16F     = texfmt.R16F
	RG16F    = texfmt.RG16F
	RG16S    = texfmt.RG16S
	RGBA16F  = texfmt.RGBA16F
	RGBA16   = texfmt.RGBA16
	BGRA8    = texfmt.BGRA8
	RGB10A2  = texfmt.RGB10A2
	RG11B10F = texfmt.RG11B10F
	RG8      = texfmt.RG8
	RG8S     = texfmt.RG8S

	FormatCount = texfmt.FormatCount
)

// Flags records boolean container properties that don't fit the
// geometry fields below.
type Flags uint8

const (
	FlagCubemap Flags = 1 << iota
	FlagSRGB
	FlagAlpha
	FlagDDS
	FlagKTX
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Descriptor is the parsed, container-agnostic view of a DDS or KTX file:
// its pixel format and geometry, plus the byte range of the sub-image
// payload region (the container header and any metadata are excluded).
type Descriptor struct {
	Format         Format
	Flags          Flags
	Width          uint32
	Height         uint32
	Depth          uint32
	MipCount       uint32
	ArraySize      uint32
	FaceCount      uint32 // 1 for non-cubemap, 6 for cubemap
	Bpp            uint8
	DataOffset     int
	PayloadSize    int
	MetadataOffset int // KTX only; zero for DDS
	MetadataSize   int // KTX only; zero for DDS
}

// SubImage is the located view of one (array, face-or-slice, mip) triple:
// its byte range within the original file data and its geometry.
type SubImage struct {
	Offset   int
	Size     int
	Width    uint32
	Height   uint32
	Depth    uint32
	RowPitch int
}
