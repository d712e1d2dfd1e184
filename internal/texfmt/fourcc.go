package texfmt

// fourCC packs four ASCII bytes into the little-endian uint32 used by DDS
// pixel-format FourCC fields.
func fourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// DDS pixel-format flags, duplicated from internal/dds so this package has
// no dependency on it (texfmt is a leaf package; internal/dds depends on
// texfmt, not the reverse).
const (
	DdpfAlphaPixels = 0x1
	DdpfAlpha       = 0x2
	DdpfFourCC      = 0x4
	DdpfRGB         = 0x40
	DdpfYUV         = 0x200
	DdpfLuminance   = 0x20000
	DdpfBumpDuDv    = 0x80000
	DdpfIndexed     = 0x20
)

// FourCCRow is one row of the DDS FourCC precedence table, keyed on the
// pixel format's four-character code. A few rows near the end reuse the
// DDPF_* flag constants above as the "FourCC" value being matched; those
// bit patterns essentially never collide with a real four-character code,
// so the rows are effectively unreachable for real files, but they stay
// in so this table matches the one it is translated from row for row.
type FourCCRow struct {
	FourCCValue uint32
	Format      Format
}

// fourCCTable is tried in order; the first matching row wins, mirroring
// the original's linear scan.
var fourCCTable = []FourCCRow{
	{fourCC('D', 'X', 'T', '1'), BC1},
	{fourCC('D', 'X', 'T', '2'), BC2},
	{fourCC('D', 'X', 'T', '3'), BC2},
	{fourCC('D', 'X', 'T', '4'), BC3},
	{fourCC('D', 'X', 'T', '5'), BC3},
	{fourCC('A', 'T', 'I', '1'), BC4},
	{fourCC('B', 'C', '4', 'U'), BC4},
	{fourCC('A', 'T', 'I', '2'), BC5},
	{fourCC('B', 'C', '5', 'U'), BC5},
	{fourCC('E', 'T', 'C', '1'), ETC1},
	{fourCC('E', 'T', 'C', '2'), ETC2},
	{fourCC('E', 'T', '2', 'A'), ETC2A},
	{fourCC('P', 'T', 'C', '2'), PTC12A},
	{fourCC('P', 'T', 'C', '4'), PTC14A},
	{fourCC('A', 'T', 'C', ' '), ATC},
	{fourCC('A', 'T', 'C', 'E'), ATCE},
	{fourCC('A', 'T', 'C', 'I'), ATCI},
	{fourCC('A', 'S', '4', '4'), ASTC4x4},
	{fourCC('A', 'S', '5', '5'), ASTC5x5},
	{fourCC('A', 'S', '6', '6'), ASTC6x6},
	{fourCC('A', 'S', '8', '5'), ASTC8x5},
	{fourCC('A', 'S', '8', '6'), ASTC8x6},
	{fourCC('A', 'S', ':', '5'), ASTC10x5},
	{36, RGBA16},   // D3DFMT_A16B16G16R16
	{113, RGBA16F}, // D3DFMT_A16B16G16R16F
	{DdpfRGB | DdpfAlphaPixels, BGRA8},
	{DdpfIndexed, R8},
	{DdpfLuminance, R8},
	{DdpfAlpha, R8},
	{111, R16F},    // D3DFMT_R16F
	{114, R32F},    // D3DFMT_R32F
	{51, RG8},      // D3DFMT_A8L8
	{34, RG16},     // D3DFMT_G16R16
	{112, RG16F},   // D3DFMT_G16R16F
	{20, RGB8},     // D3DFMT_R8G8B8
	{21, BGRA8},    // D3DFMT_A8R8G8B8
	{36, RGBA16},   // D3DFMT_A16B16G16R16, duplicate row: first match above already wins
	{113, RGBA16F}, // D3DFMT_A16B16G16R16F, duplicate row: first match above already wins
	{31, RGB10A2},  // D3DFMT_A2B10G10R10
}

// ResolveFourCC walks the DDS FourCC precedence table for the given
// pixel-format FourCC value, returning the matched format and ok=true,
// or ok=false if nothing matched.
func ResolveFourCC(fourCCValue uint32) (Format, bool) {
	for _, row := range fourCCTable {
		if row.FourCCValue == fourCCValue {
			return row.Format, true
		}
	}
	return 0, false
}
