package texfmt

// BitmaskRow is one row of the DDS uncompressed-pixel-format bitmask
// table, keyed on bit count, flags, and the four channel masks. RGB8
// legitimately appears twice (RGB and BGR channel order) since the
// canonical enum has no separate BGR8 entry; BGRA8 appears four times
// (with and without DDPF_ALPHAPIXELS, with and without an alpha mask). This
// mirrors the original table's rows rather than collapsing look-alikes.
type BitmaskRow struct {
	BitCount uint32
	Flags    uint32
	RMask    uint32
	GMask    uint32
	BMask    uint32
	AMask    uint32
	Format   Format
}

var bitmaskTable = []BitmaskRow{
	{BitCount: 8, Flags: DdpfLuminance, RMask: 0x000000ff, Format: R8},
	{BitCount: 16, Flags: DdpfBumpDuDv, RMask: 0x000000ff, GMask: 0x0000ff00, Format: RG8S},
	{BitCount: 24, Flags: DdpfRGB, RMask: 0x00ff0000, GMask: 0x0000ff00, BMask: 0x000000ff, Format: RGB8},
	{BitCount: 24, Flags: DdpfRGB, RMask: 0x000000ff, GMask: 0x0000ff00, BMask: 0x00ff0000, Format: RGB8},
	{BitCount: 32, Flags: DdpfRGB, RMask: 0x00ff0000, GMask: 0x0000ff00, BMask: 0x000000ff, Format: BGRA8},
	{BitCount: 32, Flags: DdpfRGB | DdpfAlphaPixels, RMask: 0x000000ff, GMask: 0x0000ff00, BMask: 0x00ff0000, AMask: 0xff000000, Format: RGBA8},
	{BitCount: 32, Flags: DdpfBumpDuDv, RMask: 0x000000ff, GMask: 0x0000ff00, BMask: 0x00ff0000, AMask: 0xff000000, Format: RGBA8S},
	{BitCount: 32, Flags: DdpfRGB, RMask: 0x00ff0000, GMask: 0x0000ff00, BMask: 0x000000ff, AMask: 0xff000000, Format: BGRA8},
	{BitCount: 32, Flags: DdpfRGB | DdpfAlphaPixels, RMask: 0x00ff0000, GMask: 0x0000ff00, BMask: 0x000000ff, AMask: 0xff000000, Format: BGRA8}, // D3DFMT_A8R8G8B8
	{BitCount: 32, Flags: DdpfRGB | DdpfAlphaPixels, RMask: 0x00ff0000, GMask: 0x0000ff00, BMask: 0x000000ff, Format: BGRA8},                    // D3DFMT_X8R8G8B8
	{BitCount: 32, Flags: DdpfRGB | DdpfAlphaPixels, RMask: 0x000003ff, GMask: 0x000ffc00, BMask: 0x3ff00000, AMask: 0xc0000000, Format: RGB10A2},
	{BitCount: 32, Flags: DdpfRGB, RMask: 0x0000ffff, GMask: 0xffff0000, Format: RG16},
	{BitCount: 32, Flags: DdpfBumpDuDv, RMask: 0x0000ffff, GMask: 0xffff0000, Format: RG16S},
}

// ResolveBitmask walks the DDS bitmask table for an exact
// (bitCount, flags, r, g, b, a) match, returning ok=false if none matched.
func ResolveBitmask(bitCount, flags, rMask, gMask, bMask, aMask uint32) (Format, bool) {
	for _, row := range bitmaskTable {
		if row.BitCount == bitCount && row.Flags == flags &&
			row.RMask == rMask && row.GMask == gMask &&
			row.BMask == bMask && row.AMask == aMask {
			return row.Format, true
		}
	}
	return 0, false
}
