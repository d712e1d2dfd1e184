package texfmt

// KtxRow maps a KTX v1 internalFormat GL enum to a canonical format.
//
// The format this table is translated from also carries a parallel
// "srgb" internalFormat per row, but never actually reads it back when
// resolving a parsed file's format: only the plain internalFormat is
// compared. sRGB detection for KTX containers is therefore not a
// resolvable property here either; callers get the plain format and no
// sRGB flag, matching that behavior rather than inventing a distinction
// the lookup never makes.
type KtxRow struct {
	GLInternalFormat uint32
	Format           Format
}

// ktxPrimaryTable covers the EXT/ARB-suffixed compressed enums and the
// explicitly-sized uncompressed sized-internal-format enums that modern
// KTX exporters emit.
var ktxPrimaryTable = []KtxRow{
	{GLInternalFormat: 0x83F1, Format: BC1},
	{GLInternalFormat: 0x83F2, Format: BC2},
	{GLInternalFormat: 0x83F3, Format: BC3},
	{GLInternalFormat: 0x8C70, Format: BC4}, // COMPRESSED_LUMINANCE_LATC1_EXT
	{GLInternalFormat: 0x8C72, Format: BC5}, // COMPRESSED_LUMINANCE_ALPHA_LATC2_EXT
	{GLInternalFormat: 0x8E8E, Format: BC6H}, // COMPRESSED_RGB_BPTC_SIGNED_FLOAT_ARB
	{GLInternalFormat: 0x8E8C, Format: BC7}, // COMPRESSED_RGBA_BPTC_UNORM_ARB
	{GLInternalFormat: 0x8D64, Format: ETC1},
	{GLInternalFormat: 0x9274, Format: ETC2},
	{GLInternalFormat: 0x9278, Format: ETC2A},
	{GLInternalFormat: 0x9276, Format: ETC2A1},
	{GLInternalFormat: 0x8C01, Format: PTC12},  // COMPRESSED_RGB_PVRTC_2BPPV1_IMG
	{GLInternalFormat: 0x8C00, Format: PTC14},  // COMPRESSED_RGB_PVRTC_4BPPV1_IMG
	{GLInternalFormat: 0x8C02, Format: PTC12A}, // COMPRESSED_RGBA_PVRTC_2BPPV1_IMG
	{GLInternalFormat: 0x8C03, Format: PTC14A}, // COMPRESSED_RGBA_PVRTC_4BPPV1_IMG
	{GLInternalFormat: 0x9137, Format: PTC22},  // COMPRESSED_RGBA_PVRTC_2BPPV2_IMG
	{GLInternalFormat: 0x9138, Format: PTC24},  // COMPRESSED_RGBA_PVRTC_4BPPV2_IMG
	{GLInternalFormat: 0x8C92, Format: ATC},
	{GLInternalFormat: 0x8C93, Format: ATCE},
	{GLInternalFormat: 0x87EE, Format: ATCI},
	{GLInternalFormat: 0x93B0, Format: ASTC4x4},
	{GLInternalFormat: 0x93B2, Format: ASTC5x5},
	{GLInternalFormat: 0x93B4, Format: ASTC6x6},
	{GLInternalFormat: 0x93B5, Format: ASTC8x5},
	{GLInternalFormat: 0x93B6, Format: ASTC8x6},
	{GLInternalFormat: 0x93B8, Format: ASTC10x5},

	{GLInternalFormat: 0x1906, Format: A8}, // ALPHA
	{GLInternalFormat: 0x8229, Format: R8},
	{GLInternalFormat: 0x8058, Format: RGBA8},
	{GLInternalFormat: 0x8F97, Format: RGBA8S}, // RGBA8_SNORM
	{GLInternalFormat: 0x822C, Format: RG16},
	{GLInternalFormat: 0x8051, Format: RGB8},
	{GLInternalFormat: 0x822A, Format: R16},
	{GLInternalFormat: 0x822E, Format: R32F},
	{GLInternalFormat: 0x822D, Format: R16F},
	{GLInternalFormat: 0x822F, Format: RG16F},
	{GLInternalFormat: 0x8F99, Format: RG16S}, // RG16_SNORM
	{GLInternalFormat: 0x881A, Format: RGBA16F},
	{GLInternalFormat: 0x805B, Format: RGBA16},
	{GLInternalFormat: 0x80E1, Format: BGRA8}, // BGRA
	{GLInternalFormat: 0x8059, Format: RGB10A2}, // RGB10_A2
	{GLInternalFormat: 0x8C3A, Format: RG11B10F}, // R11F_G11F_B10F
	{GLInternalFormat: 0x822B, Format: RG8},
	{GLInternalFormat: 0x8F95, Format: RG8S}, // RG8_SNORM
}

// ktxFallbackTable covers plain, unsuffixed GL enums that older KTX
// exporters wrote directly as internalFormat before EXT/sized variants
// were common. Tried only when the primary table misses.
var ktxFallbackTable = []KtxRow{
	{GLInternalFormat: 0x1906, Format: A8},   // GL_ALPHA
	{GLInternalFormat: 0x1903, Format: R8},   // GL_RED
	{GLInternalFormat: 0x1907, Format: RGB8}, // GL_RGB
	{GLInternalFormat: 0x1908, Format: RGBA8}, // GL_RGBA
	{GLInternalFormat: 0x83F0, Format: BC1},  // GL_COMPRESSED_RGB_S3TC_DXT1_EXT
}

// ResolveKTXFormat tries the primary table, then the fallback table.
func ResolveKTXFormat(glInternalFormat uint32) (f Format, ok bool) {
	for _, row := range ktxPrimaryTable {
		if row.GLInternalFormat == glInternalFormat {
			return row.Format, true
		}
	}
	for _, row := range ktxFallbackTable {
		if row.GLInternalFormat == glInternalFormat {
			return row.Format, true
		}
	}
	return 0, false
}
