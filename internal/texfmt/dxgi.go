package texfmt

// DxgiRow maps one DXGI_FORMAT numeric value to a canonical format and
// whether that DXGI value names an sRGB variant.
type DxgiRow struct {
	DxgiValue uint32
	Format    Format
	SRGB      bool
}

// dxgiTable holds only the DXGI_FORMAT values the canonical enum can
// represent; values with no canonical counterpart (e.g. planar YUV,
// typeless, integer, BC4/BC5 SNORM) are absent, and so are some that have
// one (A8_UNORM, BC6H_UF16, the R8G8/R16G16/R8G8B8A8 SNORM variants). All
// absent values fall through to an "unsupported format" error.
var dxgiTable = []DxgiRow{
	{DxgiValue: 71, Format: BC1},
	{DxgiValue: 72, Format: BC1, SRGB: true},
	{DxgiValue: 74, Format: BC2},
	{DxgiValue: 75, Format: BC2, SRGB: true},
	{DxgiValue: 77, Format: BC3},
	{DxgiValue: 78, Format: BC3, SRGB: true},
	{DxgiValue: 80, Format: BC4},
	{DxgiValue: 83, Format: BC5},
	{DxgiValue: 96, Format: BC6H},
	{DxgiValue: 98, Format: BC7},
	{DxgiValue: 99, Format: BC7, SRGB: true},

	{DxgiValue: 61, Format: R8},
	{DxgiValue: 56, Format: R16},
	{DxgiValue: 54, Format: R16F},
	{DxgiValue: 41, Format: R32F},
	{DxgiValue: 49, Format: RG8},
	{DxgiValue: 35, Format: RG16},
	{DxgiValue: 34, Format: RG16F},
	{DxgiValue: 87, Format: BGRA8},
	{DxgiValue: 91, Format: BGRA8, SRGB: true},
	{DxgiValue: 28, Format: RGBA8},
	{DxgiValue: 29, Format: RGBA8, SRGB: true},
	{DxgiValue: 11, Format: RGBA16},
	{DxgiValue: 10, Format: RGBA16F},
	{DxgiValue: 24, Format: RGB10A2},
	{DxgiValue: 26, Format: RG11B10F},
}

// ResolveDXGI looks up a DXGI_FORMAT numeric value.
func ResolveDXGI(dxgiValue uint32) (f Format, srgb bool, ok bool) {
	for _, row := range dxgiTable {
		if row.DxgiValue == dxgiValue {
			return row.Format, row.SRGB, true
		}
	}
	return 0, false, false
}
