package texfmt

import "testing"

func TestIsCompressedMatchesBlockDimensions(t *testing.T) {
	t.Parallel()

	for f := Format(0); f < FormatCount; f++ {
		f := f
		t.Run(NameOf(f), func(t *testing.T) {
			t.Parallel()

			bi := BlockInfoFor(f)
			wantCompressed := bi.BlockWidth > 1 || bi.BlockHeight > 1
			if got := f.IsCompressed(); got != wantCompressed && f != FormatCompressed {
				t.Fatalf("Format(%d).IsCompressed() = %v, want %v (blockW=%d blockH=%d)",
					f, got, wantCompressed, bi.BlockWidth, bi.BlockHeight)
			}
		})
	}
}

func TestNameOfOutOfRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		f    Format
	}{
		{"negative", -1},
		{"count", FormatCount},
		{"far beyond", FormatCount + 100},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := NameOf(tc.f); got != "unknown" {
				t.Fatalf("NameOf(%d) = %q, want %q", tc.f, got, "unknown")
			}
		})
	}
}

func TestResolveFourCCKnownCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		fourCC uint32
		want   Format
	}{
		{"DXT1", fourCC('D', 'X', 'T', '1'), BC1},
		{"DXT3", fourCC('D', 'X', 'T', '3'), BC2},
		{"DXT5", fourCC('D', 'X', 'T', '5'), BC3},
		{"ATI1", fourCC('A', 'T', 'I', '1'), BC4},
		{"ATI2", fourCC('A', 'T', 'I', '2'), BC5},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ResolveFourCC(tc.fourCC)
			if !ok {
				t.Fatalf("ResolveFourCC(%s) not found", tc.name)
			}
			if got != tc.want {
				t.Fatalf("ResolveFourCC(%s) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

// TestResolveFourCCQuirkRows covers the rows that reuse DDPF_* flag bit
// constants as the matched "FourCC" value, a quirk preserved from the
// table this one is translated from even though real files never hit it.
func TestResolveFourCCQuirkRows(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		fourCC uint32
		want   Format
	}{
		{"indexed", DdpfIndexed, R8},
		{"luminance", DdpfLuminance, R8},
		{"alpha-only", DdpfAlpha, R8},
		{"rgb-alphapixels", DdpfRGB | DdpfAlphaPixels, BGRA8},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ResolveFourCC(tc.fourCC)
			if !ok {
				t.Fatalf("ResolveFourCC(%s) not found", tc.name)
			}
			if got != tc.want {
				t.Fatalf("ResolveFourCC(%s) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestResolveBitmaskRGBA8(t *testing.T) {
	t.Parallel()

	got, ok := ResolveBitmask(32, DdpfRGB|DdpfAlphaPixels, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000)
	if !ok {
		t.Fatalf("ResolveBitmask did not match RGBA8 row")
	}
	if got != RGBA8 {
		t.Fatalf("ResolveBitmask = %v, want RGBA8", got)
	}
}

func TestResolveBitmaskRGB8HasTwoChannelOrders(t *testing.T) {
	t.Parallel()

	rgb, ok := ResolveBitmask(24, DdpfRGB, 0x000000ff, 0x0000ff00, 0x00ff0000, 0)
	if !ok || rgb != RGB8 {
		t.Fatalf("RGB-order 24-bit row: got %v, %v", rgb, ok)
	}

	bgr, ok := ResolveBitmask(24, DdpfRGB, 0x00ff0000, 0x0000ff00, 0x000000ff, 0)
	if !ok || bgr != RGB8 {
		t.Fatalf("BGR-order 24-bit row: got %v, %v", bgr, ok)
	}
}

func TestResolveBitmaskBumpDuDv(t *testing.T) {
	t.Parallel()

	rg8s, ok := ResolveBitmask(16, DdpfBumpDuDv, 0x000000ff, 0x0000ff00, 0, 0)
	if !ok || rg8s != RG8S {
		t.Fatalf("16-bit BUMPDUDV row: got %v, %v", rg8s, ok)
	}

	rgba8s, ok := ResolveBitmask(32, DdpfBumpDuDv, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000)
	if !ok || rgba8s != RGBA8S {
		t.Fatalf("32-bit BUMPDUDV row: got %v, %v", rgba8s, ok)
	}
}

func TestResolveDXGI(t *testing.T) {
	t.Parallel()

	f, srgb, ok := ResolveDXGI(98) // BC7_UNORM
	if !ok || f != BC7 || srgb {
		t.Fatalf("DXGI 98: got format=%v srgb=%v ok=%v, want BC7/false/true", f, srgb, ok)
	}

	f, srgb, ok = ResolveDXGI(99) // BC7_UNORM_SRGB
	if !ok || f != BC7 || !srgb {
		t.Fatalf("DXGI 99: got format=%v srgb=%v ok=%v, want BC7/true/true", f, srgb, ok)
	}

	_, _, ok = ResolveDXGI(0xffffffff)
	if ok {
		t.Fatalf("ResolveDXGI matched an unassigned value")
	}
}

func TestResolveKTXFormatPrimaryAndFallback(t *testing.T) {
	t.Parallel()

	f, ok := ResolveKTXFormat(0x83F3) // COMPRESSED_RGBA_S3TC_DXT5_EXT
	if !ok || f != BC3 {
		t.Fatalf("primary table DXT5: got %v, %v", f, ok)
	}

	f, ok = ResolveKTXFormat(0x1908) // GL_RGBA, fallback-only
	if !ok || f != RGBA8 {
		t.Fatalf("fallback table GL_RGBA: got %v, %v", f, ok)
	}

	_, ok = ResolveKTXFormat(0xdeadbeef)
	if ok {
		t.Fatalf("ResolveKTXFormat matched an unassigned value")
	}
}
