package texinspect

import (
	"bytes"
	"testing"

	"github.com/woozymasta/texinspect/internal/bcn"
	"github.com/woozymasta/texinspect/internal/dds"
	"github.com/woozymasta/texinspect/internal/ktx"
)

func buildDDSFile(t *testing.T, h *dds.Header, dx10 *dds.HeaderDx10, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := dds.WriteMagic(&buf); err != nil {
		t.Fatalf("WriteMagic: %v", err)
	}
	if err := dds.WriteHeader(&buf, h); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if dx10 != nil {
		if err := dds.WriteHeaderDx10(&buf, dx10); err != nil {
			t.Fatalf("WriteHeaderDx10: %v", err)
		}
	}
	buf.Write(payload)
	return buf.Bytes()
}

func fourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

func TestParseDDSBC1NoMips(t *testing.T) {
	t.Parallel()

	rgba := make([]byte, 4*4*4)
	block, err := bcn.EncodeBC1(rgba, 4, 4)
	if err != nil {
		t.Fatalf("EncodeBC1: %v", err)
	}

	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture,
		Width: 4, Height: 4,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC('D', 'X', 'T', '1')},
		Caps:        dds.CapsTexture,
	}
	data := buildDDSFile(t, h, nil, block)

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Format != BC1 || d.MipCount != 1 || d.ArraySize != 1 || d.FaceCount != 1 {
		t.Fatalf("descriptor = %+v, want BC1 single mip/array/face", d)
	}

	sub, err := GetSub(d, data, 0, 0, 0)
	if err != nil {
		t.Fatalf("GetSub: %v", err)
	}
	if sub.Size != 8 || sub.Offset != d.DataOffset {
		t.Fatalf("sub = %+v, want offset=%d size=8", sub, d.DataOffset)
	}
}

func TestParseDDSRGBA8ThreeMips(t *testing.T) {
	t.Parallel()

	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture | dds.HeaderFlagsMipMap,
		Width: 4, Height: 4, MipMapCount: 3,
		PixelFormat: dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 32,
			RBitMask: 0x000000ff, GBitMask: 0x0000ff00, BBitMask: 0x00ff0000, ABitMask: 0xff000000,
		},
		Caps: dds.CapsTexture | dds.CapsMipMap,
	}
	payload := make([]byte, 64+16+4)
	data := buildDDSFile(t, h, nil, payload)

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Format != RGBA8 || d.MipCount != 3 {
		t.Fatalf("descriptor = %+v, want RGBA8 3 mips", d)
	}

	mip0, err := GetSub(d, data, 0, 0, 0)
	if err != nil || mip0.Size != 64 || mip0.Offset != d.DataOffset {
		t.Fatalf("mip0 = %+v, err=%v, want size=64 offset=%d", mip0, err, d.DataOffset)
	}
	mip1, err := GetSub(d, data, 0, 0, 1)
	if err != nil || mip1.Size != 16 || mip1.Offset != d.DataOffset+64 {
		t.Fatalf("mip1 = %+v, err=%v, want size=16 offset=%d", mip1, err, d.DataOffset+64)
	}
	mip2, err := GetSub(d, data, 0, 0, 2)
	if err != nil || mip2.Size != 4 || mip2.Offset != d.DataOffset+64+16 {
		t.Fatalf("mip2 = %+v, err=%v, want size=4 offset=%d", mip2, err, d.DataOffset+80)
	}
}

func TestParseDDSBC3CubemapFourMips(t *testing.T) {
	t.Parallel()

	rgba := make([]byte, 8*8*4)
	blockPerMip := func(w, h int) []byte {
		b, err := bcn.EncodeBC3(rgba[:w*h*4], w, h)
		if err != nil {
			t.Fatalf("EncodeBC3: %v", err)
		}
		return b
	}
	mip0 := blockPerMip(8, 8)
	mip1 := blockPerMip(4, 4)
	mip2 := blockPerMip(2, 2)
	mip3 := blockPerMip(1, 1)
	faceSize := len(mip0) + len(mip1) + len(mip2) + len(mip3)

	var payload []byte
	for face := 0; face < 6; face++ {
		payload = append(payload, mip0...)
		payload = append(payload, mip1...)
		payload = append(payload, mip2...)
		payload = append(payload, mip3...)
	}

	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture | dds.HeaderFlagsMipMap,
		Width: 8, Height: 8, MipMapCount: 4,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC('D', 'X', 'T', '5')},
		Caps:        dds.CapsTexture | dds.CapsComplex | dds.CapsMipMap,
		Caps2:       dds.Caps2Cubemap | dds.Caps2CubemapAllFaces,
	}
	data := buildDDSFile(t, h, nil, payload)

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Format != BC3 || !d.Flags.Has(FlagCubemap) || d.FaceCount != 6 {
		t.Fatalf("descriptor = %+v, want BC3 cubemap with 6 faces", d)
	}

	for face := 0; face < 6; face++ {
		sub, err := GetSub(d, data, 0, face, 0)
		if err != nil {
			t.Fatalf("GetSub face=%d: %v", face, err)
		}
		wantOffset := d.DataOffset + face*faceSize
		if sub.Offset != wantOffset || sub.Size != len(mip0) {
			t.Fatalf("face %d sub = %+v, want offset=%d size=%d", face, sub, wantOffset, len(mip0))
		}
	}
}

func TestParseDDSDX10ArraySRGB(t *testing.T) {
	t.Parallel()

	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture,
		Width: 4, Height: 4,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: dds.FourCCDX10},
		Caps:        dds.CapsTexture,
	}
	dx10 := &dds.HeaderDx10{
		DXGIFormat:        99, // BC7_UNORM_SRGB
		ResourceDimension: dds.ResourceDimensionTexture2D,
		ArraySize:         6,
	}
	payload := make([]byte, 16*6)
	data := buildDDSFile(t, h, dx10, payload)

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Format != BC7 || !d.Flags.Has(FlagSRGB) || d.ArraySize != 6 {
		t.Fatalf("descriptor = %+v, want BC7 sRGB array_size=6", d)
	}
}

func buildKTXFile(t *testing.T, h *ktx.Header, kv, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := ktx.WriteIdentifier(&buf); err != nil {
		t.Fatalf("WriteIdentifier: %v", err)
	}
	if err := ktx.WriteHeader(&buf, h); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	buf.Write(kv)
	buf.Write(payload)
	return buf.Bytes()
}

func TestParseKTXDXT5SingleFace(t *testing.T) {
	t.Parallel()

	h := &ktx.Header{
		Endianness: ktx.EndiannessBigEndian, GLInternalFormat: 0x83F3,
		PixelWidth: 4, PixelHeight: 4, NumberOfFaces: 1, NumberOfMipmapLevels: 1,
	}
	block := make([]byte, 16)
	var payload []byte
	payload = append(payload, 16, 0, 0, 0) // imageSize prefix, little-endian
	payload = append(payload, block...)
	data := buildKTXFile(t, h, nil, payload)

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Format != BC3 || d.FaceCount != 1 {
		t.Fatalf("descriptor = %+v, want BC3 face_count=1", d)
	}

	sub, err := GetSub(d, data, 0, 0, 0)
	if err != nil {
		t.Fatalf("GetSub: %v", err)
	}
	if sub.Size != 16 || sub.Offset != d.DataOffset+4 {
		t.Fatalf("sub = %+v, want size=16 offset=%d", sub, d.DataOffset+4)
	}
}

func TestParseDDSVolumeTextureSlices(t *testing.T) {
	t.Parallel()

	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture | dds.HeaderFlagsVolume,
		Width: 4, Height: 4, Depth: 2,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC('D', 'X', 'T', '1')},
		Caps:        dds.CapsTexture,
		Caps2:       dds.Caps2Volume,
	}
	payload := make([]byte, 8*2) // two BC1 4x4 slices, 8 bytes each
	data := buildDDSFile(t, h, nil, payload)

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Depth != 2 || d.Flags.Has(FlagCubemap) {
		t.Fatalf("descriptor = %+v, want depth=2 non-cubemap", d)
	}

	slice0, err := GetSub(d, data, 0, 0, 0)
	if err != nil || slice0.Size != 8 || slice0.Offset != d.DataOffset {
		t.Fatalf("slice0 = %+v, err=%v, want size=8 offset=%d", slice0, err, d.DataOffset)
	}
	slice1, err := GetSub(d, data, 0, 1, 0)
	if err != nil || slice1.Size != 8 || slice1.Offset != d.DataOffset+8 {
		t.Fatalf("slice1 = %+v, err=%v, want size=8 offset=%d", slice1, err, d.DataOffset+8)
	}
	if _, err := GetSub(d, data, 0, 2, 0); err == nil {
		t.Fatalf("GetSub with slice index 2 succeeded, want error (depth=2)")
	}
}

func TestParseDDSRowPitchAndBpp(t *testing.T) {
	t.Parallel()

	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture,
		Width: 4, Height: 4,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC('D', 'X', 'T', '1')},
		Caps:        dds.CapsTexture,
	}
	data := buildDDSFile(t, h, nil, make([]byte, 8))

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Bpp != 4 {
		t.Fatalf("Bpp = %d, want 4", d.Bpp)
	}

	sub, err := GetSub(d, data, 0, 0, 0)
	if err != nil || sub.RowPitch != 2 {
		t.Fatalf("sub = %+v, err=%v, want row_pitch=2", sub, err)
	}
}

func TestParseDDSAlphaFromHeaderBitNotFormatTable(t *testing.T) {
	t.Parallel()

	// BC1 (no alpha channel per the format table) with DDPF_ALPHA set
	// anyway: the descriptor's ALPHA flag must follow the header bit,
	// not FormatHasAlpha(BC1).
	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture,
		Width: 4, Height: 4,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC | dds.PFAlpha, FourCC: fourCC('D', 'X', 'T', '1')},
		Caps:        dds.CapsTexture,
	}
	data := buildDDSFile(t, h, nil, make([]byte, 8))

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Format != BC1 {
		t.Fatalf("Format = %v, want BC1", d.Format)
	}
	if FormatHasAlpha(BC1) {
		t.Fatalf("test assumption broken: BC1 now reports alpha in the format table")
	}
	if !d.Flags.Has(FlagAlpha) {
		t.Fatalf("descriptor = %+v, want FlagAlpha set from DDPF_ALPHA", d)
	}
}

func TestParseDDSMipCountGatesOnCapsNotHeaderFlags(t *testing.T) {
	t.Parallel()

	// DDSD_MIPMAPCOUNT set in header.flags but DDSCAPS_MIPMAP NOT set in
	// caps1: num_mips must still resolve to 1.
	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture | dds.HeaderFlagsMipMap,
		Width: 4, Height: 4, MipMapCount: 3,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC('D', 'X', 'T', '1')},
		Caps:        dds.CapsTexture,
	}
	data := buildDDSFile(t, h, nil, make([]byte, 8))

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.MipCount != 1 {
		t.Fatalf("MipCount = %d, want 1 (CapsMipMap unset)", d.MipCount)
	}
}

func TestParseDDSRejectsMissingCapsTexture(t *testing.T) {
	t.Parallel()

	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture,
		Width: 4, Height: 4,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC('D', 'X', 'T', '1')},
		// Caps deliberately left 0: DDSCAPS_TEXTURE unset.
	}
	data := buildDDSFile(t, h, nil, make([]byte, 8))

	if _, err := Parse(data); err == nil {
		t.Fatalf("Parse succeeded without DDSCAPS_TEXTURE, want error")
	}
}

func TestParseKTXCubemapUsesPerFaceStrideNotCombinedImageSize(t *testing.T) {
	t.Parallel()

	h := &ktx.Header{
		Endianness: ktx.EndiannessBigEndian, GLInternalFormat: 0x83F0, // DXT1
		PixelWidth: 4, PixelHeight: 4, NumberOfFaces: 6, NumberOfMipmapLevels: 1,
	}
	faceBlock := make([]byte, 8) // one BC1 4x4 block per face
	var payload []byte
	payload = append(payload, 48, 0, 0, 0) // imageSize = 8 bytes/face * 6 faces
	for face := 0; face < 6; face++ {
		payload = append(payload, faceBlock...)
	}
	data := buildKTXFile(t, h, nil, payload)

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.FaceCount != 6 || !d.Flags.Has(FlagCubemap) {
		t.Fatalf("descriptor = %+v, want face_count=6 cubemap", d)
	}

	for face := 0; face < 6; face++ {
		sub, err := GetSub(d, data, 0, face, 0)
		if err != nil {
			t.Fatalf("GetSub face=%d: %v", face, err)
		}
		wantOffset := d.DataOffset + 4 + face*8
		if sub.Offset != wantOffset || sub.Size != 8 {
			t.Fatalf("face %d sub = %+v, want offset=%d size=8", face, sub, wantOffset)
		}
	}
}

func TestParseKTXMetadataOffsetAndSize(t *testing.T) {
	t.Parallel()

	kv := make([]byte, 24)
	h := &ktx.Header{
		Endianness: ktx.EndiannessBigEndian, GLInternalFormat: 0x83F0,
		PixelWidth: 4, PixelHeight: 4, NumberOfFaces: 1, NumberOfMipmapLevels: 1,
		BytesOfKeyValueData: uint32(len(kv)),
	}
	var payload []byte
	payload = append(payload, 8, 0, 0, 0)
	payload = append(payload, make([]byte, 8)...)
	data := buildKTXFile(t, h, kv, payload)

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	wantMetaOffset := ktx.IdentifierSize + ktx.HeaderSize
	if d.MetadataOffset != wantMetaOffset || d.MetadataSize != len(kv) {
		t.Fatalf("descriptor = %+v, want metadata_offset=%d metadata_size=%d", d, wantMetaOffset, len(kv))
	}
}

func TestParseDDSHasZeroMetadataFields(t *testing.T) {
	t.Parallel()

	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture,
		Width: 4, Height: 4,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC('D', 'X', 'T', '1')},
		Caps:        dds.CapsTexture,
	}
	data := buildDDSFile(t, h, nil, make([]byte, 8))

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.MetadataOffset != 0 || d.MetadataSize != 0 {
		t.Fatalf("descriptor = %+v, want metadata_offset=0 metadata_size=0 for DDS", d)
	}
}

func TestParseUnknownMagic(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("HELLO WORLD"))
	if err == nil {
		t.Fatalf("Parse succeeded on non-texture data, want error")
	}
}

func TestGetSubOutOfRangeIsAnError(t *testing.T) {
	t.Parallel()

	h := &dds.Header{
		Size: dds.HeaderSize, Flags: dds.HeaderFlagsTexture,
		Width: 4, Height: 4,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC('D', 'X', 'T', '1')},
		Caps:        dds.CapsTexture,
	}
	data := buildDDSFile(t, h, nil, make([]byte, 8))

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if _, err := GetSub(d, data, 0, 0, 5); err == nil {
		t.Fatalf("GetSub with out-of-range mip succeeded, want error")
	}
	if _, err := GetSub(d, data, 3, 0, 0); err == nil {
		t.Fatalf("GetSub with out-of-range array layer succeeded, want error")
	}
}

func TestFingerprintIsDeterministicAndRangeScoped(t *testing.T) {
	t.Parallel()

	data := []byte("abcXYZdefUVW")
	sub := SubImage{Offset: 3, Size: 3} // "XYZ"

	fp1 := Fingerprint(data, sub)
	fp2 := Fingerprint(data, sub)
	if fp1 != fp2 {
		t.Fatalf("Fingerprint is not deterministic: %s != %s", fp1, fp2)
	}

	other := SubImage{Offset: 9, Size: 3} // "UVW"
	if Fingerprint(data, other) == fp1 {
		t.Fatalf("Fingerprint did not vary across different byte ranges")
	}
}
