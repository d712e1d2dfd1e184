package dds

import (
	"fmt"

	"github.com/woozymasta/texinspect/internal/texfmt"
)

// ResolveFormat determines the canonical pixel format for a parsed header,
// trying DX10/DXGI first, then the FourCC table, then the raw bitmask
// table, matching the original's precedence order exactly.
func ResolveFormat(h *Header, dx10 *HeaderDx10) (f texfmt.Format, srgb bool, err error) {
	if dx10 != nil {
		f, srgb, ok := texfmt.ResolveDXGI(dx10.DXGIFormat)
		if !ok {
			return 0, false, fmt.Errorf("unsupported DXGI format: %d", dx10.DXGIFormat)
		}
		return f, srgb, nil
	}

	pf := h.PixelFormat
	if pf.Flags&PFFourCC != 0 {
		if f, ok := texfmt.ResolveFourCC(pf.FourCC); ok {
			return f, false, nil
		}
		return 0, false, fmt.Errorf("unsupported FourCC: 0x%08x", pf.FourCC)
	}

	if f, ok := texfmt.ResolveBitmask(pf.RGBBitCount, pf.Flags, pf.RBitMask, pf.GBitMask, pf.BBitMask, pf.ABitMask); ok {
		return f, false, nil
	}

	return 0, false, fmt.Errorf("unsupported pixel format: flags=0x%x bitCount=%d", pf.Flags, pf.RGBBitCount)
}

// IsCubemap reports whether the header declares a cubemap (Caps2Cubemap
// set). It does not check the face bits; CubemapComplete does that.
func IsCubemap(h *Header) bool {
	return h.Caps2&Caps2Cubemap != 0
}

// CubemapComplete reports whether a declared cubemap sets all six face bits.
func CubemapComplete(h *Header) bool {
	return h.Caps2&Caps2CubemapAllFaces == Caps2CubemapAllFaces
}

// ArraySize returns the DX10 array size, or 1 when there is no DX10 header.
func ArraySize(dx10 *HeaderDx10) uint32 {
	if dx10 == nil {
		return 1
	}
	if dx10.ArraySize == 0 {
		return 1
	}
	return dx10.ArraySize
}

// MipCount returns the declared mip count, or 1 when the MIPMAP cap bit is
// unset. caps1 (DDSCAPS_MIPMAP), not header.flags (DDSD_MIPMAPCOUNT), is the
// field that gates this per the original dds-ktx parser.
func MipCount(h *Header) uint32 {
	if h.Caps&CapsMipMap == 0 || h.MipMapCount == 0 {
		return 1
	}
	return h.MipMapCount
}
