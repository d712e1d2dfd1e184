package dds

import (
	"bytes"
	"fmt"

	"github.com/woozymasta/texinspect/internal/texfmt"
)

// Info is everything the root dispatcher needs to build its public
// Descriptor from a DDS container, decoupled from the wire structs so
// internal/dds never needs to import the root package.
type Info struct {
	Format      texfmt.Format
	SRGB        bool
	HasAlpha    bool
	Width       uint32
	Height      uint32
	Depth       uint32
	MipCount    uint32
	ArraySize   uint32
	Cubemap     bool
	DataOffset  int
	PayloadSize int
}

// Parse reads a DDS container from data and returns its Info, or an error
// describing why the container is malformed or unsupported.
func Parse(data []byte) (Info, error) {
	r := bytes.NewReader(data)

	h, err := ReadHeader(r)
	if err != nil {
		return Info{}, fmt.Errorf("reading DDS header: %w", err)
	}

	dx10, err := ReadHeaderDx10(r, h)
	if err != nil {
		return Info{}, fmt.Errorf("reading DX10 header: %w", err)
	}

	if IsCubemap(h) && !CubemapComplete(h) {
		return Info{}, fmt.Errorf("incomplete cubemap: missing one or more face bits")
	}

	format, srgb, err := ResolveFormat(h, dx10)
	if err != nil {
		return Info{}, err
	}

	depth := h.Depth
	if depth == 0 {
		depth = 1
	}

	offset := 4 + HeaderSize
	if dx10 != nil {
		offset += 20
	}
	if len(data) < offset {
		return Info{}, fmt.Errorf("truncated DDS file: header claims %d bytes, got %d", offset, len(data))
	}

	return Info{
		Format:      format,
		SRGB:        srgb,
		HasAlpha:    h.PixelFormat.Flags&PFAlpha != 0,
		Width:       h.Width,
		Height:      h.Height,
		Depth:       depth,
		MipCount:    MipCount(h),
		ArraySize:   ArraySize(dx10),
		Cubemap:     IsCubemap(h),
		DataOffset:  offset,
		PayloadSize: len(data) - offset,
	}, nil
}
