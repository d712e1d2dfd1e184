package texinspect

import (
	"bytes"
	"fmt"

	"github.com/woozymasta/texinspect/internal/dds"
	"github.com/woozymasta/texinspect/internal/ktx"
	"github.com/woozymasta/texinspect/internal/texfmt"
)

// Parse inspects data's magic bytes and dispatches to the DDS or KTX
// parser, returning a container-agnostic Descriptor. It never reads or
// validates pixel payload contents.
func Parse(data []byte) (Descriptor, error) {
	if len(data) < 4 {
		return Descriptor{}, fmt.Errorf("invalid texture file: too short to contain a magic")
	}

	switch {
	case bytes.HasPrefix(data, []byte(dds.Magic)):
		return parseDDS(data)
	case data[0] == 0xAB && data[1] == 'K' && data[2] == 'T' && data[3] == 'X':
		return parseKTX(data)
	default:
		return Descriptor{}, fmt.Errorf("unknown texture format: unrecognized magic %q", data[:4])
	}
}

func parseDDS(data []byte) (Descriptor, error) {
	info, err := dds.Parse(data)
	if err != nil {
		return Descriptor{}, fmt.Errorf("parsing DDS: %w", err)
	}

	var flags Flags
	flags |= FlagDDS
	if info.Cubemap {
		flags |= FlagCubemap
	}
	if info.SRGB {
		flags |= FlagSRGB
	}
	if info.HasAlpha {
		flags |= FlagAlpha
	}

	faceCount := uint32(1)
	if info.Cubemap {
		faceCount = 6
	}

	return Descriptor{
		Format:      info.Format,
		Flags:       flags,
		Width:       info.Width,
		Height:      info.Height,
		Depth:       info.Depth,
		MipCount:    info.MipCount,
		ArraySize:   info.ArraySize,
		FaceCount:   faceCount,
		Bpp:         texfmt.BlockInfoFor(info.Format).Bpp,
		DataOffset:  info.DataOffset,
		PayloadSize: info.PayloadSize,
	}, nil
}

func parseKTX(data []byte) (Descriptor, error) {
	info, err := ktx.Parse(data)
	if err != nil {
		return Descriptor{}, fmt.Errorf("parsing KTX: %w", err)
	}

	var flags Flags
	flags |= FlagKTX
	if info.Cubemap {
		flags |= FlagCubemap
	}

	return Descriptor{
		Format:         info.Format,
		Flags:          flags | alphaFlag(info.Format),
		Width:          info.Width,
		Height:         info.Height,
		Depth:          info.Depth,
		MipCount:       info.MipCount,
		ArraySize:      info.ArraySize,
		FaceCount:      info.FaceCount,
		Bpp:            texfmt.BlockInfoFor(info.Format).Bpp,
		DataOffset:     info.DataOffset,
		PayloadSize:    info.PayloadSize,
		MetadataOffset: info.MetadataOffset,
		MetadataSize:   info.MetadataSize,
	}, nil
}

func alphaFlag(f Format) Flags {
	if FormatHasAlpha(f) {
		return FlagAlpha
	}
	return 0
}
