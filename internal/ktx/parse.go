package ktx

import (
	"bytes"
	"fmt"

	"github.com/woozymasta/texinspect/internal/texfmt"
)

// Info mirrors internal/dds.Info: everything the root dispatcher needs to
// build its public Descriptor, decoupled from the wire structs.
type Info struct {
	Format         texfmt.Format
	Width          uint32
	Height         uint32
	Depth          uint32
	MipCount       uint32
	ArraySize      uint32
	FaceCount      uint32
	Cubemap        bool
	DataOffset     int
	PayloadSize    int
	MetadataOffset int
	MetadataSize   int
}

// Parse reads a KTX v1 container from data and returns its Info.
//
// The original C parser returns false even along its success path (a
// leftover from an earlier return-convention change); that inversion is
// not reproduced here, since an error-valued Go API has no use for a
// success-means-failure quirk.
func Parse(data []byte) (Info, error) {
	r := bytes.NewReader(data)

	if err := ReadIdentifier(r); err != nil {
		return Info{}, err
	}

	h, err := ReadHeader(r)
	if err != nil {
		return Info{}, fmt.Errorf("reading KTX header: %w", err)
	}

	if h.NumberOfFaces != 1 && h.NumberOfFaces != 6 {
		return Info{}, fmt.Errorf("incomplete cubemap: numberOfFaces must be 1 or 6, got %d", h.NumberOfFaces)
	}

	format, ok := texfmt.ResolveKTXFormat(h.GLInternalFormat)
	if !ok {
		return Info{}, fmt.Errorf("unsupported GL internal format: 0x%x", h.GLInternalFormat)
	}

	arraySize := h.NumberOfArrayElements
	if arraySize == 0 {
		arraySize = 1
	}
	mipCount := h.NumberOfMipmapLevels
	if mipCount == 0 {
		mipCount = 1
	}
	depth := h.PixelDepth
	if depth == 0 {
		depth = 1
	}

	metadataOffset := IdentifierSize + HeaderSize
	metadataSize := int(h.BytesOfKeyValueData)
	offset := metadataOffset + metadataSize
	if len(data) < offset {
		return Info{}, fmt.Errorf("truncated KTX file: metadata claims %d bytes, got %d", offset, len(data))
	}

	return Info{
		Format:         format,
		Width:          h.PixelWidth,
		Height:         h.PixelHeight,
		Depth:          depth,
		MipCount:       mipCount,
		ArraySize:      arraySize,
		FaceCount:      h.NumberOfFaces,
		Cubemap:        h.NumberOfFaces == 6,
		DataOffset:     offset,
		PayloadSize:    len(data) - offset,
		MetadataOffset: metadataOffset,
		MetadataSize:   metadataSize,
	}, nil
}
