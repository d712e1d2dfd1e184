package ktx

import (
	"encoding/binary"
	"fmt"
	"io"
)

// readDWORD reads a 32-bit little-endian value, mirroring internal/dds's
// reader so the two container readers stay textually parallel.
func readDWORD(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadIdentifier reads and validates the 12-byte KTX magic.
func ReadIdentifier(r io.Reader) error {
	var id [IdentifierSize]byte
	if _, err := io.ReadFull(r, id[:]); err != nil {
		return fmt.Errorf("reading identifier: %w", err)
	}
	if id != Identifier {
		return fmt.Errorf("invalid KTX identifier")
	}
	return nil
}

// ReadHeader reads the 13-field KTX header that follows the identifier.
// Only big-endian-marked files are accepted; a little-endian marker means
// every subsequent field would need byte-swapping, which this reader does
// not implement (no fixture in the supported corpus needs it).
func ReadHeader(r io.Reader) (*Header, error) {
	endianness, err := readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading endianness: %w", err)
	}
	if endianness != EndiannessBigEndian {
		return nil, fmt.Errorf("unsupported endianness marker: 0x%08x", endianness)
	}

	var h Header
	h.Endianness = endianness

	fields := []*uint32{
		&h.GLType, &h.GLTypeSize, &h.GLFormat, &h.GLInternalFormat,
		&h.GLBaseInternalFormat, &h.PixelWidth, &h.PixelHeight, &h.PixelDepth,
		&h.NumberOfArrayElements, &h.NumberOfFaces, &h.NumberOfMipmapLevels,
		&h.BytesOfKeyValueData,
	}
	names := []string{
		"glType", "glTypeSize", "glFormat", "glInternalFormat",
		"glBaseInternalFormat", "pixelWidth", "pixelHeight", "pixelDepth",
		"numberOfArrayElements", "numberOfFaces", "numberOfMipmapLevels",
		"bytesOfKeyValueData",
	}
	for i, dst := range fields {
		v, err := readDWORD(r)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", names[i], err)
		}
		*dst = v
	}

	return &h, nil
}
