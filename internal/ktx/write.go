package ktx

import (
	"encoding/binary"
	"io"
)

// writeDWORD writes a 32-bit little-endian value.
func writeDWORD(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// WriteIdentifier writes the 12-byte KTX magic to w. Test-only: builds
// ground-truth fixtures without depending on external .ktx files.
func WriteIdentifier(w io.Writer) error {
	_, err := w.Write(Identifier[:])
	return err
}

// WriteHeader writes the 13-field KTX header (not including the identifier
// or any metadata/payload that follows).
func WriteHeader(w io.Writer, h *Header) error {
	fields := []uint32{
		h.Endianness, h.GLType, h.GLTypeSize, h.GLFormat, h.GLInternalFormat,
		h.GLBaseInternalFormat, h.PixelWidth, h.PixelHeight, h.PixelDepth,
		h.NumberOfArrayElements, h.NumberOfFaces, h.NumberOfMipmapLevels,
		h.BytesOfKeyValueData,
	}
	for _, v := range fields {
		if err := writeDWORD(w, v); err != nil {
			return err
		}
	}
	return nil
}
