// Package ktx provides functions for working with KTX v1 (Khronos Texture) files.
package ktx

const (
	// IdentifierSize is the 12-byte magic identifier at the start of every
	// KTX file. Only the first four bytes are used for container dispatch;
	// the full identifier (including version bytes) is validated here.
	IdentifierSize = 12

	// HeaderSize is the fixed-layout header that follows the identifier:
	// 13 little-endian uint32 fields, 4 bytes each.
	HeaderSize = 13 * 4

	EndiannessBigEndian    = 0x01020304
	EndiannessLittleEndian = 0x04030201
)

// Identifier is the canonical 12-byte KTX v1 magic.
var Identifier = [IdentifierSize]byte{0xAB, 'K', 'T', 'X', ' ', '1', '1', 0xBB, '\r', '\n', 0x1A, '\n'}

// Header represents the KTX v1 header fields that follow the identifier.
type Header struct {
	Endianness          uint32
	GLType              uint32
	GLTypeSize          uint32
	GLFormat            uint32
	GLInternalFormat    uint32
	GLBaseInternalFormat uint32
	PixelWidth          uint32
	PixelHeight         uint32
	PixelDepth          uint32
	NumberOfArrayElements uint32
	NumberOfFaces       uint32
	NumberOfMipmapLevels uint32
	BytesOfKeyValueData uint32
}
