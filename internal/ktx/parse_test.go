package ktx

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/woozymasta/texinspect/internal/texfmt"
)

func buildKTX(h *Header, keyValueData, payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteIdentifier(&buf); err != nil {
		return nil, err
	}
	if err := WriteHeader(&buf, h); err != nil {
		return nil, err
	}
	buf.Write(keyValueData)
	buf.Write(payload)
	return buf.Bytes(), nil
}

func appendImageSize(buf []byte, size uint32, data []byte) []byte {
	var sizeBytes [4]byte
	binary.LittleEndian.PutUint32(sizeBytes[:], size)
	buf = append(buf, sizeBytes[:]...)
	buf = append(buf, data...)
	return buf
}

func TestParseDXT5FaceCountOne(t *testing.T) {
	t.Parallel()

	h := &Header{
		Endianness:       EndiannessBigEndian,
		GLInternalFormat: 0x83F3, // COMPRESSED_RGBA_S3TC_DXT5_EXT
		PixelWidth:       4,
		PixelHeight:      4,
		NumberOfFaces:    1,
		NumberOfMipmapLevels: 1,
	}

	block := make([]byte, 16) // one BC3 block
	var payload []byte
	payload = appendImageSize(payload, 16, block)

	data, err := buildKTX(h, nil, payload)
	if err != nil {
		t.Fatalf("buildKTX: %v", err)
	}

	info, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if info.Format != texfmt.BC3 {
		t.Fatalf("Format = %v, want BC3", info.Format)
	}
	if info.FaceCount != 1 || info.Cubemap {
		t.Fatalf("FaceCount/Cubemap = %d/%v, want 1/false", info.FaceCount, info.Cubemap)
	}
	if info.PayloadSize != len(payload) {
		t.Fatalf("PayloadSize = %d, want %d", info.PayloadSize, len(payload))
	}
}

func TestParseRejectsBadFaceCount(t *testing.T) {
	t.Parallel()

	h := &Header{
		Endianness:       EndiannessBigEndian,
		GLInternalFormat: 0x83F3,
		PixelWidth:       4,
		PixelHeight:      4,
		NumberOfFaces:    3, // invalid: must be 1 or 6
		NumberOfMipmapLevels: 1,
	}
	data, err := buildKTX(h, nil, nil)
	if err != nil {
		t.Fatalf("buildKTX: %v", err)
	}

	if _, err := Parse(data); err == nil {
		t.Fatalf("Parse succeeded with numberOfFaces=3, want error")
	}
}

func TestParseRejectsLittleEndianMarker(t *testing.T) {
	t.Parallel()

	h := &Header{
		Endianness:       EndiannessLittleEndian,
		GLInternalFormat: 0x83F3,
		PixelWidth:       4,
		PixelHeight:      4,
		NumberOfFaces:    1,
		NumberOfMipmapLevels: 1,
	}
	data, err := buildKTX(h, nil, nil)
	if err != nil {
		t.Fatalf("buildKTX: %v", err)
	}

	if _, err := Parse(data); err == nil {
		t.Fatalf("Parse succeeded with a little-endian marker, want error")
	}
}

func TestParseKeyValueDataShiftsOffset(t *testing.T) {
	t.Parallel()

	kv := make([]byte, 24)
	h := &Header{
		Endianness:       EndiannessBigEndian,
		GLInternalFormat: 0x8058, // RGBA8
		PixelWidth:       2,
		PixelHeight:      2,
		NumberOfFaces:    1,
		NumberOfMipmapLevels: 1,
		BytesOfKeyValueData: uint32(len(kv)),
	}
	block := make([]byte, 16) // 2x2 RGBA8 = 16 bytes
	var payload []byte
	payload = appendImageSize(payload, 16, block)

	data, err := buildKTX(h, kv, payload)
	if err != nil {
		t.Fatalf("buildKTX: %v", err)
	}

	info, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	wantOffset := IdentifierSize + HeaderSize + len(kv)
	if info.DataOffset != wantOffset {
		t.Fatalf("DataOffset = %d, want %d", info.DataOffset, wantOffset)
	}
}

func TestParseUnrecognizedMagicLikeHelloWorld(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("HELLO WORLD, not a texture")); err == nil {
		t.Fatalf("Parse succeeded on non-KTX data, want error")
	}
}
