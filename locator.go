package texinspect

import (
	"fmt"

	"github.com/woozymasta/texinspect/internal/texfmt"
	"github.com/woozymasta/texinspect/internal/texreader"
)

// GetSub locates the byte range and geometry of one (array, sliceOrFace,
// mip) sub-image within data, given d describes data (as returned by
// Parse).
//
// sliceOrFace indexes the cube face (0-5) for a cubemap, the depth slice
// for a volume texture, or must be 0 for a plain 2D/array texture — a
// container is never both a cubemap and a volume texture, so the same
// parameter slot serves both roles unambiguously.
//
// Out-of-range indices are a caller programming error, not a data
// error: locateSub panics on them and GetSub recovers the panic and
// reports it as an error, so a misused library call is observable
// without taking down a long-running host process.
func GetSub(d Descriptor, data []byte, array, sliceOrFace, mip int) (sub SubImage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("getsub: %v", r)
		}
	}()
	return locateSub(d, data, array, sliceOrFace, mip), nil
}

func locateSub(d Descriptor, data []byte, array, sliceOrFace, mip int) SubImage {
	if array < 0 || array >= int(d.ArraySize) {
		panic(fmt.Sprintf("array index %d out of range [0,%d)", array, d.ArraySize))
	}
	if mip < 0 || mip >= int(d.MipCount) {
		panic(fmt.Sprintf("mip index %d out of range [0,%d)", mip, d.MipCount))
	}
	// A cubemap's sliceOrFace selects one of its 6 faces; a volume texture's
	// selects one of its depth slices. A container is never both, so the
	// bound depends on which one d is.
	cubemap := d.Flags.Has(FlagCubemap)
	bound := int(d.Depth)
	if cubemap {
		bound = int(d.FaceCount)
	}
	if sliceOrFace < 0 || sliceOrFace >= bound {
		panic(fmt.Sprintf("face/slice index %d out of range [0,%d)", sliceOrFace, bound))
	}

	var sub SubImage
	if d.Flags.Has(FlagDDS) {
		sub = locateDDS(d, array, sliceOrFace, mip)
	} else {
		sub = locateKTX(d, data, array, sliceOrFace, mip)
	}

	if sub.Offset < d.DataOffset || sub.Offset+sub.Size > d.DataOffset+d.PayloadSize {
		panic(fmt.Sprintf("located sub-image [%d,%d) falls outside payload region [%d,%d)",
			sub.Offset, sub.Offset+sub.Size, d.DataOffset, d.DataOffset+d.PayloadSize))
	}
	return sub
}

// locateDDS walks layer -> face -> mip -> slice. Each mip's block-aligned
// dimensions are rounded up to whole blocks (clamped to the format's
// minimum block count) and halved going into the next mip, down to a
// floor of 1 texel / 1 block; depth halves the same way down to a floor
// of 1 slice.
func locateDDS(d Descriptor, array, sliceOrFace, mip int) SubImage {
	bi := texfmt.BlockInfoFor(d.Format)

	cubemap := d.Flags.Has(FlagCubemap)
	requestedFace, requestedSlice := 0, 0
	if cubemap {
		requestedFace = sliceOrFace
	} else {
		requestedSlice = sliceOrFace
	}

	offset := d.DataOffset
	for layer := 0; layer <= array; layer++ {
		faceCount := int(d.FaceCount)
		for f := 0; f < faceCount; f++ {
			w, h, depth := d.Width, d.Height, d.Depth
			for m := 0; m < int(d.MipCount); m++ {
				blocksX := blockCount(w, uint32(bi.BlockWidth))
				if blocksX < uint32(bi.MinBlocksX) {
					blocksX = uint32(bi.MinBlocksX)
				}
				blocksY := blockCount(h, uint32(bi.BlockHeight))
				if blocksY < uint32(bi.MinBlocksY) {
					blocksY = uint32(bi.MinBlocksY)
				}
				sliceSize := int(blocksX) * int(blocksY) * int(bi.BlockSize)

				numSlices := int(depth)
				if cubemap {
					numSlices = 1
				}
				for s := 0; s < numSlices; s++ {
					if layer == array && f == requestedFace && m == mip && s == requestedSlice {
						rowPitch := int(w) * int(bi.Bpp) / 8
						return SubImage{Offset: offset, Size: sliceSize, Width: w, Height: h, Depth: 1, RowPitch: rowPitch}
					}
					offset += sliceSize
				}

				w = halve(w)
				h = halve(h)
				depth = halve(depth)
			}
		}
	}
	panic("unreachable: locateDDS walk did not find target sub-image")
}

// locateKTX walks mip -> layer -> face -> slice, reading the 4-byte
// imageSize prefix before each mip's data, independently computing the
// per-item byte size from block-info rather than trusting the prefix as
// a combined stride, and inserting 4-byte alignment padding after each
// face-or-slice item (whichever one this container varies) and after
// each mip, per the KTX v1 layout.
func locateKTX(d Descriptor, data []byte, array, sliceOrFace, mip int) SubImage {
	bi := texfmt.BlockInfoFor(d.Format)

	cubemap := d.Flags.Has(FlagCubemap)
	requestedFace, requestedSlice := 0, 0
	if cubemap {
		requestedFace = sliceOrFace
	} else {
		requestedSlice = sliceOrFace
	}

	r := texreader.New(data)
	offset := d.DataOffset
	w, h, depth := d.Width, d.Height, d.Depth
	numFaces := int(d.FaceCount)

	for m := 0; m <= mip; m++ {
		r.SeekRelative(offset - r.Offset())
		prefixSize, ok := r.ReadUint32LE()
		if !ok {
			panic("truncated KTX payload: missing imageSize prefix")
		}
		offset = r.Offset()

		blocksX := blockCount(w, uint32(bi.BlockWidth))
		if blocksX < uint32(bi.MinBlocksX) {
			blocksX = uint32(bi.MinBlocksX)
		}
		blocksY := blockCount(h, uint32(bi.BlockHeight))
		if blocksY < uint32(bi.MinBlocksY) {
			blocksY = uint32(bi.MinBlocksY)
		}
		mipByteSize := int(blocksX) * int(blocksY) * int(bi.BlockSize)

		numSlices := int(depth)
		if cubemap {
			numSlices = 1
		}
		if wantSize := mipByteSize * numFaces * numSlices; int(prefixSize) != wantSize {
			panic(fmt.Sprintf("KTX imageSize mismatch at mip %d: header says %d, computed %d from block info", m, prefixSize, wantSize))
		}

		padEachItem := numFaces > 1 || numSlices > 1

		for layer := 0; layer < int(d.ArraySize); layer++ {
			for f := 0; f < numFaces; f++ {
				for s := 0; s < numSlices; s++ {
					if m == mip && layer == array && f == requestedFace && s == requestedSlice {
						rowPitch := int(w) * int(bi.Bpp) / 8
						return SubImage{Offset: offset, Size: mipByteSize, Width: w, Height: h, Depth: 1, RowPitch: rowPitch}
					}
					offset += mipByteSize
					if padEachItem {
						offset = align4(offset)
					}
				}
			}
		}

		offset = align4(offset)
		w = halve(w)
		h = halve(h)
		depth = halve(depth)
	}
	panic("unreachable: locateKTX walk did not find target sub-image")
}

func blockCount(dim, block uint32) uint32 {
	if block == 0 {
		block = 1
	}
	return (dim + block - 1) / block
}

func halve(v uint32) uint32 {
	if v <= 1 {
		return 1
	}
	return v / 2
}

func align4(offset int) int {
	return (offset + 3) &^ 3
}
