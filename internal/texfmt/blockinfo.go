package texfmt

// Encoding names how channel values are interpreted.
type Encoding uint8

const (
	EncodingUnorm Encoding = iota
	EncodingSnorm
	EncodingFloat
	EncodingInt
	EncodingUint
	EncodingNone
)

// BlockInfo describes the storage layout of one canonical format.
// For uncompressed formats BlockWidth = BlockHeight = 1 and
// BlockSize = Bpp/8; every uncompressed row below follows this.
type BlockInfo struct {
	Bpp         uint8
	BlockWidth  uint8
	BlockHeight uint8
	BlockSize   uint8
	MinBlocksX  uint8
	MinBlocksY  uint8
	DepthBits   uint8 // reserved, unused by any operation
	StencilBits uint8 // reserved, unused by any operation
	RBits       uint8
	GBits       uint8
	BBits       uint8
	ABits       uint8
	Encoding    Encoding
}

// blockInfo is indexed positionally by Format.
var blockInfo = [...]BlockInfo{
	BC1:     {Bpp: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	BC2:     {Bpp: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	BC3:     {Bpp: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	BC4:     {Bpp: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	BC5:     {Bpp: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	BC6H:    {Bpp: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingFloat},
	BC7:     {Bpp: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ETC1:    {Bpp: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ETC2:    {Bpp: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ETC2A:   {Bpp: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ETC2A1:  {Bpp: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	PTC12:   {Bpp: 2, BlockWidth: 8, BlockHeight: 4, BlockSize: 8, MinBlocksX: 2, MinBlocksY: 2, Encoding: EncodingUnorm},
	PTC14:   {Bpp: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlocksX: 2, MinBlocksY: 2, Encoding: EncodingUnorm},
	PTC12A:  {Bpp: 2, BlockWidth: 8, BlockHeight: 4, BlockSize: 8, MinBlocksX: 2, MinBlocksY: 2, Encoding: EncodingUnorm},
	PTC14A:  {Bpp: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlocksX: 2, MinBlocksY: 2, Encoding: EncodingUnorm},
	PTC22:   {Bpp: 2, BlockWidth: 8, BlockHeight: 4, BlockSize: 8, MinBlocksX: 2, MinBlocksY: 2, Encoding: EncodingUnorm},
	PTC24:   {Bpp: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlocksX: 2, MinBlocksY: 2, Encoding: EncodingUnorm},
	ATC:     {Bpp: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ATCE:    {Bpp: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ATCI:    {Bpp: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ASTC4x4: {Bpp: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ASTC5x5: {Bpp: 6, BlockWidth: 5, BlockHeight: 5, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ASTC6x6: {Bpp: 4, BlockWidth: 6, BlockHeight: 6, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ASTC8x5: {Bpp: 4, BlockWidth: 8, BlockHeight: 5, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ASTC8x6: {Bpp: 3, BlockWidth: 8, BlockHeight: 6, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},
	ASTC10x5: {Bpp: 3, BlockWidth: 10, BlockHeight: 5, BlockSize: 16, MinBlocksX: 1, MinBlocksY: 1, Encoding: EncodingUnorm},

	FormatCompressed: {Encoding: EncodingNone},

	A8:        {Bpp: 8, BlockWidth: 1, BlockHeight: 1, BlockSize: 1, MinBlocksX: 1, MinBlocksY: 1, ABits: 8, Encoding: EncodingUnorm},
	R8:        {Bpp: 8, BlockWidth: 1, BlockHeight: 1, BlockSize: 1, MinBlocksX: 1, MinBlocksY: 1, RBits: 8, Encoding: EncodingUnorm},
	RGBA8:     {Bpp: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlocksX: 1, MinBlocksY: 1, RBits: 8, GBits: 8, BBits: 8, ABits: 8, Encoding: EncodingUnorm},
	RGBA8S:    {Bpp: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlocksX: 1, MinBlocksY: 1, RBits: 8, GBits: 8, BBits: 8, ABits: 8, Encoding: EncodingSnorm},
	RG16:      {Bpp: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlocksX: 1, MinBlocksY: 1, RBits: 16, GBits: 16, Encoding: EncodingUnorm},
	RGB8:      {Bpp: 24, BlockWidth: 1, BlockHeight: 1, BlockSize: 3, MinBlocksX: 1, MinBlocksY: 1, RBits: 8, GBits: 8, BBits: 8, Encoding: EncodingUnorm},
	R16:       {Bpp: 16, BlockWidth: 1, BlockHeight: 1, BlockSize: 2, MinBlocksX: 1, MinBlocksY: 1, RBits: 16, Encoding: EncodingUnorm},
	R32F:      {Bpp: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlocksX: 1, MinBlocksY: 1, RBits: 32, Encoding: EncodingFloat},
	R16F:      {Bpp: 16, BlockWidth: 1, BlockHeight: 1, BlockSize: 2, MinBlocksX: 1, MinBlocksY: 1, RBits: 16, Encoding: EncodingFloat},
	RG16F:     {Bpp: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlocksX: 1, MinBlocksY: 1, RBits: 16, GBits: 16, Encoding: EncodingFloat},
	RG16S:     {Bpp: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlocksX: 1, MinBlocksY: 1, RBits: 16, GBits: 16, Encoding: EncodingSnorm},
	RGBA16F:   {Bpp: 64, BlockWidth: 1, BlockHeight: 1, BlockSize: 8, MinBlocksX: 1, MinBlocksY: 1, RBits: 16, GBits: 16, BBits: 16, ABits: 16, Encoding: EncodingFloat},
	RGBA16:    {Bpp: 64, BlockWidth: 1, BlockHeight: 1, BlockSize: 8, MinBlocksX: 1, MinBlocksY: 1, RBits: 16, GBits: 16, BBits: 16, ABits: 16, Encoding: EncodingUnorm},
	BGRA8:     {Bpp: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlocksX: 1, MinBlocksY: 1, RBits: 8, GBits: 8, BBits: 8, ABits: 8, Encoding: EncodingUnorm},
	RGB10A2:   {Bpp: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlocksX: 1, MinBlocksY: 1, RBits: 10, GBits: 10, BBits: 10, ABits: 2, Encoding: EncodingUnorm},
	RG11B10F:  {Bpp: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlocksX: 1, MinBlocksY: 1, RBits: 11, GBits: 11, BBits: 10, Encoding: EncodingUnorm},
	RG8:       {Bpp: 16, BlockWidth: 1, BlockHeight: 1, BlockSize: 2, MinBlocksX: 1, MinBlocksY: 1, RBits: 8, GBits: 8, Encoding: EncodingUnorm},
	RG8S:      {Bpp: 16, BlockWidth: 1, BlockHeight: 1, BlockSize: 2, MinBlocksX: 1, MinBlocksY: 1, RBits: 8, GBits: 8, Encoding: EncodingSnorm},
}

func init() {
	if len(blockInfo) != int(FormatCount) {
		panic("texfmt: blockInfo table length does not match Format enum length")
	}
	if len(formatInfo) != int(FormatCount) {
		panic("texfmt: formatInfo table length does not match Format enum length")
	}
}

// BlockInfoFor returns the block-info row for f. f must be < FormatCount.
func BlockInfoFor(f Format) BlockInfo {
	return blockInfo[f]
}
