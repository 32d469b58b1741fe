package internal

const MaxFontDataSize = (4 << 20) // checked after uncompressing, without signature
const FormatVersion = 0x0000_0001

// Fixed-width field limits of the glyph table.
const MaxBitmapsSize = 1 << 16 // ImageOffset is an uint16
const MaxGlyphs = 1 << 16
const MaxCellWidth = 64 // one uint64 row per glyph cell

// Storage kind tags used by the binary format.
const StorageTagDense  = 0b0000_0001
const StorageTagSparse = 0b0000_0010

// Size of a serialized glyph: RowBytes, ImageOffset (2), ImageHeight,
// OriginX, OriginY, Advance.
const GlyphRecordSize = 7
const KerningRecordSize = 3
