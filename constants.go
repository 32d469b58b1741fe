package sheetfont

import "github.com/tinne26/sheetfont/internal"

const MaxFontDataSize = internal.MaxFontDataSize // checked after uncompressing, without signature
const FormatVersion = internal.FormatVersion
const MaxBitmapsSize = internal.MaxBitmapsSize

// Highest codepoint that can take part in a kerning pair.
const MaxKerningCodePoint = 0xFF
