package sheetfont

import "io"
import "io/fs"
import "bytes"
import "errors"

import "github.com/tinne26/sheetfont/internal"

// Utility method for parsing from a fs.FS, like when using embed.
func ParseFS(filesys fs.FS, filename string) (*Font, error) {
	file, err := filesys.Open(filename)
	if err != nil { return nil, err }
	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if stat.Size() > MaxFontDataSize {
		_ = file.Close()
		return nil, errors.New("file size exceeds limit")
	}

	font, err := Parse(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return font, file.Close()
}

// Parses a font previously written with [Font.Export]().
func Parse(reader io.Reader) (*Font, error) {
	var font Font
	var parser internal.ParsingBuffer
	parser.InitBuffers()
	parser.FileType = "sheetfont"

	// read signature first (this is not gzipped)
	_, err := io.ReadFull(reader, parser.TempBuff[0 : len(signature)])
	if err != nil { return nil, parser.NewError("failed to read file signature") }
	if !bytes.Equal(parser.TempBuff[0 : len(signature)], signature) {
		return nil, parser.NewError("invalid signature")
	}

	err = parser.InitGzipReader(reader)
	if err != nil { return nil, parser.NewError(err.Error()) }

	// --- header and metrics ---
	version, err := parser.ReadUint32()
	if err != nil { return nil, err }
	if version != FormatVersion { return nil, parser.NewError("unsupported format version") }
	metrics, err := parser.ReadSlice(3)
	if err != nil { return nil, err }
	font.Ascent, font.Descent, font.LineSpacing = metrics[0], metrics[1], metrics[2]

	// --- glyphs ---
	storageTag, err := parser.ReadUint8()
	if err != nil { return nil, err }
	switch storageTag {
	case internal.StorageTagDense:
		first, err := parser.ReadUint32()
		if err != nil { return nil, err }
		numGlyphs, err := readGlyphCount(&parser)
		if err != nil { return nil, err }
		glyphs := make([]Glyph, numGlyphs)
		for i := range glyphs {
			record, err := parser.ReadSlice(internal.GlyphRecordSize)
			if err != nil { return nil, err }
			glyphs[i] = decodeGlyph(record)
		}
		if first > 0x10FFFF { return nil, parser.NewError("invalid first codepoint") }
		font.Storage = NewDenseStorage(rune(first), glyphs)
	case internal.StorageTagSparse:
		numGlyphs, err := readGlyphCount(&parser)
		if err != nil { return nil, err }
		entries := make([]SparseEntry, numGlyphs)
		for i := range entries {
			record, err := parser.ReadSlice(4 + internal.GlyphRecordSize)
			if err != nil { return nil, err }
			codePoint := internal.DecodeUint32LE(record)
			if codePoint > 0x10FFFF { return nil, parser.NewError("invalid codepoint") }
			entries[i] = SparseEntry{ CodePoint: rune(codePoint), Glyph: decodeGlyph(record[4 : ]) }
		}
		font.Storage = NewSparseStorage(entries)
	default:
		return nil, parser.NewError("invalid glyph storage kind")
	}
	record, err := parser.ReadSlice(internal.GlyphRecordSize)
	if err != nil { return nil, err }
	font.Replacement = decodeGlyph(record)

	// --- kerning ---
	numPairs, err := parser.ReadUint32()
	if err != nil { return nil, err }
	if numPairs > (MaxKerningCodePoint + 1)*(MaxKerningCodePoint + 1) {
		return nil, parser.NewError("too many kerning pairs")
	}
	if numPairs > 0 {
		font.Kerning.Entries = make([]KerningEntry, numPairs)
		for i := range font.Kerning.Entries {
			record, err := parser.ReadSlice(internal.KerningRecordSize)
			if err != nil { return nil, err }
			font.Kerning.Entries[i] = KerningEntry{ Before: record[0], After: record[1], Adjust: int8(record[2]) }
		}
	}

	// --- bitmaps ---
	bitmapsLen, err := parser.ReadUint32()
	if err != nil { return nil, err }
	if bitmapsLen > MaxBitmapsSize { return nil, parser.NewError("bitmap arena exceeds maximum size") }
	bitmaps, err := parser.ReadSlice(int(bitmapsLen))
	if err != nil { return nil, err }
	font.Bitmaps = bytes.Clone(bitmaps)

	err = parser.EnsureEOF()
	if err != nil { return nil, err }

	err = font.Validate(FmtDefault)
	if err != nil { return nil, parser.NewError(err.Error()) }
	return &font, nil
}

func readGlyphCount(parser *internal.ParsingBuffer) (int, error) {
	numGlyphs, err := parser.ReadUint32()
	if err != nil { return 0, err }
	if numGlyphs > internal.MaxGlyphs {
		return 0, parser.NewError("too many glyphs")
	}
	return int(numGlyphs), nil
}
