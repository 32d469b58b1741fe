package sheetfont

import "io"
import "errors"

import "github.com/klauspost/compress/gzip"

import "github.com/tinne26/sheetfont/internal"

var signature = []byte{'s', 'h', 'f', 'n', 't', '1'}

// Writes the font in binary form. The data can be loaded back with
// [Parse](). The font is validated before writing.
func (self *Font) Export(writer io.Writer) error {
	err := self.Validate(FmtDefault)
	if err != nil { return err }
	if self.Storage.Len() > internal.MaxGlyphs {
		return errors.New("font has too many glyphs")
	}

	// signature is not compressed
	_, err = writer.Write(signature)
	if err != nil { return err }

	data := self.appendBinary(make([]byte, 0, 1024 + len(self.Bitmaps)))
	gzipWriter, err := gzip.NewWriterLevel(writer, gzip.BestCompression)
	if err != nil { return err }
	_, err = gzipWriter.Write(data)
	if err != nil { return err }
	return gzipWriter.Close()
}

func (self *Font) appendBinary(data []byte) []byte {
	// header and metrics
	data = internal.AppendUint32LE(data, FormatVersion)
	data = append(data, self.Ascent, self.Descent, self.LineSpacing)

	// glyphs
	switch self.Storage.Kind() {
	case StorageDense:
		data = append(data, internal.StorageTagDense)
		data = internal.AppendUint32LE(data, uint32(self.Storage.First()))
		data = internal.AppendUint32LE(data, uint32(self.Storage.Len()))
		for _, glyph := range self.Storage.glyphs {
			data = appendGlyph(data, glyph)
		}
	case StorageSparse:
		data = append(data, internal.StorageTagSparse)
		data = internal.AppendUint32LE(data, uint32(self.Storage.Len()))
		for _, entry := range self.Storage.entries {
			data = internal.AppendUint32LE(data, uint32(entry.CodePoint))
			data = appendGlyph(data, entry.Glyph)
		}
	default:
		panic(internal.BrokenCode) // validation would have failed
	}
	data = appendGlyph(data, self.Replacement)

	// kerning
	data = internal.AppendUint32LE(data, uint32(len(self.Kerning.Entries)))
	for _, entry := range self.Kerning.Entries {
		data = append(data, entry.Before, entry.After, uint8(entry.Adjust))
	}

	// bitmaps
	data = internal.AppendUint32LE(data, uint32(len(self.Bitmaps)))
	return append(data, self.Bitmaps...)
}

func appendGlyph(data []byte, glyph Glyph) []byte {
	data = append(data, glyph.RowBytes)
	data = internal.AppendUint16LE(data, glyph.ImageOffset)
	return append(data, glyph.ImageHeight, glyph.OriginX, glyph.OriginY, glyph.Advance)
}

func decodeGlyph(record []byte) Glyph {
	if len(record) < internal.GlyphRecordSize { panic(len(record)) }
	return Glyph{
		RowBytes: record[0],
		ImageOffset: internal.DecodeUint16LE(record[1 : 3]),
		ImageHeight: record[3],
		OriginX: record[4],
		OriginY: record[5],
		Advance: record[6],
	}
}
