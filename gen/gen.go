// Package gen writes sheet fonts as Go source code, so they can be
// compiled into programs without any parsing at startup.
package gen

import "bytes"
import "errors"
import "fmt"
import "go/format"
import "go/token"
import "strconv"
import "strings"
import "text/template"
import "unicode"
import "unicode/utf8"

import "github.com/tinne26/sheetfont"

var ErrInvalidName = errors.New("invalid Go identifier")

type Options struct {
	// Package name for the generated file. Defaults to "fonts".
	Package string

	// Name of the *sheetfont.Font variable. Defaults to "Font". Helper
	// tables are unexported variables using the same name as a prefix.
	// "sheetfont" is rejected, as it would shadow the import.
	VarName string
}

type glyphData struct {
	CodePoint rune
	Label string
	Preview []string
	Glyph sheetfont.Glyph
}

type templateData struct {
	Package string
	VarName string
	Prefix string
	Font *sheetfont.Font
	Dense bool
	First rune
	Glyphs []glyphData
	BitmapRows []string
}

var sourceTemplate = template.Must(template.New("font").Funcs(template.FuncMap{
	"glyph": glyphLiteral,
}).Parse(`// Code generated by sheetfont. DO NOT EDIT.

package {{.Package}}

import "github.com/tinne26/sheetfont"

var {{.VarName}} = &sheetfont.Font{
	Ascent: {{.Font.Ascent}},
	Descent: {{.Font.Descent}},
	LineSpacing: {{.Font.LineSpacing}},
{{- if .Dense}}
	Storage: sheetfont.NewDenseStorage({{printf "0x%02X" .First}}, {{.Prefix}}Glyphs),
{{- else}}
	Storage: sheetfont.NewSparseStorage({{.Prefix}}Glyphs),
{{- end}}
	Replacement: {{glyph .Font.Replacement}},
	Bitmaps: {{.Prefix}}Bitmaps,
	Kerning: sheetfont.KerningTable{Entries: {{.Prefix}}Kerning},
}

{{if .Dense}}var {{.Prefix}}Glyphs = []sheetfont.Glyph{
{{- else}}var {{.Prefix}}Glyphs = []sheetfont.SparseEntry{
{{- end}}
{{- range .Glyphs}}
	// {{.Label}}
{{- range .Preview}}
	// |{{.}}|
{{- end}}
{{- if $.Dense}}
	{{glyph .Glyph}},
{{- else}}
	{CodePoint: {{printf "0x%04X" .CodePoint}}, Glyph: {{glyph .Glyph}}},
{{- end}}
{{- end}}
}

var {{.Prefix}}Kerning = []sheetfont.KerningEntry{
{{- range .Font.Kerning.Entries}}
	{Before: {{printf "0x%02X" .Before}}, After: {{printf "0x%02X" .After}}, Adjust: {{.Adjust}}},
{{- end}}
}

var {{.Prefix}}Bitmaps = []byte{
{{- range .BitmapRows}}
	{{.}}
{{- end}}
}
`))

// Returns gofmt formatted Go source code declaring the given font. Each
// glyph comes with a commented preview of its image.
func GoSource(font *sheetfont.Font, options Options) ([]byte, error) {
	err := font.Validate(sheetfont.FmtDefault)
	if err != nil { return nil, err }
	if options.Package == "" { options.Package = "fonts" }
	if options.VarName == "" { options.VarName = "Font" }
	if !token.IsIdentifier(options.Package) {
		return nil, fmt.Errorf("%w: package %q", ErrInvalidName, options.Package)
	}
	if !token.IsIdentifier(options.VarName) || options.VarName == "_" || options.VarName == "sheetfont" {
		return nil, fmt.Errorf("%w: variable %q", ErrInvalidName, options.VarName)
	}

	data := templateData{
		Package: options.Package,
		VarName: options.VarName,
		Prefix: tablePrefix(options.VarName),
		Font: font,
		Dense: font.Storage.Kind() == sheetfont.StorageDense,
		First: font.Storage.First(),
		Glyphs: make([]glyphData, 0, font.Storage.Len()),
		BitmapRows: bitmapRows(font.Bitmaps),
	}
	font.Storage.Each(func(codePoint rune, glyph sheetfont.Glyph) {
		data.Glyphs = append(data.Glyphs, glyphData{
			CodePoint: codePoint,
			Label: fmt.Sprintf("U+%04X %s", codePoint, strconv.QuoteRune(codePoint)),
			Preview: Preview(font, glyph),
			Glyph: glyph,
		})
	})

	var buffer bytes.Buffer
	err = sourceTemplate.Execute(&buffer, data)
	if err != nil { return nil, err }
	return format.Source(buffer.Bytes())
}

// Helper tables are named after the font variable with its first
// letter lowercased.
func tablePrefix(varName string) string {
	first, size := utf8.DecodeRuneInString(varName)
	return string(unicode.ToLower(first)) + varName[size : ]
}

func glyphLiteral(glyph sheetfont.Glyph) string {
	return fmt.Sprintf(
		"sheetfont.Glyph{RowBytes: %d, ImageOffset: %d, ImageHeight: %d, OriginX: %d, OriginY: %d, Advance: %d}",
		glyph.RowBytes, glyph.ImageOffset, glyph.ImageHeight, glyph.OriginX, glyph.OriginY, glyph.Advance,
	)
}

func bitmapRows(bitmaps []byte) []string {
	const perRow = 12
	rows := make([]string, 0, (len(bitmaps) + perRow - 1)/perRow)
	var builder strings.Builder
	for start := 0; start < len(bitmaps); start += perRow {
		builder.Reset()
		for i, b := range bitmaps[start : min(start + perRow, len(bitmaps))] {
			if i > 0 { builder.WriteByte(' ') }
			fmt.Fprintf(&builder, "0x%02x,", b)
		}
		rows = append(rows, builder.String())
	}
	return rows
}

// Returns one string per image row of the glyph, with 'X' for set
// pixels and ' ' for unset ones, padding bits included. Blank glyphs
// have no rows.
func Preview(font *sheetfont.Font, glyph sheetfont.Glyph) []string {
	if !glyph.HasImage() { return nil }
	rowBytes := int(glyph.RowBytes)
	bitmap := font.GlyphBitmap(glyph)
	rows := make([]string, 0, glyph.ImageHeight)
	line := make([]byte, rowBytes*8)
	for start := 0; start < len(bitmap); start += rowBytes {
		for i, b := range bitmap[start : start + rowBytes] {
			for bit := 0; bit < 8; bit++ {
				line[i*8 + bit] = ' '
				if b & (0x80 >> uint(bit)) != 0 { line[i*8 + bit] = 'X' }
			}
		}
		rows = append(rows, string(line))
	}
	return rows
}
