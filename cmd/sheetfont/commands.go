package main

import "bufio"
import "fmt"
import "image"
import "image/color"
import "image/draw"
import "image/png"
import "io"
import "os"
import "strconv"
import "strings"

import "github.com/thatisuday/commando"

import "github.com/tinne26/sheetfont"
import "github.com/tinne26/sheetfont/builder"
import "github.com/tinne26/sheetfont/gen"
import "github.com/tinne26/sheetfont/mask"

type argMap = map[string]commando.ArgValue
type flagMap = map[string]commando.FlagValue

func runCompile(args argMap, flags flagMap) {
	configureLogger(flags)
	font, err := loadFont(args["sheet"].Value, flags)
	if err != nil { fatalf("%v", err) }

	switch format := mustFlagString(flags, "format"); format {
	case "go":
		source, err := gen.GoSource(font, gen.Options{
			Package: mustFlagString(flags, "package"),
			VarName: mustFlagString(flags, "var"),
		})
		if err != nil { fatalf("%v", err) }
		err = writeOutput(args["output"].Value, func(writer io.Writer) error {
			_, err := writer.Write(source)
			return err
		})
		if err != nil { fatalf("%v", err) }
	case "bin":
		err = writeOutput(args["output"].Value, font.Export)
		if err != nil { fatalf("%v", err) }
	default:
		fatalf("invalid --format %q, expected go or bin", format)
	}
}

func runRender(args argMap, flags flagMap) {
	configureLogger(flags)
	font, err := loadFont(args["font"].Value, flags)
	if err != nil { fatalf("%v", err) }

	text := strings.ReplaceAll(args["text"].Value, `\n`, "\n")
	img := renderLines(font, strings.Split(text, "\n"), mustFlagBool(flags, "invert"), mustFlagBool(flags, "slow"))
	err = writeOutput(args["output"].Value, func(writer io.Writer) error {
		return png.Encode(writer, img)
	})
	if err != nil { fatalf("%v", err) }
}

// Renders each line LineSpacing rows below the previous one, on an
// image just wide enough for the widest line. Black on white unless
// inverted.
func renderLines(font *sheetfont.Font, lines []string, invert, slow bool) *image.Gray {
	width := 1
	for _, line := range lines {
		width = max(width, font.Width(line))
	}
	height := max(int(font.LineSpacing)*len(lines), 1)

	bg, fg := uint8(0xFF), uint8(0x00)
	if invert { bg, fg = fg, bg }
	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Rect, image.NewUniform(color.Gray{ bg }), image.Point{}, draw.Src)

	target := sheetfont.NewGrayTarget(img)
	for i, line := range lines {
		y := i*int(font.LineSpacing)
		if slow {
			sheetfont.Render[uint8](font, line, 0, y, target, fg)
		} else {
			sheetfont.RenderDirect[uint8](font, line, 0, y, target, fg)
		}
	}
	return img
}

func runConvert(args argMap, flags flagMap) {
	configureLogger(flags)
	data, err := os.ReadFile(args["input"].Value)
	if err != nil { fatalf("%v", err) }
	rows, err := parseRawRows(data)
	if err != nil { fatalf("%v", err) }

	config := builder.SheetConfig{
		Width: mustFlagInt(flags, "width"),
		Height: mustFlagInt(flags, "height"),
		Ascent: mustFlagInt(flags, "ascent"),
		PerBand: mustFlagInt(flags, "per-band"),
		AddAdvance: mustFlagInt(flags, "add-advance"),
		FlipX: mustFlagBool(flags, "flip-x"),
		FlipY: mustFlagBool(flags, "flip-y"),
	}
	glyphs, err := splitGlyphs(rows, config.Height)
	if err != nil { fatalf("%v", err) }
	sheetfont.Logger().Info("raw glyphs loaded", "glyphs", len(glyphs), "rows", len(rows))

	sheet, err := builder.DrawSheet(glyphs, config)
	if err != nil { fatalf("%v", err) }
	err = writeOutput(args["output"].Value, func(writer io.Writer) error {
		return png.Encode(writer, sheet)
	})
	if err != nil { fatalf("%v", err) }
}

func runDump(args argMap, flags flagMap) {
	configureLogger(flags)
	font, err := loadFont(args["font"].Value, flags)
	if err != nil { fatalf("%v", err) }

	writer := bufio.NewWriter(os.Stdout)
	dumpFont(writer, font)
	err = writer.Flush()
	if err != nil { fatalf("%v", err) }

	if path := mustFlagString(flags, "atlas"); path != "" {
		atlas := drawAtlas(font)
		err = writeOutput(path, func(writer io.Writer) error {
			return png.Encode(writer, atlas)
		})
		if err != nil { fatalf("%v", err) }
	}
}

func dumpFont(writer io.Writer, font *sheetfont.Font) {
	fmt.Fprintf(writer, "ascent %d, descent %d, line spacing %d\n", font.Ascent, font.Descent, font.LineSpacing)
	fmt.Fprintf(writer, "%s storage, %d glyphs", font.Storage.Kind(), font.Storage.Len())
	if font.Storage.Kind() == sheetfont.StorageDense {
		fmt.Fprintf(writer, " from U+%04X", font.Storage.First())
	}
	fmt.Fprintf(writer, "\nbitmap arena %d bytes, %d kerning pairs\n", len(font.Bitmaps), font.Kerning.Len())
	for _, entry := range font.Kerning.Entries {
		fmt.Fprintf(writer, "  kern %q %q %+d\n", rune(entry.Before), rune(entry.After), entry.Adjust)
	}

	dumpGlyph(writer, font, "replacement", font.Replacement)
	font.Storage.Each(func(codePoint rune, glyph sheetfont.Glyph) {
		dumpGlyph(writer, font, fmt.Sprintf("U+%04X %s", codePoint, strconv.QuoteRune(codePoint)), glyph)
	})
}

func dumpGlyph(writer io.Writer, font *sheetfont.Font, label string, glyph sheetfont.Glyph) {
	fmt.Fprintf(writer, "\n%s: advance %d", label, glyph.Advance)
	if !glyph.HasImage() {
		fmt.Fprintln(writer, ", blank")
		return
	}
	fmt.Fprintf(writer, ", origin (%d, %d), offset %d\n", glyph.OriginX, glyph.OriginY, glyph.ImageOffset)
	for _, row := range gen.Preview(font, glyph) {
		fmt.Fprintf(writer, "  |%s|\n", row)
	}
}

// Draws every stored glyph in its own line box, 16 glyphs per row,
// black on white.
func drawAtlas(font *sheetfont.Font) *image.Gray {
	const perRow = 16
	cellWidth, cellHeight := 1, max(font.Height(), 1)
	font.Storage.Each(func(_ rune, glyph sheetfont.Glyph) {
		cellWidth = max(cellWidth, int(glyph.Advance), int(glyph.OriginX) + int(glyph.RowBytes)*8)
		cellHeight = max(cellHeight, int(glyph.OriginY) + int(glyph.ImageHeight))
	})
	cellWidth, cellHeight = cellWidth + 1, cellHeight + 1 // one pixel gap

	count := max(font.Storage.Len(), 1)
	cols := min(count, perRow)
	rows := (count + perRow - 1)/perRow
	atlas := image.NewGray(image.Rect(0, 0, cols*cellWidth, rows*cellHeight))
	draw.Draw(atlas, atlas.Rect, image.White, image.Point{}, draw.Src)

	index := 0
	font.Storage.Each(func(_ rune, glyph sheetfont.Glyph) {
		x, y := (index % perRow)*cellWidth, (index / perRow)*cellHeight
		index += 1
		if !glyph.HasImage() { return }
		origin := image.Pt(x + int(glyph.OriginX), y + int(glyph.OriginY))
		glyphMask := mask.Rasterize(font.GlyphBitmap(glyph), int(glyph.RowBytes), origin)
		draw.DrawMask(atlas, glyphMask.Rect, image.Black, image.Point{}, glyphMask, glyphMask.Rect.Min, draw.Over)
	})
	return atlas
}

// Writes to the given path, or to stdout for "-".
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "-" {
		writer := bufio.NewWriter(os.Stdout)
		err := write(writer)
		if err != nil { return err }
		return writer.Flush()
	}

	file, err := os.Create(path)
	if err != nil { return err }
	err = write(file)
	if err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
