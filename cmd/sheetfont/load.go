package main

import "bytes"
import "errors"
import "fmt"
import "image"
import "os"
import "path/filepath"
import "strconv"
import "strings"
import "unicode/utf8"

import _ "image/gif"
import _ "image/jpeg"
import _ "image/png"
import _ "golang.org/x/image/bmp"

import "github.com/thatisuday/commando"

import "github.com/tinne26/sheetfont"
import "github.com/tinne26/sheetfont/builder"

// Binary font files are recognized by this extension, anything
// else is decoded as a font sheet image.
const binaryExt = ".shfnt"

func addCompilerFlags(cmd *commando.Command) *commando.Command {
	return cmd.
		AddFlag("first", "codepoint of the first glyph, inferred when empty", commando.String, "").
		AddFlag("order,o", "glyph order: latin1|cp437", commando.String, "latin1").
		AddFlag("replacement,r", "sheet index of the replacement glyph", commando.Int, 0).
		AddFlag("kern,k", "kerning pairs, e.g. 'AV=-2 VA=-1'", commando.String, "").
		AddFlag("verbose,V", "log compilation progress to stderr", commando.Bool, nil)
}

func newCompiler(flags flagMap) (*builder.Compiler, error) {
	compiler := builder.New()
	if first := mustFlagString(flags, "first"); first != "" {
		value, err := strconv.ParseUint(first, 0, 8)
		if err != nil { return nil, fmt.Errorf("invalid --first flag: %w", err) }
		compiler.SetFirst(uint8(value))
	}

	order, err := builder.ParseGlyphOrder(mustFlagString(flags, "order"))
	if err != nil { return nil, err }
	compiler.SetOrder(order)
	compiler.SetReplacementIndex(mustFlagInt(flags, "replacement"))

	pairs, err := parseKerning(mustFlagString(flags, "kern"))
	if err != nil { return nil, err }
	for _, pair := range pairs {
		err = compiler.SetKerningPair(pair.before, pair.after, pair.adjust)
		if err != nil { return nil, fmt.Errorf("kerning pair %q%q: %w", pair.before, pair.after, err) }
	}
	return compiler, nil
}

type kerningPair struct {
	before, after rune
	adjust int8
}

var errKerningSyntax = errors.New("kerning pairs must be given as <char><char>=<adjust>")

// Parses space separated kerning pairs like "AV=-2".
func parseKerning(text string) ([]kerningPair, error) {
	var pairs []kerningPair
	for _, field := range strings.Fields(text) {
		chars, adjust, found := strings.Cut(field, "=")
		if !found || utf8.RuneCountInString(chars) != 2 {
			return nil, fmt.Errorf("%w: %q", errKerningSyntax, field)
		}
		value, err := strconv.ParseInt(adjust, 10, 8)
		if err != nil { return nil, fmt.Errorf("%w: %q", errKerningSyntax, field) }
		before, size := utf8.DecodeRuneInString(chars)
		after, _ := utf8.DecodeRuneInString(chars[size : ])
		pairs = append(pairs, kerningPair{ before, after, int8(value) })
	}
	return pairs, nil
}

// Parses raw glyph rows: integers separated by whitespace or commas,
// in any base accepted by strconv ("0x" prefixes included). Square
// brackets are ignored.
func parseRawRows(data []byte) ([]uint32, error) {
	isSeparator := func(r rune) bool {
		return r == ',' || r == '[' || r == ']' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}
	var rows []uint32
	for _, field := range bytes.FieldsFunc(data, isSeparator) {
		value, err := strconv.ParseUint(string(field), 0, 32)
		if err != nil { return nil, fmt.Errorf("invalid raw row %q: %w", field, err) }
		rows = append(rows, uint32(value))
	}
	return rows, nil
}

// Splits raw rows into glyphs of the given height. Trailing rows that
// don't complete a glyph are an error.
func splitGlyphs(rows []uint32, height int) ([][]uint32, error) {
	if height <= 0 { return nil, fmt.Errorf("%w: height %d", builder.ErrSheetConfig, height) }
	if len(rows) % height != 0 {
		return nil, fmt.Errorf("%d raw rows don't split into glyphs of height %d", len(rows), height)
	}
	glyphs := make([][]uint32, 0, len(rows)/height)
	for start := 0; start < len(rows); start += height {
		glyphs = append(glyphs, rows[start : start + height])
	}
	return glyphs, nil
}

func decodeSheet(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	defer file.Close()
	sheet, _, err := image.Decode(file)
	return sheet, err
}

// Loads a binary font, or compiles a font sheet image with the
// compiler flags.
func loadFont(path string, flags flagMap) (*sheetfont.Font, error) {
	if strings.EqualFold(filepath.Ext(path), binaryExt) {
		return sheetfont.ParseFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}

	compiler, err := newCompiler(flags)
	if err != nil { return nil, err }
	sheet, err := decodeSheet(path)
	if err != nil { return nil, err }
	return compiler.Build(sheet)
}
