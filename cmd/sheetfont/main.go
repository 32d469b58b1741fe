// Command sheetfont compiles font sheets and inspects or renders the
// resulting fonts.
package main

import "fmt"
import "log/slog"
import "os"

import "github.com/thatisuday/commando"

import "github.com/tinne26/sheetfont"

func main() {
	commando.
		SetExecutableName("sheetfont").
		SetVersion("v0.1.0").
		SetDescription("Compiles bitmap font sheets and renders text with the compiled fonts.")

	compile := commando.
		Register("compile").
		SetDescription("Compile a font sheet image into Go source code or a binary font file.").
		SetShortDescription("compile a font sheet").
		AddArgument("sheet", "font sheet image (png, gif, jpeg or bmp)", "").
		AddArgument("output", "output file, '-' for stdout", "-").
		AddFlag("format,f", "output format: go|bin", commando.String, "go").
		AddFlag("package,p", "package name for Go output", commando.String, "fonts").
		AddFlag("var", "font variable name for Go output", commando.String, "Font")
	addCompilerFlags(compile).SetAction(runCompile)

	render := commando.
		Register("render").
		SetDescription("Render text with a font sheet or a binary font file into a grayscale png.").
		SetShortDescription("render text").
		AddArgument("font", "font sheet image or .shfnt file", "").
		AddArgument("output", "output png file", "").
		AddArgument("text", "text to render, newlines start new lines", "").
		AddFlag("invert,i", "white text on black", commando.Bool, nil).
		AddFlag("slow", "render pixel by pixel instead of by rows", commando.Bool, nil)
	addCompilerFlags(render).SetAction(runRender)

	commando.
		Register("convert").
		SetDescription("Draw a font sheet from raw glyph rows, given as whitespace or comma separated integers.").
		SetShortDescription("raw glyphs to font sheet").
		AddArgument("input", "raw glyph rows file", "").
		AddArgument("output", "output png file", "").
		AddFlag("width,w", "glyph width, up to 32", commando.Int, 8).
		AddFlag("height,H", "glyph height", commando.Int, 8).
		AddFlag("ascent,a", "rows above the baseline, baseline included (0 guesses)", commando.Int, 0).
		AddFlag("per-band", "glyphs per band", commando.Int, 16).
		AddFlag("add-advance", "extra advance for each glyph", commando.Int, 0).
		AddFlag("flip-x", "raw rows have the leftmost pixel in the lowest bit", commando.Bool, nil).
		AddFlag("flip-y", "raw glyphs store rows bottom up", commando.Bool, nil).
		AddFlag("verbose,V", "log progress to stderr", commando.Bool, nil).
		SetAction(runConvert)

	dump := commando.
		Register("dump").
		SetDescription("Print the metrics and glyph previews of a font sheet or a binary font file.").
		SetShortDescription("inspect a font").
		AddArgument("font", "font sheet image or .shfnt file", "").
		AddFlag("atlas", "also write all glyph masks to this png file", commando.String, "")
	addCompilerFlags(dump).SetAction(runDump)

	commando.Parse(nil)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "sheetfont: " + format + "\n", args...)
	os.Exit(1)
}

func mustFlagInt(flags flagMap, name string) int {
	n, err := flags[name].GetInt()
	if err != nil { fatalf("invalid --%s flag: %v", name, err) }
	return n
}

func mustFlagBool(flags flagMap, name string) bool {
	b, err := flags[name].GetBool()
	if err != nil { fatalf("invalid --%s flag: %v", name, err) }
	return b
}

func mustFlagString(flags flagMap, name string) string {
	s, err := flags[name].GetString()
	if err != nil { fatalf("invalid --%s flag: %v", name, err) }
	return s
}

func configureLogger(flags flagMap) {
	if !mustFlagBool(flags, "verbose") { return }
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: slog.LevelDebug })
	sheetfont.SetLogger(slog.New(handler))
}
