// Command mkbanner is a host-side build tool: it renders the kernel's
// startup banner text as a small bitmap, samples it down into a grid of
// VGA text-mode cells, and emits internal/console/banner_data.go, a
// generated Go source file the kernel embeds and prints before the first
// line of boot narration.
//
// Grounded on tools/imageconvert (decode an image, emit a binary table
// for kernel embedding) and gg_circle_qemu.go (render with
// github.com/fogleman/gg, flush the result into the running console).
// This tool runs the same two steps offline instead: render with gg,
// then flush into a generated Go source table rather than a live
// framebuffer, since this kernel's console is VGA text mode, not pixels.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	cellWidth  = 7
	cellHeight = 13
	threshold  = 0.25 // fraction of lit pixels in a cell before it counts as "on"
)

func main() {
	text := flag.String("text", "ContinuumOS", "banner text to render")
	out := flag.String("out", "internal/console/banner_data.go", "generated Go source path")
	preview := flag.String("preview", "", "optional PNG preview output path")
	flag.Parse()

	img := renderText(*text)

	if *preview != "" {
		if err := writePNG(*preview, img); err != nil {
			fmt.Fprintf(os.Stderr, "mkbanner: writing preview: %v\n", err)
			os.Exit(1)
		}
	}

	rows := rasterizeToCells(img)

	if err := writeSource(*out, *text, rows); err != nil {
		fmt.Fprintf(os.Stderr, "mkbanner: writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("mkbanner: wrote %d row(s) to %s\n", len(rows), *out)
}

// renderText draws text on a black canvas using gg, sized to exactly fit
// one row of basicfont glyphs.
func renderText(text string) *image.RGBA {
	face := basicfont.Face7x13
	width := cellWidth*len(text) + 2
	height := cellHeight + 4

	ctx := gg.NewContext(width, height)
	ctx.SetRGB(0, 0, 0)
	ctx.Clear()
	ctx.SetFontFace(face)
	ctx.SetRGB(1, 1, 1)
	ctx.DrawStringAnchored(text, 1, float64(height)/2, 0, 0.35)

	rgba, ok := ctx.Image().(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(ctx.Image().Bounds())
	}
	return rgba
}

// rasterizeToCells downsamples img into one VGA text row per cellHeight
// pixels, picking '#' for a cell whose lit-pixel fraction clears
// threshold and ' ' otherwise — a coarse-but-legible bitmap-to-text-cell
// reduction, since this console has no pixel mode to print the bitmap
// into directly.
func rasterizeToCells(img *image.RGBA) []string {
	bounds := img.Bounds()
	cols := bounds.Dx() / cellWidth
	rowsCount := bounds.Dy() / cellHeight
	if rowsCount == 0 {
		rowsCount = 1
	}

	rows := make([]string, 0, rowsCount)
	for ry := 0; ry < rowsCount; ry++ {
		line := make([]byte, 0, cols)
		for rx := 0; rx < cols; rx++ {
			if cellIsLit(img, rx, ry) {
				line = append(line, '#')
			} else {
				line = append(line, ' ')
			}
		}
		rows = append(rows, string(line))
	}
	return rows
}

func cellIsLit(img *image.RGBA, cellX, cellY int) bool {
	originX := img.Bounds().Min.X + cellX*cellWidth
	originY := img.Bounds().Min.Y + cellY*cellHeight

	lit := 0
	total := 0
	for y := 0; y < cellHeight; y++ {
		for x := 0; x < cellWidth; x++ {
			px := img.RGBAAt(originX+x, originY+y)
			total++
			if luminance(px) > 0.5 {
				lit++
			}
		}
	}
	if total == 0 {
		return false
	}
	return float64(lit)/float64(total) >= threshold
}

func luminance(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func writeSource(path, text string, rows []string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by cmd/mkbanner. DO NOT EDIT.")
	fmt.Fprintln(&buf, "")
	fmt.Fprintln(&buf, "package console")
	fmt.Fprintln(&buf, "")
	fmt.Fprintf(&buf, "// Banner is the boot-time title rendered from %q, printed as the\n", text)
	fmt.Fprintln(&buf, "// first console output before boot narration begins.")
	fmt.Fprintln(&buf, "var Banner = []string{")
	for _, row := range rows {
		fmt.Fprintf(&buf, "\t%q,\n", row)
	}
	fmt.Fprintln(&buf, "}")

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
