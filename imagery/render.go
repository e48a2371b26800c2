package imagery

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// PlaceholderWidth and PlaceholderHeight are the size of generated images.
	PlaceholderWidth  = 400
	PlaceholderHeight = 200

	// PlaceholderBackground is the fill of placeholder images.
	PlaceholderBackground = "#1f2937"

	// Brand prefixes every placeholder label.
	Brand = "Visual Alpha"
)

// PlaceholderLabel returns the caption of the placeholder drawn for an
// entry whose image is missing.
func PlaceholderLabel(topics []string) string {
	topic := "Info"
	if len(topics) > 0 && strings.TrimSpace(topics[0]) != "" {
		topic = strings.TrimSpace(topics[0])
	}
	return Brand + " - " + topic
}

// Placeholder renders the fallback PNG for a missing image.
func Placeholder(topics []string) ([]byte, error) {
	bg, err := ParseHex(PlaceholderBackground)
	if err != nil {
		return nil, err
	}
	return Render(PlaceholderWidth, PlaceholderHeight, bg, PlaceholderLabel(topics))
}

// Render draws caption centered in white on a solid background and returns
// the PNG encoding. Newlines in caption start new lines.
func Render(width, height int, bg color.Color, caption string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}

	lines := strings.Split(caption, "\n")
	lineHeight := face.Metrics().Height.Ceil()
	top := (height-lineHeight*len(lines))/2 + face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		w := d.MeasureString(line).Ceil()
		d.Dot = fixed.P((width-w)/2, top+i*lineHeight)
		d.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseHex parses a "#rrggbb" colour.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
