package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := MeasureText(txt, size)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, GetFace(size), 0)
}

// LineHeight is the advance between wrapped lines.
func LineHeight(size float64) float64 {
	return size * 1.4
}

// WrapText splits txt into at most maxLines lines no wider than maxWidth.
// The last line is truncated with an ellipsis when text remains.
// maxLines <= 0 means unlimited.
func WrapText(txt string, maxWidth, size float64, maxLines int) []string {
	words := strings.Fields(txt)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for i, word := range words[1:] {
		candidate := line + " " + word
		if w, _ := MeasureText(candidate, size); w <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
		if maxLines > 0 && len(lines) == maxLines-1 {
			// Everything left goes on the final line
			line = strings.Join(words[i+1:], " ")
			break
		}
	}
	lines = append(lines, TruncateText(line, maxWidth, size))
	return lines
}

// DrawTextWrapped draws txt wrapped to maxWidth and returns the height used.
func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, maxLines int, clr color.Color) float64 {
	lh := LineHeight(size)
	lines := WrapText(txt, maxWidth, size, maxLines)
	for i, line := range lines {
		DrawText(dst, line, x, y+float64(i)*lh, size, clr)
	}
	return float64(len(lines)) * lh
}

// TruncateText shortens s with an ellipsis until it fits maxWidth.
func TruncateText(s string, maxWidth float64, size float64) string {
	if w, _ := MeasureText(s, size); w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := strings.TrimRight(string(runes[:i]), " ") + "…"
		if w, _ := MeasureText(candidate, size); w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
