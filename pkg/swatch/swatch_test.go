package swatch

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/hexswatch/pkg/colormodel"
)

func newTestExporter(t *testing.T) *Exporter {
	t.Helper()
	e, err := NewExporter()
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

// rgbAt returns the 8-bit RGB values of one pixel.
func rgbAt(img image.Image, x, y int) (r, g, b uint8) {
	r16, g16, b16, _ := img.At(x, y).RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8)
}

func TestRenderDefaultGrayCard(t *testing.T) {
	e := newTestExporter(t)

	dc, err := e.Render(colormodel.New().Snapshot())
	require.NoError(t, err)
	defer dc.Close()

	img := dc.Image()
	bounds := img.Bounds()
	assert.Equal(t, CanvasSize, bounds.Dx())
	assert.Equal(t, CanvasSize, bounds.Dy())

	// Canvas outside the card is white.
	r, g, b := rgbAt(img, 10, 10)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	// Center of the color block carries the swatch color.
	r, g, b = rgbAt(img, CanvasSize/2, cardY+blockHeight/2)
	assert.Equal(t, [3]uint8{127, 127, 127}, [3]uint8{r, g, b})

	// The label strip is not pure white: the hex text was drawn.
	labelTop := cardY + blockHeight
	found := false
	for y := labelTop + 2; y < cardY+cardHeight-2 && !found; y++ {
		for x := cardX + 2; x < cardX+cardWidth-2; x++ {
			if r, g, b := rgbAt(img, x, y); r != 255 || g != 255 || b != 255 {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "label region should contain rendered text")
}

func TestRenderUsesSnapshotColor(t *testing.T) {
	e := newTestExporter(t)

	m := colormodel.New()
	require.True(t, m.SetFromHex("#00FF00"))

	dc, err := e.Render(m.Snapshot())
	require.NoError(t, err)
	defer dc.Close()

	r, g, b := rgbAt(dc.Image(), CanvasSize/2, cardY+blockHeight/2)
	assert.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{r, g, b})
}

func TestEncodePNGDeterministic(t *testing.T) {
	e := newTestExporter(t)
	snap := colormodel.New().Snapshot()

	var first, second bytes.Buffer
	require.NoError(t, e.EncodePNG(&first, snap))
	require.NoError(t, e.EncodePNG(&second, snap))
	assert.Equal(t, first.Bytes(), second.Bytes(),
		"identical input must produce byte-identical PNG output")
}

func TestEncodePNGDecodes(t *testing.T) {
	e := newTestExporter(t)

	var buf bytes.Buffer
	require.NoError(t, e.EncodePNG(&buf, colormodel.New().Snapshot()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, CanvasSize, img.Bounds().Dx())
	assert.Equal(t, CanvasSize, img.Bounds().Dy())
}

func TestWriteFile(t *testing.T) {
	e := newTestExporter(t)

	path := filepath.Join(t.TempDir(), "7F7F7F_ExportedColor.png")
	require.NoError(t, e.WriteFile(path, colormodel.New().Snapshot()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, CanvasSize, img.Bounds().Dx())
}

func TestSuggestedFileName(t *testing.T) {
	assert.Equal(t, "AB12CD_ExportedColor.png", SuggestedFileName("#AB12CD"))
	assert.Equal(t, "7F7F7F_ExportedColor.png", SuggestedFileName("7F7F7F"))
}

func TestCustomFontFallsBackOnBadPath(t *testing.T) {
	e, err := NewExporter(WithFontPath(filepath.Join(t.TempDir(), "missing.ttf")))
	require.NoError(t, err, "unreadable custom font falls back to embedded")
	defer e.Close()

	var buf bytes.Buffer
	assert.NoError(t, e.EncodePNG(&buf, colormodel.New().Snapshot()))
}
