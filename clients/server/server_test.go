package server

import (
	"image/png"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/hexswatch/pkg/swatch"
)

func newTestSrv(t *testing.T) *srv {
	t.Helper()
	exporter, err := swatch.NewExporter()
	require.NoError(t, err)
	t.Cleanup(func() { exporter.Close() })
	return &srv{exporter: exporter}
}

func TestHandleSwatchRendersPNG(t *testing.T) {
	s := newTestSrv(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/swatch.png?hex=00FF00", nil)
	s.handleSwatch(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "00FF00_ExportedColor.png")

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, swatch.CanvasSize, img.Bounds().Dx())
}

func TestHandleSwatchAcceptsLeadingHash(t *testing.T) {
	s := newTestSrv(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/swatch.png?hex=%23AB12CD", nil)
	s.handleSwatch(rec, req)
	assert.Equal(t, 200, rec.Code)
}

func TestHandleSwatchRejectsMalformedHex(t *testing.T) {
	s := newTestSrv(t)

	for _, hex := range []string{"", "12345", "12G456", "1234567"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/swatch.png?hex="+hex, nil)
		s.handleSwatch(rec, req)
		assert.Equal(t, 400, rec.Code, "hex %q", hex)
	}
}
