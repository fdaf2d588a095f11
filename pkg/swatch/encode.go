// encode.go — PNG encoding and file naming for export cards.
package swatch

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xob0t/hexswatch/pkg/colormodel"
)

// EncodePNG renders the export card for snap and writes it to w as PNG.
// The render target is released on every path; on error nothing partial
// has been written beyond what w already consumed.
func (e *Exporter) EncodePNG(w io.Writer, snap colormodel.Snapshot) error {
	dc, err := e.Render(snap)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// WriteFile renders and encodes the card directly to a file. Used by the
// headless CLI; the GUI goes through EncodePNG and a save dialog instead.
func (e *Exporter) WriteFile(path string, snap colormodel.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := e.EncodePNG(f, snap); err != nil {
		return err
	}
	return nil
}

// SuggestedFileName derives the default export file name from a hex
// string: "#AB12CD" → "AB12CD_ExportedColor.png".
func SuggestedFileName(hex string) string {
	return strings.TrimPrefix(hex, "#") + "_ExportedColor.png"
}
