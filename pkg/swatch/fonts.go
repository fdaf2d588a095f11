// fonts.go — label font loading with custom TTF support and embedded
// fallback. Defaults to Go Regular when no custom font is specified or
// when loading the custom font fails.
package swatch

import (
	"fmt"
	"os"

	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/xob0t/hexswatch/pkg/applog"
)

// fontSource wraps a parsed font and hands out faces by size.
type fontSource struct {
	source *ggtext.FontSource
	faces  map[float64]ggtext.Face
}

// newFontSource parses the font at customPath, or the embedded Go font
// when the path is empty or unreadable.
func newFontSource(customPath string) (*fontSource, error) {
	var data []byte
	if customPath != "" {
		var err error
		data, err = os.ReadFile(customPath)
		if err != nil {
			applog.Logger().Warn("custom font unavailable, using default",
				"path", customPath, "err", err)
			data = nil
		}
	}
	if data == nil {
		data = goregular.TTF
	}

	source, err := ggtext.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &fontSource{
		source: source,
		faces:  make(map[float64]ggtext.Face),
	}, nil
}

// face returns a face at the given point size, cached per size.
func (fs *fontSource) face(size float64) ggtext.Face {
	if f, ok := fs.faces[size]; ok {
		return f
	}
	f := fs.source.Face(size)
	fs.faces[size] = f
	return f
}

// Close releases the underlying font source.
func (fs *fontSource) Close() error {
	return fs.source.Close()
}
