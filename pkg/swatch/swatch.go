// Package swatch renders a color swatch card (color block + hex label)
// into a fixed 500×500 canvas and encodes it as PNG.
//
// Rendering is deterministic: the same snapshot always produces the same
// pixels, so the same PNG bytes. Nothing here touches the disk except
// WriteFile; the GUI hands the encoded bytes to a save dialog instead.
package swatch

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/xob0t/hexswatch/pkg/colormodel"
)

// Layout constants for the export card. These are presentation choices,
// not contracts: the invariant is "color block above a centered hex label,
// inside a bordered card on a white square canvas".
const (
	CanvasSize = 500

	cardX, cardY = 100, 115
	cardWidth    = 300
	blockHeight  = 200
	labelPad     = 10
	labelHeight  = 2*labelPad + 30
	cardHeight   = blockHeight + labelHeight

	borderWidth = 1
	fontSize    = 24
)

// Exporter renders export cards. It owns a parsed font and is reusable
// across exports; Close releases the font when the exporter is done.
type Exporter struct {
	fonts *fontSource
}

// NewExporter creates an exporter using the embedded Go Regular label
// font. Use WithFontPath to substitute a custom TTF; load failures fall
// back to the embedded font.
func NewExporter(opts ...Option) (*Exporter, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	fonts, err := newFontSource(cfg.fontPath)
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &Exporter{fonts: fonts}, nil
}

// Option configures an Exporter.
type Option func(*config)

type config struct {
	fontPath string
}

// WithFontPath uses the TTF at path for the hex label instead of the
// embedded default.
func WithFontPath(path string) Option {
	return func(c *config) { c.fontPath = path }
}

// Close releases the exporter's font resources.
func (e *Exporter) Close() error {
	return e.fonts.Close()
}

// Render draws the export card for snap and returns the drawing context.
// The caller owns the context and must Close it on every path, typically
// after reading Image() or encoding.
func (e *Exporter) Render(snap colormodel.Snapshot) (*gg.Context, error) {
	dc := gg.NewContext(CanvasSize, CanvasSize)

	// White canvas.
	dc.SetColor(color.White)
	dc.DrawRectangle(0, 0, CanvasSize, CanvasSize)
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("fill canvas: %w", err)
	}

	// Color block at the top of the card.
	dc.SetColor(color.NRGBA{R: snap.R, G: snap.G, B: snap.B, A: 255})
	dc.DrawRectangle(cardX, cardY, cardWidth, blockHeight)
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("fill color block: %w", err)
	}

	// Card border around block + label strip.
	dc.SetColor(color.Black)
	dc.SetLineWidth(borderWidth)
	dc.DrawRectangle(cardX, cardY, cardWidth, cardHeight)
	if err := dc.Stroke(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("stroke card border: %w", err)
	}

	// Hex label, centered in the white strip beneath the block.
	dc.SetFont(e.fonts.face(fontSize))
	dc.SetColor(color.Black)
	labelCx := float64(cardX) + cardWidth/2
	labelCy := float64(cardY) + blockHeight + float64(labelHeight)/2
	dc.DrawStringAnchored(snap.Hex, labelCx, labelCy, 0.5, 0.5)

	return dc, nil
}
