// Package picker implements the desktop color-picker window: RGB sliders,
// a hex text field, copy-to-clipboard, and PNG export of the rendered
// swatch card. At most one picker window exists per App; see window.go.
package picker

import (
	"image/color"
	"time"

	"cogentcore.org/core/base/fileinfo/mimedata"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"

	"github.com/xob0t/hexswatch/pkg/colormodel"
	"github.com/xob0t/hexswatch/pkg/swatch"
	"github.com/xob0t/hexswatch/pkg/windowreg"
)

// copiedDuration is how long the "Copied!" indicator stays visible.
const copiedDuration = 2 * time.Second

// App owns the picker's window registry and the swatch exporter.
type App struct {
	reg      *windowreg.Registry
	exporter *swatch.Exporter
}

// NewApp creates the picker application state.
func NewApp() (*App, error) {
	exp, err := swatch.NewExporter()
	if err != nil {
		return nil, err
	}
	return &App{reg: windowreg.New(), exporter: exp}, nil
}

// Run opens the picker window and blocks until all windows close.
func (a *App) Run() {
	core.SystemSettings.SnackbarTimeout = copiedDuration
	a.OpenOrFocus()
	core.Wait()
}

// OpenOrFocus raises the existing picker window, or creates a new one if
// none is open. Every new window starts at the default mid-gray; nothing
// is persisted across close.
func (a *App) OpenOrFocus() {
	a.reg.Open(a.newWindow)
}

// IsOpen reports whether a picker window is currently open.
func (a *App) IsOpen() bool {
	return a.reg.IsOpen()
}

// channelNames index by colormodel.Channel for slider labels.
var channelNames = [...]string{"Red", "Green", "Blue"}

// buildBody constructs the picker UI bound to model.
func (a *App) buildBody(model *colormodel.Model) *core.Body {
	b := core.NewBody("Color Picker")
	b.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Padding.Set(units.Dp(16))
		s.Gap.Set(units.Dp(8))
	})

	// Live swatch preview. The styler reads the model every restyle, so
	// Update() after a mutation refreshes the fill.
	preview := core.NewFrame(b)
	preview.Styler(func(s *styles.Style) {
		r, g, bl := model.RGB()
		s.Background = colors.Uniform(color.NRGBA{R: r, G: g, B: bl, A: 255})
		s.Min.X.Dp(280)
		s.Min.Y.Dp(120)
		s.Border.Width.Set(units.Dp(1))
		s.Border.Color.Set(colors.Scheme.Outline)
	})

	sliders := make([]*core.Slider, len(channelNames))
	for i, name := range channelNames {
		ch := colormodel.Channel(i)
		row := core.NewFrame(b)
		row.Styler(func(s *styles.Style) {
			s.Direction = styles.Row
			s.Align.Items = styles.Center
			s.Grow.Set(1, 0)
			s.Gap.Set(units.Dp(8))
		})
		label := core.NewText(row).SetText(name)
		label.Styler(func(s *styles.Style) {
			s.Min.X.Em(3)
		})
		sl := core.NewSlider(row)
		sl.SetMin(0).SetMax(255).SetStep(1)
		sl.SetValue(float32(model.Channel(ch)))
		sl.Styler(func(s *styles.Style) {
			s.Grow.Set(1, 0)
		})
		// Input fires continuously during a drag and again on release,
		// so a single hook keeps the model current.
		sl.OnInput(func(e events.Event) {
			model.SetChannel(ch, float64(sl.Value))
		})
		sliders[i] = sl
	}

	hexRow := core.NewFrame(b)
	hexRow.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Align.Items = styles.Center
		s.Gap.Set(units.Dp(8))
	})
	core.NewText(hexRow).SetText("HEX")
	hexField := core.NewTextField(hexRow).SetText(model.Hex())
	// Malformed input is ignored without feedback; the previous color is
	// kept and the field retains the typed text.
	hexField.OnChange(func(e events.Event) {
		model.SetFromHex(hexField.Text())
	})

	buttons := core.NewFrame(b)
	buttons.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Gap.Set(units.Dp(8))
	})
	copyButton := core.NewButton(buttons).SetText("Copy").SetIcon(icons.ContentCopy)
	copyButton.OnClick(func(e events.Event) {
		copyButton.Clipboard().Write(mimedata.NewText(model.Hex()))
		core.MessageSnackbar(copyButton, "Copied!")
	})
	exportButton := core.NewButton(buttons).SetText("Export PNG").SetIcon(icons.Download)
	exportButton.OnClick(func(e events.Event) {
		a.export(exportButton, model.Snapshot())
	})

	// Republish the derived state to every display after each mutation.
	model.OnChange(func(snap colormodel.Snapshot) {
		for i, sl := range sliders {
			sl.SetValue(float32(model.Channel(colormodel.Channel(i))))
		}
		if hexField.Text() != snap.Hex {
			hexField.SetText(snap.Hex)
		}
		preview.Update()
	})

	return b
}
